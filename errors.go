package authx

import (
	"errors"
	"strings"
)

// ErrorCode represents verifier and issuer error categories.
type ErrorCode string

const (
	ErrCodeMalformedToken   ErrorCode = "malformed_token"
	ErrCodeInvalidSignature ErrorCode = "invalid_signature"
	ErrCodeExpired          ErrorCode = "token_expired"
	ErrCodeNotYetValid      ErrorCode = "token_not_yet_valid"
	ErrCodeInvalidIssuer    ErrorCode = "invalid_issuer"
	ErrCodeInvalidAudience  ErrorCode = "invalid_audience"
	ErrCodeInvalidConfig    ErrorCode = "invalid_config"
)

var errorMessages = map[ErrorCode]string{
	ErrCodeMalformedToken:   "Malformed token",
	ErrCodeInvalidSignature: "Invalid signature",
	ErrCodeExpired:          "Token expired",
	ErrCodeNotYetValid:      "Token not yet valid",
	ErrCodeInvalidIssuer:    "Invalid issuer",
	ErrCodeInvalidAudience:  "Invalid audience",
	ErrCodeInvalidConfig:    "Invalid configuration",
}

// Error wraps verification and issuance errors with a stable code and message.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Error renders "<message> [<code>]", followed by the cause when there is one.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Message != "" {
		b.WriteString(e.Message)
		b.WriteString(" [")
		b.WriteString(string(e.Code))
		b.WriteString("]")
	} else {
		b.WriteString(string(e.Code))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Is matches another *Error by code, so errors.Is(err, &Error{Code: ErrCodeExpired}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf returns the code carried by err, or an empty code when err is not an *Error.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func newError(code ErrorCode, cause error) error {
	return &Error{Code: code, Message: errorMessages[code], Err: cause}
}
