package authx

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jws"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var now = time.Now

// VerifyToken validates the token signature and claims against cfg and returns
// the decoded claims. Every failure is an *Error carrying one of the
// verification codes.
func VerifyToken(token string, cfg VerifyConfig) (*Claims, error) {
	if err := cfg.validate(); err != nil {
		return nil, newError(ErrCodeInvalidConfig, err)
	}
	cfg.normalize()

	if token == "" {
		return nil, newError(ErrCodeMalformedToken, errors.New("token is empty"))
	}

	alg, err := signingAlgorithm(token)
	if err != nil {
		return nil, newError(ErrCodeMalformedToken, err)
	}
	if !isHMAC(alg) {
		return nil, newError(ErrCodeInvalidSignature, fmt.Errorf("unexpected signing algorithm %q", alg))
	}
	if err := checkSignatureEncoding(token); err != nil {
		return nil, newError(ErrCodeInvalidSignature, err)
	}
	if _, err := jws.Verify([]byte(token), jws.WithKey(alg, cfg.Secret)); err != nil {
		return nil, newError(ErrCodeInvalidSignature, err)
	}

	parsed, err := jwt.ParseString(token, jwt.WithVerify(false), jwt.WithValidate(false))
	if err != nil {
		return nil, newError(ErrCodeMalformedToken, err)
	}
	if err := checkTemporalClaims(parsed); err != nil {
		return nil, newError(ErrCodeMalformedToken, err)
	}

	if err := jwt.Validate(parsed,
		jwt.WithClock(jwt.ClockFunc(now)),
		jwt.WithAcceptableSkew(cfg.ClockSkew),
	); err != nil {
		return nil, classifyValidationError(err)
	}
	if cfg.Issuer != "" && parsed.Issuer() != cfg.Issuer {
		return nil, newError(ErrCodeInvalidIssuer, fmt.Errorf("issuer mismatch: got %q, want %q", parsed.Issuer(), cfg.Issuer))
	}
	if cfg.Audience != "" && !containsString(parsed.Audience(), cfg.Audience) {
		return nil, newError(ErrCodeInvalidAudience, fmt.Errorf("audience %q not in %v", cfg.Audience, parsed.Audience()))
	}

	claims, err := extractClaims(parsed)
	if err != nil {
		return nil, newError(ErrCodeMalformedToken, err)
	}
	return claims, nil
}

// signingAlgorithm reads the alg header of a compact JWS without touching the signature.
func signingAlgorithm(token string) (jwa.SignatureAlgorithm, error) {
	protected, _, _, err := jws.SplitCompactString(token)
	if err != nil {
		return "", err
	}
	raw, err := base64.RawURLEncoding.DecodeString(string(protected))
	if err != nil {
		return "", fmt.Errorf("decode header: %w", err)
	}
	headers := jws.NewHeaders()
	if err := json.Unmarshal(raw, headers); err != nil {
		return "", fmt.Errorf("parse header: %w", err)
	}
	alg := headers.Algorithm()
	if alg == "" {
		return "", errors.New(`header is missing "alg"`)
	}
	return alg, nil
}

// checkSignatureEncoding rejects signature segments that are not canonical
// unpadded base64url. The lenient decoder ignores the spare low bits of the
// final character, so several encodings map to the same signature bytes.
func checkSignatureEncoding(token string) error {
	_, _, signature, err := jws.SplitCompactString(token)
	if err != nil {
		return err
	}
	decoded, err := base64.RawURLEncoding.Strict().DecodeString(string(signature))
	if err != nil {
		return fmt.Errorf("decode signature: %w", err)
	}
	if base64.RawURLEncoding.EncodeToString(decoded) != string(signature) {
		return errors.New("signature is not canonically encoded")
	}
	return nil
}

func checkTemporalClaims(token jwt.Token) error {
	iat, exp := token.IssuedAt(), token.Expiration()
	switch {
	case exp.IsZero():
		return errors.New(`"exp" claim is required`)
	case iat.IsZero():
		return errors.New(`"iat" claim is required`)
	case !exp.After(iat):
		return fmt.Errorf(`"exp" (%d) must be after "iat" (%d)`, exp.Unix(), iat.Unix())
	}
	return nil
}

func classifyValidationError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired()):
		return newError(ErrCodeExpired, err)
	case errors.Is(err, jwt.ErrTokenNotYetValid()), errors.Is(err, jwt.ErrInvalidIssuedAt()):
		return newError(ErrCodeNotYetValid, err)
	}
	lower := strings.ToLower(err.Error())
	switch {
	case strings.Contains(lower, `"exp" not satisfied`):
		return newError(ErrCodeExpired, err)
	case strings.Contains(lower, `"nbf" not satisfied`), strings.Contains(lower, `"iat" not satisfied`):
		return newError(ErrCodeNotYetValid, err)
	}
	return newError(ErrCodeMalformedToken, err)
}

func extractClaims(token jwt.Token) (*Claims, error) {
	if token.Subject() == "" {
		return nil, errors.New(`"sub" claim is required`)
	}
	private := token.PrivateClaims()

	claims := &Claims{
		Subject:   token.Subject(),
		Issuer:    token.Issuer(),
		IssuedAt:  token.IssuedAt().UTC(),
		ExpiresAt: token.Expiration().UTC(),
	}
	if aud := token.Audience(); len(aud) > 0 {
		claims.Audience = append([]string(nil), aud...)
	}

	var err error
	if claims.Email, err = requiredString(private, claimEmail); err != nil {
		return nil, err
	}
	if claims.Name, err = requiredString(private, claimName); err != nil {
		return nil, err
	}
	if claims.Surname, err = requiredString(private, claimSurname); err != nil {
		return nil, err
	}
	if claims.Roles, err = requiredRoles(private); err != nil {
		return nil, err
	}
	if v, ok := private[claimChefProfileID]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%q claim must be a string, got %T", claimChefProfileID, v)
		}
		claims.ChefProfileID = s
	}
	return claims, nil
}

func requiredString(private map[string]any, name string) (string, error) {
	v, ok := private[name]
	if !ok {
		return "", fmt.Errorf("%q claim is required", name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%q claim must be a string, got %T", name, v)
	}
	return s, nil
}

func requiredRoles(private map[string]any) ([]Role, error) {
	v, ok := private[claimRoles]
	if !ok {
		return nil, fmt.Errorf("%q claim is required", claimRoles)
	}
	switch list := v.(type) {
	case []string:
		return RolesFromStrings(list), nil
	case []any:
		roles := make([]Role, 0, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%q[%d] must be a string, got %T", claimRoles, i, item)
			}
			roles = append(roles, Role(s))
		}
		return roles, nil
	default:
		return nil, fmt.Errorf("%q claim must be an array of strings, got %T", claimRoles, v)
	}
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
