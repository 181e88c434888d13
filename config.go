package authx

import (
	"errors"
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
)

const defaultAlgorithm = jwa.HS256

// VerifyConfig contains the parameters for a single verification call.
type VerifyConfig struct {
	Secret    []byte
	Issuer    string
	Audience  string
	ClockSkew time.Duration
}

// IssueConfig contains the parameters for a single issuance call.
type IssueConfig struct {
	Secret    []byte
	TTL       time.Duration
	Issuer    string
	Audience  string
	Algorithm jwa.SignatureAlgorithm
}

// normalize sets default values for optional fields.
func (c *VerifyConfig) normalize() {
	if c.ClockSkew < 0 {
		c.ClockSkew = 0
	}
}

// validate ensures the verification configuration is usable.
func (c VerifyConfig) validate() error {
	if len(c.Secret) == 0 {
		return errors.New("secret is required")
	}
	return nil
}

// normalize sets default values for optional fields.
func (c *IssueConfig) normalize() {
	if c.Algorithm == "" {
		c.Algorithm = defaultAlgorithm
	}
}

// validate ensures the issuance configuration is usable.
func (c IssueConfig) validate() error {
	switch {
	case len(c.Secret) == 0:
		return errors.New("secret is required")
	case c.TTL < time.Second:
		return fmt.Errorf("ttl must be at least 1s, got %s", c.TTL)
	case !isHMAC(c.Algorithm):
		return fmt.Errorf("unsupported signing algorithm %q", c.Algorithm)
	}
	return nil
}

func isHMAC(alg jwa.SignatureAlgorithm) bool {
	switch alg {
	case jwa.HS256, jwa.HS384, jwa.HS512:
		return true
	}
	return false
}
