package authx

import (
	"errors"
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"
)

var signToken = jwt.Sign

// IssueToken signs profile into a compact token. The issued-at time is the
// current time and the expiry is derived from cfg.TTL.
func IssueToken(profile Profile, cfg IssueConfig) (string, error) {
	token, _, err := issue(profile, cfg)
	return token, err
}

func issue(profile Profile, cfg IssueConfig) (string, time.Time, error) {
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return "", time.Time{}, newError(ErrCodeInvalidConfig, err)
	}
	if profile.Subject == "" {
		return "", time.Time{}, newError(ErrCodeInvalidConfig, errors.New("subject is required"))
	}

	issuedAt := now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(cfg.TTL).Truncate(time.Second)

	builder := jwt.NewBuilder().
		Subject(profile.Subject).
		IssuedAt(issuedAt).
		Expiration(expiresAt).
		Claim(claimEmail, profile.Email).
		Claim(claimName, profile.Name).
		Claim(claimSurname, profile.Surname).
		Claim(claimRoles, rolesToStrings(profile.Roles))
	if profile.ChefProfileID != "" {
		builder = builder.Claim(claimChefProfileID, profile.ChefProfileID)
	}
	if cfg.Issuer != "" {
		builder = builder.Issuer(cfg.Issuer)
	}
	if cfg.Audience != "" {
		builder = builder.Audience([]string{cfg.Audience})
	}

	tok, err := builder.Build()
	if err != nil {
		return "", time.Time{}, newError(ErrCodeInvalidConfig, fmt.Errorf("build token: %w", err))
	}
	signed, err := signToken(tok, jwt.WithKey(cfg.Algorithm, cfg.Secret))
	if err != nil {
		return "", time.Time{}, newError(ErrCodeInvalidConfig, fmt.Errorf("sign token: %w", err))
	}
	return string(signed), expiresAt, nil
}
