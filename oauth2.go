package authx

import (
	"time"

	"golang.org/x/oauth2"
)

const tokenTypeBearer = "Bearer"

// IssueOAuth2Token signs profile like IssueToken and wraps the result as an
// OAuth2 bearer token, ready to be returned from a token endpoint or attached
// to an outbound request with SetAuthHeader.
func IssueOAuth2Token(profile Profile, cfg IssueConfig) (*oauth2.Token, error) {
	signed, expiresAt, err := issue(profile, cfg)
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{
		AccessToken: signed,
		TokenType:   tokenTypeBearer,
		Expiry:      expiresAt,
		ExpiresIn:   int64(cfg.TTL / time.Second),
	}, nil
}
