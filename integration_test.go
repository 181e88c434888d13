package authx

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens minted by other signing libraries must verify the same way.
func TestVerifyToken_GolangJWTInterop(t *testing.T) {
	type wireClaims struct {
		Email         string   `json:"email"`
		Name          string   `json:"name"`
		Surname       string   `json:"surname"`
		ChefProfileID string   `json:"chefProfileId,omitempty"`
		Roles         []string `json:"roles"`
		jwt.RegisteredClaims
	}

	n := time.Now()
	mint := func(t *testing.T, method jwt.SigningMethod, secret []byte, exp time.Time, aud jwt.ClaimStrings) string {
		t.Helper()
		token := jwt.NewWithClaims(method, wireClaims{
			Email:         "a@b.com",
			Name:          "A",
			Surname:       "B",
			ChefProfileID: "p1",
			Roles:         []string{"chef", "admin"},
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "u1",
				Issuer:    "identity-service",
				Audience:  aud,
				IssuedAt:  jwt.NewNumericDate(n.Add(-time.Minute)),
				ExpiresAt: jwt.NewNumericDate(exp),
			},
		})
		signed, err := token.SignedString(secret)
		if err != nil {
			t.Fatalf("SignedString: %v", err)
		}
		return signed
	}

	cfg := VerifyConfig{Secret: testSecret, Issuer: "identity-service", Audience: "chef-platform"}

	t.Run("accepted", func(t *testing.T) {
		for _, method := range []jwt.SigningMethod{jwt.SigningMethodHS256, jwt.SigningMethodHS384, jwt.SigningMethodHS512} {
			token := mint(t, method, testSecret, n.Add(time.Hour), jwt.ClaimStrings{"billing", "chef-platform"})
			claims, err := VerifyToken(token, cfg)
			if err != nil {
				t.Fatalf("%s: VerifyToken: %v", method.Alg(), err)
			}
			if claims.Subject != "u1" || claims.ChefProfileID != "p1" {
				t.Fatalf("%s: unexpected claims: %+v", method.Alg(), claims)
			}
			if len(claims.Roles) != 2 || claims.Roles[1] != RoleAdmin {
				t.Fatalf("%s: unexpected roles: %v", method.Alg(), claims.Roles)
			}
		}
	})

	t.Run("expired", func(t *testing.T) {
		token := mint(t, jwt.SigningMethodHS256, testSecret, n.Add(-time.Second*30), jwt.ClaimStrings{"chef-platform"})
		_, err := VerifyToken(token, cfg)
		assertCode(t, err, ErrCodeExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := mint(t, jwt.SigningMethodHS256, []byte("not-the-secret"), n.Add(time.Hour), jwt.ClaimStrings{"chef-platform"})
		_, err := VerifyToken(token, cfg)
		assertCode(t, err, ErrCodeInvalidSignature)
	})

	t.Run("audience not listed", func(t *testing.T) {
		token := mint(t, jwt.SigningMethodHS256, testSecret, n.Add(time.Hour), jwt.ClaimStrings{"billing"})
		_, err := VerifyToken(token, cfg)
		assertCode(t, err, ErrCodeInvalidAudience)
	})

	t.Run("authx tokens parse with golang-jwt", func(t *testing.T) {
		signed, err := IssueToken(Profile{Subject: "u1", Email: "a@b.com", Name: "A", Surname: "B", Roles: []Role{RoleUser}},
			IssueConfig{Secret: testSecret, TTL: time.Hour, Issuer: "identity-service", Audience: "chef-platform"})
		if err != nil {
			t.Fatalf("IssueToken: %v", err)
		}
		var out wireClaims
		_, err = jwt.ParseWithClaims(signed, &out, func(tok *jwt.Token) (any, error) {
			return testSecret, nil
		},
			jwt.WithValidMethods([]string{"HS256"}),
			jwt.WithIssuer("identity-service"),
			jwt.WithAudience("chef-platform"),
		)
		if err != nil {
			t.Fatalf("ParseWithClaims: %v", err)
		}
		if out.Subject != "u1" || len(out.Roles) != 1 || out.Roles[0] != "user" {
			t.Fatalf("unexpected claims: %+v", out)
		}
	})
}

func TestIdentityServiceIntegration(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("RUN_INTEGRATION_TESTS not set to true")
	}

	secret := os.Getenv("AUTHX_SECRET")
	token := strings.TrimSpace(os.Getenv("AUTHX_TEST_TOKEN"))
	if secret == "" || token == "" {
		t.Fatal("AUTHX_SECRET and AUTHX_TEST_TOKEN environment variables required")
	}

	claims, err := VerifyToken(token, VerifyConfig{
		Secret:   []byte(secret),
		Issuer:   os.Getenv("AUTHX_ISSUER"),
		Audience: os.Getenv("AUTHX_AUDIENCE"),
	})
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.Subject == "" {
		t.Fatal("claims.Subject empty")
	}
	t.Logf("verified token for %s, roles %v, expires %s", claims.Subject, claims.Roles, claims.ExpiresAt.Format(time.RFC3339))
}
