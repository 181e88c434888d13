package authx

import "time"

// Private claim names on the wire.
const (
	claimEmail         = "email"
	claimName          = "name"
	claimSurname       = "surname"
	claimRoles         = "roles"
	claimChefProfileID = "chefProfileId"
)

// Claims represents a verified token payload.
type Claims struct {
	Subject       string
	Email         string
	Name          string
	Surname       string
	ChefProfileID string
	Roles         []Role

	Issuer    string
	Audience  []string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Profile is the identity an issuing service signs into a token.
// Temporal claims are computed at issuance and cannot be supplied.
type Profile struct {
	Subject       string
	Email         string
	Name          string
	Surname       string
	ChefProfileID string
	Roles         []Role
}
