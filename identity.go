package authx

// Identity is the request-scoped view of a verified caller.
type Identity struct {
	UserID        string
	Email         string
	Name          string
	Surname       string
	ChefProfileID string
	Roles         []Role
	RequestID     string
}

// NewIdentity projects verified claims into an Identity for one request.
// Roles are copied as-is, duplicates included.
func NewIdentity(claims *Claims, requestID string) Identity {
	if claims == nil {
		return Identity{RequestID: requestID}
	}
	var roles []Role
	if claims.Roles != nil {
		roles = append(make([]Role, 0, len(claims.Roles)), claims.Roles...)
	}
	return Identity{
		UserID:        claims.Subject,
		Email:         claims.Email,
		Name:          claims.Name,
		Surname:       claims.Surname,
		ChefProfileID: claims.ChefProfileID,
		Roles:         roles,
		RequestID:     requestID,
	}
}
