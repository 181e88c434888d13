package authx

// Role is a role label carried in the roles claim. Any string is a valid role;
// the constants below are the ones every service knows about.
type Role string

const (
	RoleUser  Role = "user"
	RoleChef  Role = "chef"
	RoleAdmin Role = "admin"
)

// IsWellKnown reports whether r is one of the predefined roles.
func (r Role) IsWellKnown() bool {
	switch r {
	case RoleUser, RoleChef, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// RolesFromStrings converts raw labels into roles, preserving order and duplicates.
func RolesFromStrings(values []string) []Role {
	if values == nil {
		return nil
	}
	out := make([]Role, len(values))
	for i, v := range values {
		out[i] = Role(v)
	}
	return out
}

func rolesToStrings(roles []Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}
