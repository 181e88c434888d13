package authx

// HasChefProfile reports whether the caller has completed chef onboarding.
func (id Identity) HasChefProfile() bool {
	return id.ChefProfileID != ""
}

// OwnsResource reports whether the caller is the owner of a resource.
// The comparison is exact and case-sensitive.
func (id Identity) OwnsResource(ownerID string) bool {
	return id.UserID == ownerID
}

// HasRole reports whether role is among the caller's roles.
func (id Identity) HasRole(role Role) bool {
	for _, r := range id.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether at least one of roles is among the caller's roles.
// No roles means no match.
func (id Identity) HasAnyRole(roles ...Role) bool {
	for _, role := range roles {
		if id.HasRole(role) {
			return true
		}
	}
	return false
}
