package authx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bionicotaku/lingo-utils-authx"
)

func TestIdentity_HasChefProfile(t *testing.T) {
	t.Parallel()

	assert.True(t, authx.Identity{ChefProfileID: "p1"}.HasChefProfile())
	assert.False(t, authx.Identity{}.HasChefProfile())
}

func TestIdentity_OwnsResource(t *testing.T) {
	t.Parallel()

	id := authx.Identity{UserID: "user-1"}
	assert.True(t, id.OwnsResource(id.UserID))
	assert.False(t, id.OwnsResource("user-2"))
	assert.False(t, id.OwnsResource("USER-1"))
	assert.False(t, id.OwnsResource(" user-1"))
	assert.False(t, id.OwnsResource(""))
}

func TestIdentity_HasRole(t *testing.T) {
	t.Parallel()

	id := authx.Identity{Roles: []authx.Role{authx.RoleUser, authx.RoleChef, authx.RoleChef, "moderator"}}
	assert.True(t, id.HasRole(authx.RoleChef))
	assert.True(t, id.HasRole("moderator"))
	assert.False(t, id.HasRole(authx.RoleAdmin))
	assert.False(t, id.HasRole("Chef"))
	assert.False(t, authx.Identity{}.HasRole(authx.RoleUser))
}

func TestIdentity_HasAnyRole(t *testing.T) {
	t.Parallel()

	admin := authx.Identity{Roles: []authx.Role{authx.RoleAdmin}}
	chef := authx.Identity{Roles: []authx.Role{authx.RoleUser, authx.RoleChef}}

	assert.False(t, admin.HasAnyRole())
	assert.False(t, chef.HasAnyRole([]authx.Role{}...))
	assert.True(t, admin.HasAnyRole(authx.RoleAdmin))
	assert.False(t, chef.HasAnyRole(authx.RoleAdmin))
	assert.True(t, chef.HasAnyRole(authx.RoleAdmin, authx.RoleChef))
	assert.False(t, authx.Identity{}.HasAnyRole(authx.RoleUser, authx.RoleAdmin))
}

func TestRole_IsWellKnown(t *testing.T) {
	t.Parallel()

	for _, r := range []authx.Role{authx.RoleUser, authx.RoleChef, authx.RoleAdmin} {
		assert.True(t, r.IsWellKnown(), r)
	}
	assert.False(t, authx.Role("moderator").IsWellKnown())
	assert.False(t, authx.Role("Admin").IsWellKnown())
}
