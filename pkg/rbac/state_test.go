package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(v bool) *bool { return &v }

func TestResolvedRoleFallsBackPerPermission(t *testing.T) {
	defaults := PermissionSet{}.
		Set(PermissionManageUsers, true).
		Set(PermissionViewDashboard, true)

	state := ResolvedRole{
		Defaults: defaults,
		Overrides: Overrides{
			PermissionManageUsers:   boolPtr(false),
			PermissionManageTenants: boolPtr(true),
		},
	}

	// Overridden flags win in both directions.
	assert.False(t, EffectivePermission(state, PermissionManageUsers))
	assert.True(t, EffectivePermission(state, PermissionManageTenants))

	// Everything else keeps its default.
	assert.True(t, EffectivePermission(state, PermissionViewDashboard))
	assert.False(t, EffectivePermission(state, PermissionManageBilling))
}

func TestLegacyRoleIgnoresOverrides(t *testing.T) {
	state := LegacyRole{
		Permissions: PermissionSet{}.Set(PermissionManageTickets, true),
	}

	assert.True(t, EffectivePermission(state, PermissionManageTickets))
	assert.False(t, EffectivePermission(state, PermissionManageUsers))
}

func TestEffectivePermissionNilState(t *testing.T) {
	assert.False(t, EffectivePermission(nil, PermissionViewDashboard))
}

func TestEffectiveSetCoversEveryPermission(t *testing.T) {
	set := EffectiveSet(ResolvedRole{})
	assert.Len(t, set, NumPermissions)
	assert.Contains(t, set, "manage_system_settings")
}

func TestOverridesEmpty(t *testing.T) {
	assert.True(t, Overrides{}.Empty())

	o := Overrides{}
	o[PermissionViewReports] = boolPtr(false)
	assert.False(t, o.Empty())
}
