package rbac

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	require.Len(t, catalog, 5)

	bySlug := map[string]CatalogEntry{}
	for _, entry := range catalog {
		bySlug[entry.Slug] = entry
	}

	owner := bySlug["owner"]
	for _, p := range PermissionValues() {
		assert.True(t, owner.Defaults[p], "owner should default %s", p)
	}

	admin := bySlug["admin"]
	assert.False(t, admin.Defaults[PermissionManageBilling])
	assert.False(t, admin.Defaults[PermissionManageSystemSettings])
	assert.True(t, admin.Defaults[PermissionManageRoles])

	manager := bySlug["manager"]
	assert.True(t, manager.Defaults[PermissionManageUsers])
	assert.True(t, manager.Defaults[PermissionViewReports])
	assert.False(t, manager.Defaults[PermissionManageRoles])
	assert.False(t, manager.Defaults[PermissionManageBilling])

	member := bySlug["member"]
	assert.True(t, member.Defaults[PermissionManageTenants])
	assert.False(t, member.Defaults[PermissionViewReports])
	assert.False(t, member.Defaults[PermissionManageUsers])

	guest := bySlug["guest"]
	assert.True(t, guest.Defaults[PermissionViewDashboard])
	for _, p := range PermissionValues() {
		if p == PermissionViewDashboard {
			continue
		}
		assert.False(t, guest.Defaults[p], "guest should not default %s", p)
	}
}

func TestLoadCatalog(t *testing.T) {
	doc := `
roles:
  - name: Caretaker
    slug: caretaker
    description: On-site caretaker
    role_type: member
    permissions: [manage_tickets, view_dashboard]
  - name: Auditor
    slug: auditor
    role_type: guest
    permissions: [view_reports]
`
	catalog, err := LoadCatalog(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, catalog, 2)

	assert.Equal(t, RoleTypeMember, catalog[0].RoleType)
	assert.True(t, catalog[0].Defaults[PermissionManageTickets])
	assert.True(t, catalog[0].Defaults[PermissionViewDashboard])
	assert.False(t, catalog[0].Defaults[PermissionManageUsers])

	assert.True(t, catalog[1].Defaults[PermissionViewReports])
}

func TestLoadCatalogRejectsBadInput(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{
			"unknown permission",
			"roles:\n  - name: X\n    slug: x\n    role_type: member\n    permissions: [fly]\n",
		},
		{
			"unknown role type",
			"roles:\n  - name: X\n    slug: x\n    role_type: emperor\n",
		},
		{
			"missing slug",
			"roles:\n  - name: X\n    role_type: member\n",
		},
		{
			"duplicate slug",
			"roles:\n  - name: X\n    slug: x\n    role_type: member\n  - name: Y\n    slug: x\n    role_type: guest\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadCatalog(strings.NewReader(tc.doc))
			assert.Error(t, err)
		})
	}
}
