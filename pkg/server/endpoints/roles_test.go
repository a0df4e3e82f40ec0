package endpoints

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/rbac"
	"github.com/nyumbani/homemanager/pkg/server/store"
)

func managerRole(orgID uint) *model.OrganizationRole {
	baseID := uint(3)
	return &model.OrganizationRole{
		ID:             30,
		OrganizationID: orgID,
		BaseRoleID:     &baseID,
		BaseRole: &model.BaseRole{
			ID:       baseID,
			Name:     "Manager",
			Slug:     "manager",
			RoleType: rbac.RoleTypeManager,
		},
	}
}

func TestListRoles(t *testing.T) {
	s, stores := newTestServer()
	orgID := uint(3)

	stores.Memberships.On("ActiveMembershipRoles", mock.Anything, uint(7), orgID).
		Return(memberRoles(rbac.PermissionViewDashboard), nil)

	role := managerRole(orgID)
	stores.OrgRoles.On("ListByOrg", orgID).Return([]model.OrganizationRole{*role}, nil)
	stores.OrgRoles.On("RoleState", mock.Anything).Return(rbac.ResolvedRole{
		Defaults: rbac.PermissionSet{}.
			Set(rbac.PermissionManageProperties, true).
			Set(rbac.PermissionViewDashboard, true),
	}, nil)

	rec := doRequest(t, s, "GET", "/roles", nil, 7, &orgID, false)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []RoleResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp, 1)
	assert.Equal(t, "manager", resp[0].Slug)
	assert.False(t, resp[0].Legacy)
	assert.True(t, resp[0].Permissions["manage_properties"])
	assert.False(t, resp[0].Permissions["manage_billing"])
}

func TestGetRoleAppliesOverrides(t *testing.T) {
	s, stores := newTestServer()
	orgID := uint(3)

	stores.Memberships.On("ActiveMembershipRoles", mock.Anything, uint(7), orgID).
		Return(memberRoles(rbac.PermissionViewDashboard), nil)

	role := managerRole(orgID)
	stores.OrgRoles.On("GetByOrgAndSlug", orgID, "manager").Return(role, nil)

	off := false
	var overrides rbac.Overrides
	overrides[rbac.PermissionManageProperties] = &off
	stores.OrgRoles.On("RoleState", role).Return(rbac.ResolvedRole{
		Defaults:  rbac.PermissionSet{}.Set(rbac.PermissionManageProperties, true),
		Overrides: overrides,
	}, nil)

	rec := doRequest(t, s, "GET", "/roles/manager", nil, 7, &orgID, false)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp RoleResponse
	decodeBody(t, rec, &resp)
	assert.False(t, resp.Permissions["manage_properties"])
}

func TestUpsertCustomization(t *testing.T) {
	s, stores := newTestServer()
	orgID := uint(3)

	stores.Memberships.On("ActiveMembershipRoles", mock.Anything, uint(7), orgID).
		Return(memberRoles(rbac.PermissionManageRoles), nil)

	role := managerRole(orgID)
	stores.OrgRoles.On("GetByOrgAndSlug", orgID, "manager").Return(role, nil)
	stores.OrgRoles.On("UpsertCustomization", orgID, uint(3), mock.MatchedBy(func(o rbac.Overrides) bool {
		v := o[rbac.PermissionManageProperties]
		return v != nil && !*v
	})).Return(&model.OrganizationRoleCustomization{OrganizationID: orgID, BaseRoleID: 3}, nil)

	rec := doRequest(t, s, "PUT", "/roles/manager/customization",
		map[string]*bool{"manage_properties": boolPtr(false)}, 7, &orgID, false)

	assert.Equal(t, http.StatusOK, rec.Code)
	stores.OrgRoles.AssertExpectations(t)
}

func TestUpsertCustomizationAllNull(t *testing.T) {
	s, stores := newTestServer()
	orgID := uint(3)

	stores.Memberships.On("ActiveMembershipRoles", mock.Anything, uint(7), orgID).
		Return(memberRoles(rbac.PermissionManageRoles), nil)

	role := managerRole(orgID)
	stores.OrgRoles.On("GetByOrgAndSlug", orgID, "manager").Return(role, nil)
	stores.OrgRoles.On("UpsertCustomization", orgID, uint(3), mock.Anything).
		Return(nil, store.ErrValidation)

	rec := doRequest(t, s, "PUT", "/roles/manager/customization",
		map[string]*bool{}, 7, &orgID, false)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpsertCustomizationUnknownPermission(t *testing.T) {
	s, stores := newTestServer()
	orgID := uint(3)

	stores.Memberships.On("ActiveMembershipRoles", mock.Anything, uint(7), orgID).
		Return(memberRoles(rbac.PermissionManageRoles), nil)
	stores.OrgRoles.On("GetByOrgAndSlug", orgID, "manager").Return(managerRole(orgID), nil)

	rec := doRequest(t, s, "PUT", "/roles/manager/customization",
		map[string]*bool{"launch_missiles": boolPtr(true)}, 7, &orgID, false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	stores.OrgRoles.AssertNotCalled(t, "UpsertCustomization", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpsertCustomizationDenied(t *testing.T) {
	s, stores := newTestServer()
	orgID := uint(3)

	// view-only member, no manage_roles
	stores.Memberships.On("ActiveMembershipRoles", mock.Anything, uint(7), orgID).
		Return(memberRoles(rbac.PermissionViewDashboard), nil)

	rec := doRequest(t, s, "PUT", "/roles/manager/customization",
		map[string]*bool{"manage_properties": boolPtr(false)}, 7, &orgID, false)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	stores.OrgRoles.AssertNotCalled(t, "UpsertCustomization", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteCustomization(t *testing.T) {
	s, stores := newTestServer()
	orgID := uint(3)

	stores.Memberships.On("ActiveMembershipRoles", mock.Anything, uint(7), orgID).
		Return(ownerRoles(), nil)

	role := managerRole(orgID)
	stores.OrgRoles.On("GetByOrgAndSlug", orgID, "manager").Return(role, nil)
	stores.OrgRoles.On("DeleteCustomization", orgID, uint(3)).Return(nil)

	rec := doRequest(t, s, "DELETE", "/roles/manager/customization", nil, 7, &orgID, false)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestListBaseRoles(t *testing.T) {
	s, stores := newTestServer()
	orgID := uint(3)

	stores.BaseRoles.On("List").Return([]model.BaseRole{
		{ID: 1, Name: "Owner", Slug: "owner", RoleType: rbac.RoleTypeOwner},
		{ID: 2, Name: "Admin", Slug: "admin", RoleType: rbac.RoleTypeAdmin},
	}, nil)

	rec := doRequest(t, s, "GET", "/base-roles", nil, 7, &orgID, false)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []model.BaseRole
	decodeBody(t, rec, &resp)
	assert.Len(t, resp, 2)
}

func boolPtr(v bool) *bool { return &v }
