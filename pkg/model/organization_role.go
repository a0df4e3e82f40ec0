package model

import (
	"time"

	"github.com/nyumbani/homemanager/pkg/rbac"
)

// OrganizationRole binds a base role to one organization. Rows from
// before the base-role migration have a nil BaseRoleID and carry their
// own legacy_* permission flags.
type OrganizationRole struct {
	ID             uint  `gorm:"primaryKey" json:"id"`
	OrganizationID uint  `gorm:"column:organization_id;uniqueIndex:idx_org_roles_org_base" json:"organization_id"`
	BaseRoleID     *uint `gorm:"column:base_role_id;uniqueIndex:idx_org_roles_org_base" json:"base_role_id"`

	LegacyManageUsers      bool `gorm:"column:legacy_manage_users" json:"-"`
	LegacyManageBilling    bool `gorm:"column:legacy_manage_billing" json:"-"`
	LegacyManageProperties bool `gorm:"column:legacy_manage_properties" json:"-"`
	LegacyManageTenants    bool `gorm:"column:legacy_manage_tenants" json:"-"`
	LegacyViewReports      bool `gorm:"column:legacy_view_reports" json:"-"`

	BaseRole *BaseRole `gorm:"foreignKey:BaseRoleID" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (OrganizationRole) TableName() string {
	return "organization_roles"
}

// IsLegacy reports whether the row predates the base-role migration.
func (r *OrganizationRole) IsLegacy() bool {
	return r.BaseRoleID == nil
}

// Name comes from the base role; legacy rows display a fixed fallback.
func (r *OrganizationRole) Name() string {
	if r.BaseRole != nil {
		return r.BaseRole.Name
	}
	return "Legacy Role"
}

// Slug comes from the base role; legacy rows display a fixed fallback.
func (r *OrganizationRole) Slug() string {
	if r.BaseRole != nil {
		return r.BaseRole.Slug
	}
	return "legacy"
}

// Type comes from the base role; legacy rows count as plain members.
func (r *OrganizationRole) Type() rbac.RoleType {
	if r.BaseRole != nil {
		return r.BaseRole.RoleType
	}
	return rbac.RoleTypeMember
}

// LegacyPermissions collects the legacy_* columns into a permission set.
// Flags that never existed before the migration stay false.
func (r *OrganizationRole) LegacyPermissions() rbac.PermissionSet {
	var set rbac.PermissionSet
	set[rbac.PermissionManageUsers] = r.LegacyManageUsers
	set[rbac.PermissionManageBilling] = r.LegacyManageBilling
	set[rbac.PermissionManageProperties] = r.LegacyManageProperties
	set[rbac.PermissionManageTenants] = r.LegacyManageTenants
	set[rbac.PermissionViewReports] = r.LegacyViewReports
	return set
}

// ResourceOrganizationID implements the guard's Resource interface.
func (r *OrganizationRole) ResourceOrganizationID() *uint {
	if r == nil {
		return nil
	}
	id := r.OrganizationID
	return &id
}
