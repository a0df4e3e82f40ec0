package model

import (
	"time"

	"github.com/nyumbani/homemanager/pkg/rbac"
)

// OrganizationRoleCustomization holds one organization's overrides for a
// base role. Every column is nullable; nil means "inherit the default".
// A row with every column nil is invalid and the store refuses to write
// one.
type OrganizationRoleCustomization struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	OrganizationID uint `gorm:"column:organization_id;uniqueIndex:idx_role_custom_org_base" json:"organization_id"`
	BaseRoleID     uint `gorm:"column:base_role_id;uniqueIndex:idx_role_custom_org_base" json:"base_role_id"`

	ManageUsers          *bool `gorm:"column:manage_users" json:"manage_users"`
	ManageBilling        *bool `gorm:"column:manage_billing" json:"manage_billing"`
	ManageProperties     *bool `gorm:"column:manage_properties" json:"manage_properties"`
	ManageTenants        *bool `gorm:"column:manage_tenants" json:"manage_tenants"`
	ViewReports          *bool `gorm:"column:view_reports" json:"view_reports"`
	ManageRoles          *bool `gorm:"column:manage_roles" json:"manage_roles"`
	ManageSystemSettings *bool `gorm:"column:manage_system_settings" json:"manage_system_settings"`
	ViewDashboard        *bool `gorm:"column:view_dashboard" json:"view_dashboard"`
	ManageTickets        *bool `gorm:"column:manage_tickets" json:"manage_tickets"`
	ManageNotices        *bool `gorm:"column:manage_notices" json:"manage_notices"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (OrganizationRoleCustomization) TableName() string {
	return "organization_role_customizations"
}

// Overrides collects the nullable columns into an override array.
func (c *OrganizationRoleCustomization) Overrides() rbac.Overrides {
	var o rbac.Overrides
	if c == nil {
		return o
	}
	o[rbac.PermissionManageUsers] = c.ManageUsers
	o[rbac.PermissionManageBilling] = c.ManageBilling
	o[rbac.PermissionManageProperties] = c.ManageProperties
	o[rbac.PermissionManageTenants] = c.ManageTenants
	o[rbac.PermissionViewReports] = c.ViewReports
	o[rbac.PermissionManageRoles] = c.ManageRoles
	o[rbac.PermissionManageSystemSettings] = c.ManageSystemSettings
	o[rbac.PermissionViewDashboard] = c.ViewDashboard
	o[rbac.PermissionManageTickets] = c.ManageTickets
	o[rbac.PermissionManageNotices] = c.ManageNotices
	return o
}

// SetOverrides writes an override array back into the columns.
func (c *OrganizationRoleCustomization) SetOverrides(o rbac.Overrides) {
	c.ManageUsers = o[rbac.PermissionManageUsers]
	c.ManageBilling = o[rbac.PermissionManageBilling]
	c.ManageProperties = o[rbac.PermissionManageProperties]
	c.ManageTenants = o[rbac.PermissionManageTenants]
	c.ViewReports = o[rbac.PermissionViewReports]
	c.ManageRoles = o[rbac.PermissionManageRoles]
	c.ManageSystemSettings = o[rbac.PermissionManageSystemSettings]
	c.ViewDashboard = o[rbac.PermissionViewDashboard]
	c.ManageTickets = o[rbac.PermissionManageTickets]
	c.ManageNotices = o[rbac.PermissionManageNotices]
}

// HasAnyOverride reports whether at least one column is set.
func (c *OrganizationRoleCustomization) HasAnyOverride() bool {
	return !c.Overrides().Empty()
}
