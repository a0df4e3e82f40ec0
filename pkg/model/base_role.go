package model

import (
	"time"

	"github.com/nyumbani/homemanager/pkg/rbac"
)

// BaseRole is a platform-wide role definition carrying the default
// permission flags every organization inherits until it customizes them.
// Slug is the stable identity; seeding never rewrites it.
type BaseRole struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Name         string        `gorm:"column:name" json:"name"`
	Slug         string        `gorm:"column:slug;uniqueIndex" json:"slug"`
	RoleType     rbac.RoleType `gorm:"column:role_type;type:text" json:"role_type"`
	IsSystemRole bool          `gorm:"column:is_system_role;default:true" json:"is_system_role"`
	Description  string        `gorm:"column:description" json:"description"`

	DefaultManageUsers          bool `gorm:"column:default_manage_users" json:"default_manage_users"`
	DefaultManageBilling        bool `gorm:"column:default_manage_billing" json:"default_manage_billing"`
	DefaultManageProperties     bool `gorm:"column:default_manage_properties" json:"default_manage_properties"`
	DefaultManageTenants        bool `gorm:"column:default_manage_tenants" json:"default_manage_tenants"`
	DefaultViewReports          bool `gorm:"column:default_view_reports" json:"default_view_reports"`
	DefaultManageRoles          bool `gorm:"column:default_manage_roles" json:"default_manage_roles"`
	DefaultManageSystemSettings bool `gorm:"column:default_manage_system_settings" json:"default_manage_system_settings"`
	DefaultViewDashboard        bool `gorm:"column:default_view_dashboard" json:"default_view_dashboard"`
	DefaultManageTickets        bool `gorm:"column:default_manage_tickets" json:"default_manage_tickets"`
	DefaultManageNotices        bool `gorm:"column:default_manage_notices" json:"default_manage_notices"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BaseRole) TableName() string {
	return "base_roles"
}

// Defaults collects the default_* columns into a permission set.
func (r *BaseRole) Defaults() rbac.PermissionSet {
	var set rbac.PermissionSet
	set[rbac.PermissionManageUsers] = r.DefaultManageUsers
	set[rbac.PermissionManageBilling] = r.DefaultManageBilling
	set[rbac.PermissionManageProperties] = r.DefaultManageProperties
	set[rbac.PermissionManageTenants] = r.DefaultManageTenants
	set[rbac.PermissionViewReports] = r.DefaultViewReports
	set[rbac.PermissionManageRoles] = r.DefaultManageRoles
	set[rbac.PermissionManageSystemSettings] = r.DefaultManageSystemSettings
	set[rbac.PermissionViewDashboard] = r.DefaultViewDashboard
	set[rbac.PermissionManageTickets] = r.DefaultManageTickets
	set[rbac.PermissionManageNotices] = r.DefaultManageNotices
	return set
}

// SetDefaults writes a permission set back into the default_* columns.
func (r *BaseRole) SetDefaults(set rbac.PermissionSet) {
	r.DefaultManageUsers = set[rbac.PermissionManageUsers]
	r.DefaultManageBilling = set[rbac.PermissionManageBilling]
	r.DefaultManageProperties = set[rbac.PermissionManageProperties]
	r.DefaultManageTenants = set[rbac.PermissionManageTenants]
	r.DefaultViewReports = set[rbac.PermissionViewReports]
	r.DefaultManageRoles = set[rbac.PermissionManageRoles]
	r.DefaultManageSystemSettings = set[rbac.PermissionManageSystemSettings]
	r.DefaultViewDashboard = set[rbac.PermissionViewDashboard]
	r.DefaultManageTickets = set[rbac.PermissionManageTickets]
	r.DefaultManageNotices = set[rbac.PermissionManageNotices]
}
