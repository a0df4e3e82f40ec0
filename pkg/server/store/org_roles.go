package store

import (
	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/rbac"
)

// ProvisionResult reports an organization-role provisioning run.
type ProvisionResult struct {
	Organizations int  `json:"organizations"`
	RolesCreated  int  `json:"roles_created"`
	RolesExisting int  `json:"roles_existing"`
	DryRun        bool `json:"dry_run"`
}

// OrgRolesStore abstracts organization-scoped roles and their
// customizations.
type OrgRolesStore interface {
	// ListByOrg returns the organization's roles with base roles
	// preloaded, ordered by base role id.
	ListByOrg(orgID uint) ([]model.OrganizationRole, error)

	// GetByOrgAndSlug resolves a role by its base-role slug within one
	// organization. Returns ErrNotFound for unknown slugs and for legacy
	// rows (they have no slug).
	GetByOrgAndSlug(orgID uint, slug string) (*model.OrganizationRole, error)

	// GetOrCreate returns the organization's role for a base role,
	// creating it if absent. Concurrent callers converge on the same row.
	GetOrCreate(orgID, baseRoleID uint) (*model.OrganizationRole, error)

	// RoleState loads the resolution snapshot for a role: legacy rows
	// resolve from their own flags, migrated rows from base-role defaults
	// plus the organization's customization.
	RoleState(role *model.OrganizationRole) (rbac.RoleState, error)

	// GetCustomization fetches the customization row, ErrNotFound if absent.
	GetCustomization(orgID, baseRoleID uint) (*model.OrganizationRoleCustomization, error)

	// UpsertCustomization creates or replaces the customization.
	// Returns ErrValidation when every override is nil.
	UpsertCustomization(orgID, baseRoleID uint, overrides rbac.Overrides) (*model.OrganizationRoleCustomization, error)

	// DeleteCustomization resets a role to its defaults. Deleting an
	// absent customization succeeds.
	DeleteCustomization(orgID, baseRoleID uint) error

	// ProvisionAll creates the missing organization roles for every
	// organization x base role pair, in one transaction. With dryRun the
	// transaction rolls back.
	ProvisionAll(dryRun bool) (*ProvisionResult, error)
}
