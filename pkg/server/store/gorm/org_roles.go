package gorm

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/rbac"
	"github.com/nyumbani/homemanager/pkg/server/store"
)

// Ensure OrgRolesStore implements store.OrgRolesStore
var _ store.OrgRolesStore = (*OrgRolesStore)(nil)

// OrgRolesStore implements store.OrgRolesStore using GORM
type OrgRolesStore struct {
	db *gorm.DB
}

// NewOrgRolesStore creates a new OrgRolesStore
func NewOrgRolesStore(db *gorm.DB) *OrgRolesStore {
	return &OrgRolesStore{db: db}
}

// ListByOrg returns the organization's roles with base roles preloaded
func (s *OrgRolesStore) ListByOrg(orgID uint) ([]model.OrganizationRole, error) {
	var roles []model.OrganizationRole
	err := s.db.Preload("BaseRole").
		Where("organization_id = ?", orgID).
		Order("base_role_id").
		Find(&roles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list organization roles: %w", err)
	}
	return roles, nil
}

// GetByOrgAndSlug resolves a role by base-role slug within one organization
func (s *OrgRolesStore) GetByOrgAndSlug(orgID uint, slug string) (*model.OrganizationRole, error) {
	var role model.OrganizationRole
	err := s.db.Preload("BaseRole").
		Joins("JOIN base_roles ON base_roles.id = organization_roles.base_role_id").
		Where("organization_roles.organization_id = ? AND base_roles.slug = ?", orgID, slug).
		First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("role %q: %w", slug, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch role %q: %w", slug, err)
	}
	return &role, nil
}

// GetOrCreate returns the organization's role for a base role, creating
// it when absent. The unique (organization_id, base_role_id) constraint
// serializes concurrent callers; losing the insert race degrades to a
// fetch of the winner's row.
func (s *OrgRolesStore) GetOrCreate(orgID, baseRoleID uint) (*model.OrganizationRole, error) {
	role := model.OrganizationRole{OrganizationID: orgID, BaseRoleID: &baseRoleID}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&role).Error; err != nil {
		if !isUniqueViolation(err) {
			return nil, fmt.Errorf("failed to create organization role: %w", err)
		}
	}

	var out model.OrganizationRole
	err := s.db.Preload("BaseRole").
		Where("organization_id = ? AND base_role_id = ?", orgID, baseRoleID).
		First(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch organization role: %w", err)
	}
	return &out, nil
}

// RoleState loads the resolution snapshot for a role
func (s *OrgRolesStore) RoleState(role *model.OrganizationRole) (rbac.RoleState, error) {
	return resolveRoleState(s.db, role)
}

// resolveRoleState builds the guard-facing snapshot for one role. Legacy
// rows resolve purely from their own flags; migrated rows layer the
// organization's customization (if any) over the base-role defaults.
func resolveRoleState(db *gorm.DB, role *model.OrganizationRole) (rbac.RoleState, error) {
	if role.IsLegacy() {
		return rbac.LegacyRole{Permissions: role.LegacyPermissions()}, nil
	}

	base := role.BaseRole
	if base == nil {
		var fetched model.BaseRole
		if err := db.First(&fetched, *role.BaseRoleID).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch base role %d: %w", *role.BaseRoleID, err)
		}
		base = &fetched
	}

	var custom model.OrganizationRoleCustomization
	err := db.Where("organization_id = ? AND base_role_id = ?", role.OrganizationID, *role.BaseRoleID).
		First(&custom).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rbac.ResolvedRole{Defaults: base.Defaults()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch role customization: %w", err)
	}
	return rbac.ResolvedRole{Defaults: base.Defaults(), Overrides: custom.Overrides()}, nil
}

// GetCustomization fetches the customization row
func (s *OrgRolesStore) GetCustomization(orgID, baseRoleID uint) (*model.OrganizationRoleCustomization, error) {
	var custom model.OrganizationRoleCustomization
	err := s.db.Where("organization_id = ? AND base_role_id = ?", orgID, baseRoleID).
		First(&custom).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("customization for base role %d: %w", baseRoleID, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch role customization: %w", err)
	}
	return &custom, nil
}

// UpsertCustomization creates or replaces the customization. An upsert
// with no overrides at all is rejected; DeleteCustomization is the way
// to reset a role.
func (s *OrgRolesStore) UpsertCustomization(orgID, baseRoleID uint, overrides rbac.Overrides) (*model.OrganizationRoleCustomization, error) {
	if overrides.Empty() {
		return nil, fmt.Errorf("customization must override at least one permission: %w", store.ErrValidation)
	}

	var custom model.OrganizationRoleCustomization
	err := s.db.Where("organization_id = ? AND base_role_id = ?", orgID, baseRoleID).
		First(&custom).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		custom = model.OrganizationRoleCustomization{OrganizationID: orgID, BaseRoleID: baseRoleID}
		custom.SetOverrides(overrides)
		if createErr := s.db.Create(&custom).Error; createErr != nil {
			if !isUniqueViolation(createErr) {
				return nil, fmt.Errorf("failed to create role customization: %w", createErr)
			}
			// Lost the race; update the winner's row instead.
			if err := s.db.Where("organization_id = ? AND base_role_id = ?", orgID, baseRoleID).
				First(&custom).Error; err != nil {
				return nil, fmt.Errorf("failed to fetch role customization: %w", err)
			}
			custom.SetOverrides(overrides)
			if err := s.db.Save(&custom).Error; err != nil {
				return nil, fmt.Errorf("failed to update role customization: %w", err)
			}
		}
		return &custom, nil
	case err != nil:
		return nil, fmt.Errorf("failed to fetch role customization: %w", err)
	default:
		custom.SetOverrides(overrides)
		if err := s.db.Save(&custom).Error; err != nil {
			return nil, fmt.Errorf("failed to update role customization: %w", err)
		}
		return &custom, nil
	}
}

// DeleteCustomization resets a role to its defaults. Absent rows delete
// cleanly.
func (s *OrgRolesStore) DeleteCustomization(orgID, baseRoleID uint) error {
	err := s.db.Where("organization_id = ? AND base_role_id = ?", orgID, baseRoleID).
		Delete(&model.OrganizationRoleCustomization{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete role customization: %w", err)
	}
	return nil
}

// ProvisionAll creates the missing organization roles for every
// organization x base role pair in one transaction.
func (s *OrgRolesStore) ProvisionAll(dryRun bool) (*store.ProvisionResult, error) {
	result := &store.ProvisionResult{DryRun: dryRun}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var orgs []model.Organization
		if err := tx.Order("id").Find(&orgs).Error; err != nil {
			return fmt.Errorf("failed to list organizations: %w", err)
		}
		var baseRoles []model.BaseRole
		if err := tx.Order("id").Find(&baseRoles).Error; err != nil {
			return fmt.Errorf("failed to list base roles: %w", err)
		}

		result.Organizations = len(orgs)
		for _, org := range orgs {
			for i := range baseRoles {
				baseRoleID := baseRoles[i].ID
				role := model.OrganizationRole{OrganizationID: org.ID, BaseRoleID: &baseRoleID}
				res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&role)
				if res.Error != nil {
					return fmt.Errorf("failed to provision role %q for organization %q: %w",
						baseRoles[i].Slug, org.Slug, res.Error)
				}
				if res.RowsAffected > 0 {
					result.RolesCreated++
				} else {
					result.RolesExisting++
				}
			}
		}
		if dryRun {
			return errDryRunRollback
		}
		return nil
	})
	if err != nil && !(dryRun && errors.Is(err, errDryRunRollback)) {
		return nil, err
	}
	return result, nil
}
