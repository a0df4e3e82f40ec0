package gorm

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/rbac"
	"github.com/nyumbani/homemanager/pkg/server/store"
)

// Ensure BaseRolesStore implements store.BaseRolesStore
var _ store.BaseRolesStore = (*BaseRolesStore)(nil)

// BaseRolesStore implements store.BaseRolesStore using GORM
type BaseRolesStore struct {
	db *gorm.DB
}

// NewBaseRolesStore creates a new BaseRolesStore
func NewBaseRolesStore(db *gorm.DB) *BaseRolesStore {
	return &BaseRolesStore{db: db}
}

// List returns all base roles ordered by id
func (s *BaseRolesStore) List() ([]model.BaseRole, error) {
	var roles []model.BaseRole
	if err := s.db.Order("id").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to list base roles: %w", err)
	}
	return roles, nil
}

// GetBySlug retrieves one base role by slug
func (s *BaseRolesStore) GetBySlug(slug string) (*model.BaseRole, error) {
	var role model.BaseRole
	err := s.db.Where("slug = ?", slug).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("base role %q: %w", slug, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch base role %q: %w", slug, err)
	}
	return &role, nil
}

// Ensure upserts the catalog in a single transaction. Rows are matched
// by slug; the slug itself is never rewritten.
func (s *BaseRolesStore) Ensure(catalog rbac.Catalog, dryRun bool) (*store.SeedResult, error) {
	result := &store.SeedResult{DryRun: dryRun}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, entry := range catalog {
			var existing model.BaseRole
			err := tx.Where("slug = ?", entry.Slug).First(&existing).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				role := model.BaseRole{
					Name:         entry.Name,
					Slug:         entry.Slug,
					RoleType:     entry.RoleType,
					IsSystemRole: true,
					Description:  entry.Description,
				}
				role.SetDefaults(entry.Defaults)
				if err := tx.Create(&role).Error; err != nil {
					return fmt.Errorf("failed to create base role %q: %w", entry.Slug, err)
				}
				result.Created = append(result.Created, entry.Slug)
			case err != nil:
				return fmt.Errorf("failed to fetch base role %q: %w", entry.Slug, err)
			default:
				existing.Name = entry.Name
				existing.RoleType = entry.RoleType
				existing.Description = entry.Description
				existing.IsSystemRole = true
				existing.SetDefaults(entry.Defaults)
				if err := tx.Save(&existing).Error; err != nil {
					return fmt.Errorf("failed to update base role %q: %w", entry.Slug, err)
				}
				result.Updated = append(result.Updated, entry.Slug)
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
