package gorm

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/server/store"
)

// Ensure TenantsStore implements store.TenantsStore
var _ store.TenantsStore = (*TenantsStore)(nil)

// TenantsStore implements store.TenantsStore using GORM
type TenantsStore struct {
	db *gorm.DB
}

// NewTenantsStore creates a new TenantsStore
func NewTenantsStore(db *gorm.DB) *TenantsStore {
	return &TenantsStore{db: db}
}

// Create persists a new tenant
func (s *TenantsStore) Create(tenant *model.Tenant) error {
	if err := s.db.Create(tenant).Error; err != nil {
		return fmt.Errorf("failed to create tenant: %w", err)
	}
	return nil
}

// Get retrieves one tenant by id
func (s *TenantsStore) Get(id uint) (*model.Tenant, error) {
	var tenant model.Tenant
	err := s.db.Preload("Unit.Property").First(&tenant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("tenant %d: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tenant %d: %w", id, err)
	}
	return &tenant, nil
}

// ListByOrg returns an organization's tenants
func (s *TenantsStore) ListByOrg(orgID uint) ([]model.Tenant, error) {
	var tenants []model.Tenant
	err := s.db.Where("organization_id = ?", orgID).Order("id").Find(&tenants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, nil
}

// Allocate assigns a tenant to a unit and marks the unit occupied. Both
// rows change in one transaction; the unit must be vacant and belong to
// the tenant's organization.
func (s *TenantsStore) Allocate(tenantID, unitID uint) (*model.Tenant, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var tenant model.Tenant
		if err := tx.First(&tenant, tenantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("tenant %d: %w", tenantID, store.ErrNotFound)
			}
			return fmt.Errorf("failed to fetch tenant %d: %w", tenantID, err)
		}

		var unit model.Unit
		if err := tx.Preload("Property").First(&unit, unitID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("unit %d: %w", unitID, store.ErrNotFound)
			}
			return fmt.Errorf("failed to fetch unit %d: %w", unitID, err)
		}

		if unit.Property == nil || unit.Property.OrganizationID != tenant.OrganizationID {
			return fmt.Errorf("unit %d is not in tenant's organization: %w", unitID, store.ErrValidation)
		}
		if unit.IsOccupied {
			return fmt.Errorf("unit %d is occupied: %w", unitID, store.ErrValidation)
		}

		now := time.Now()
		if err := tx.Model(&tenant).Updates(map[string]interface{}{
			"unit_id":      unitID,
			"move_in_date": now,
		}).Error; err != nil {
			return fmt.Errorf("failed to allocate tenant %d: %w", tenantID, err)
		}
		if err := tx.Model(&unit).Update("is_occupied", true).Error; err != nil {
			return fmt.Errorf("failed to mark unit %d occupied: %w", unitID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(tenantID)
}

// CreateLease persists a new lease
func (s *TenantsStore) CreateLease(lease *model.Lease) error {
	if err := s.db.Create(lease).Error; err != nil {
		return fmt.Errorf("failed to create lease: %w", err)
	}
	return nil
}

// ListLeases returns an organization's leases
func (s *TenantsStore) ListLeases(orgID uint) ([]model.Lease, error) {
	var leases []model.Lease
	err := s.db.Where("organization_id = ?", orgID).Order("id").Find(&leases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list leases: %w", err)
	}
	return leases, nil
}
