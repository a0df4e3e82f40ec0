package gorm

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/server/store"
)

// Ensure PropertiesStore implements store.PropertiesStore
var _ store.PropertiesStore = (*PropertiesStore)(nil)

// PropertiesStore implements store.PropertiesStore using GORM
type PropertiesStore struct {
	db *gorm.DB
}

// NewPropertiesStore creates a new PropertiesStore
func NewPropertiesStore(db *gorm.DB) *PropertiesStore {
	return &PropertiesStore{db: db}
}

// Create persists a new property
func (s *PropertiesStore) Create(property *model.Property) error {
	if err := s.db.Create(property).Error; err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	return nil
}

// Get retrieves one property by id
func (s *PropertiesStore) Get(id uint) (*model.Property, error) {
	var property model.Property
	err := s.db.First(&property, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("property %d: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch property %d: %w", id, err)
	}
	return &property, nil
}

// ListByOrg returns an organization's properties
func (s *PropertiesStore) ListByOrg(orgID uint) ([]model.Property, error) {
	var properties []model.Property
	err := s.db.Where("organization_id = ?", orgID).Order("id").Find(&properties).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return properties, nil
}

// Update persists changes to an existing property
func (s *PropertiesStore) Update(property *model.Property) error {
	if err := s.db.Save(property).Error; err != nil {
		return fmt.Errorf("failed to update property %d: %w", property.ID, err)
	}
	return nil
}

// Delete removes a property and its units
func (s *PropertiesStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&model.Unit{}).Error; err != nil {
			return fmt.Errorf("failed to delete units of property %d: %w", id, err)
		}
		if err := tx.Delete(&model.Property{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete property %d: %w", id, err)
		}
		return nil
	})
}

// CreateUnit persists a new unit
func (s *PropertiesStore) CreateUnit(unit *model.Unit) error {
	if err := s.db.Create(unit).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("unit %q in property %d: %w", unit.UnitNumber, unit.PropertyID, store.ErrConflict)
		}
		return fmt.Errorf("failed to create unit: %w", err)
	}
	return nil
}

// GetUnit retrieves one unit with its property preloaded
func (s *PropertiesStore) GetUnit(id uint) (*model.Unit, error) {
	var unit model.Unit
	err := s.db.Preload("Property").First(&unit, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("unit %d: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unit %d: %w", id, err)
	}
	return &unit, nil
}

// GetUnitByQRCode resolves a public QR code
func (s *PropertiesStore) GetUnitByQRCode(code string) (*model.Unit, error) {
	var unit model.Unit
	err := s.db.Preload("Property").Where("qr_code = ?", code).First(&unit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("unit code %q: %w", code, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unit by code: %w", err)
	}
	return &unit, nil
}

// ListUnits returns a property's units
func (s *PropertiesStore) ListUnits(propertyID uint) ([]model.Unit, error) {
	var units []model.Unit
	err := s.db.Where("property_id = ?", propertyID).Order("unit_number").Find(&units).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	return units, nil
}

// UpdateUnit persists changes to an existing unit
func (s *PropertiesStore) UpdateUnit(unit *model.Unit) error {
	if err := s.db.Save(unit).Error; err != nil {
		return fmt.Errorf("failed to update unit %d: %w", unit.ID, err)
	}
	return nil
}
