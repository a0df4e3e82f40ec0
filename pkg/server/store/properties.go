package store

import "github.com/nyumbani/homemanager/pkg/model"

// PropertiesStore abstracts properties and their units.
type PropertiesStore interface {
	Create(property *model.Property) error

	// Get returns ErrNotFound for unknown properties.
	Get(id uint) (*model.Property, error)

	ListByOrg(orgID uint) ([]model.Property, error)
	Update(property *model.Property) error
	Delete(id uint) error

	// CreateUnit returns ErrConflict when the unit number is taken
	// within the property.
	CreateUnit(unit *model.Unit) error

	// GetUnit preloads the owning property so the guard can resolve the
	// unit's organization.
	GetUnit(id uint) (*model.Unit, error)

	// GetUnitByQRCode resolves a public QR code, ErrNotFound if unknown.
	GetUnitByQRCode(code string) (*model.Unit, error)

	ListUnits(propertyID uint) ([]model.Unit, error)
	UpdateUnit(unit *model.Unit) error
}
