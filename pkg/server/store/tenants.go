package store

import "github.com/nyumbani/homemanager/pkg/model"

// TenantsStore abstracts renter records and leases.
type TenantsStore interface {
	Create(tenant *model.Tenant) error

	// Get returns ErrNotFound for unknown tenants.
	Get(id uint) (*model.Tenant, error)

	ListByOrg(orgID uint) ([]model.Tenant, error)

	// Allocate assigns a tenant to a unit and marks the unit occupied.
	// Returns ErrValidation when the unit belongs to another
	// organization or is already occupied.
	Allocate(tenantID, unitID uint) (*model.Tenant, error)

	CreateLease(lease *model.Lease) error
	ListLeases(orgID uint) ([]model.Lease, error)
}
