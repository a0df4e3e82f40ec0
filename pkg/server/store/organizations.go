package store

import "github.com/nyumbani/homemanager/pkg/model"

// OrganizationsStore abstracts organization records.
type OrganizationsStore interface {
	// Create persists a new organization. An empty slug is derived from
	// the name; slug collisions get a numeric suffix.
	Create(org *model.Organization) error

	// GetByID and GetBySlug return ErrNotFound for unknown organizations.
	GetByID(id uint) (*model.Organization, error)
	GetBySlug(slug string) (*model.Organization, error)

	// List returns all organizations. Callers are responsible for
	// restricting this to superusers.
	List() ([]model.Organization, error)

	// Update persists changes to an existing organization.
	Update(org *model.Organization) error
}

// UsersStore abstracts account records.
type UsersStore interface {
	Create(user *model.User) error

	// GetByEmail and GetByID return ErrNotFound for unknown users.
	GetByEmail(email string) (*model.User, error)
	GetByID(id uint) (*model.User, error)

	// BindToOrganization attaches a user to an organization.
	BindToOrganization(userID, orgID uint) error
}
