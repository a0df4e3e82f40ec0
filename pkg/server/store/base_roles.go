package store

import (
	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/rbac"
)

// SeedResult reports what a catalog seed did (or would do, in dry-run).
type SeedResult struct {
	Created []string `json:"created"`
	Updated []string `json:"updated"`
	DryRun  bool     `json:"dry_run"`
}

// BaseRolesStore abstracts the platform role catalog.
type BaseRolesStore interface {
	// List returns all base roles ordered by id.
	List() ([]model.BaseRole, error)

	// GetBySlug retrieves one base role.
	// Returns ErrNotFound if the slug is unknown.
	GetBySlug(slug string) (*model.BaseRole, error)

	// Ensure upserts the catalog in a single transaction. Existing rows
	// are matched by slug and have everything except the slug updated;
	// missing rows are created. With dryRun the transaction rolls back
	// and the result reports what would have changed.
	Ensure(catalog rbac.Catalog, dryRun bool) (*SeedResult, error)
}
