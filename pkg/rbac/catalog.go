package rbac

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// CatalogEntry describes one base role to provision: its identity and the
// default permission flags organizations inherit until they customize.
type CatalogEntry struct {
	Name        string        `yaml:"name"`
	Slug        string        `yaml:"slug"`
	Description string        `yaml:"description"`
	RoleType    RoleType      `yaml:"role_type"`
	Defaults    PermissionSet `yaml:"-"`

	// Permissions lists the flags that default to true; it is the YAML
	// representation of Defaults.
	Permissions []Permission `yaml:"permissions"`
}

// Catalog is an ordered set of base-role definitions.
type Catalog []CatalogEntry

// DefaultCatalog returns the built-in five-role catalog.
func DefaultCatalog() Catalog {
	all := PermissionSet{}
	for _, p := range PermissionValues() {
		all[p] = true
	}
	return Catalog{
		{
			Name:        "Owner",
			Slug:        "owner",
			Description: "Full access to all features including billing and system settings",
			RoleType:    RoleTypeOwner,
			Defaults:    all,
		},
		{
			Name:        "Admin",
			Slug:        "admin",
			Description: "Administrative access to all features except billing and system settings",
			RoleType:    RoleTypeAdmin,
			Defaults: all.
				Set(PermissionManageBilling, false).
				Set(PermissionManageSystemSettings, false),
		},
		{
			Name:        "Manager",
			Slug:        "manager",
			Description: "Day-to-day property and tenant management",
			RoleType:    RoleTypeManager,
			Defaults: PermissionSet{}.
				Set(PermissionManageUsers, true).
				Set(PermissionManageProperties, true).
				Set(PermissionManageTenants, true).
				Set(PermissionViewReports, true).
				Set(PermissionViewDashboard, true).
				Set(PermissionManageTickets, true).
				Set(PermissionManageNotices, true),
		},
		{
			Name:        "Member",
			Slug:        "member",
			Description: "Property and tenant operations without reporting access",
			RoleType:    RoleTypeMember,
			Defaults: PermissionSet{}.
				Set(PermissionManageProperties, true).
				Set(PermissionManageTenants, true).
				Set(PermissionViewDashboard, true).
				Set(PermissionManageTickets, true),
		},
		{
			Name:        "Guest",
			Slug:        "guest",
			Description: "Dashboard view only",
			RoleType:    RoleTypeGuest,
			Defaults: PermissionSet{}.
				Set(PermissionViewDashboard, true),
		},
	}
}

// LoadCatalog reads a YAML role catalog. Permissions are listed by name
// and become the entry's true defaults; anything unlisted defaults false.
func LoadCatalog(r io.Reader) (Catalog, error) {
	var doc struct {
		Roles Catalog `yaml:"roles"`
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse role catalog: %w", err)
	}

	seen := map[string]bool{}
	for i := range doc.Roles {
		entry := &doc.Roles[i]
		if entry.Slug == "" {
			return nil, fmt.Errorf("role catalog: entry %d has no slug", i)
		}
		if seen[entry.Slug] {
			return nil, fmt.Errorf("role catalog: duplicate slug %q", entry.Slug)
		}
		seen[entry.Slug] = true
		if entry.Name == "" {
			return nil, fmt.Errorf("role catalog: role %q has no name", entry.Slug)
		}
		for _, p := range entry.Permissions {
			entry.Defaults[p] = true
		}
	}
	return doc.Roles, nil
}
