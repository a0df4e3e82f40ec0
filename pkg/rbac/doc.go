// Package rbac implements the organization-scoped role and permission
// system: the canonical permission list, the base-role catalog, the
// effective-permission resolver and the tenant-isolation guard.
//
// Other packages must go through this package (and the stores that feed
// it) to make access-control decisions; nothing else reads base-role or
// customization rows directly.
package rbac
