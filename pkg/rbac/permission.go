package rbac

//go:generate go run github.com/dmarkham/enumer -type Permission -trimprefix Permission -transform snake -json -yaml -sql -output permission.gen.go

// Permission enumerates every organization-scoped permission flag. This
// list is the single source of truth consumed by the resolver, the API
// serializers and the seed catalog; the order is the storage order of
// PermissionSet.
type Permission int

const (
	PermissionManageUsers Permission = iota
	PermissionManageBilling
	PermissionManageProperties
	PermissionManageTenants
	PermissionViewReports
	PermissionManageRoles
	PermissionManageSystemSettings
	PermissionViewDashboard
	PermissionManageTickets
	PermissionManageNotices

	// NumPermissions is the number of defined permissions.
	NumPermissions = iota
)
