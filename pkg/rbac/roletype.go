package rbac

//go:generate go run github.com/dmarkham/enumer -type RoleType -trimprefix RoleType -transform lower -json -yaml -sql -output roletype.gen.go

// RoleType classifies an organization role. Owner and Admin short-circuit
// permission checks; the remaining types rely entirely on resolved
// permission flags.
type RoleType int

const (
	RoleTypeOwner RoleType = iota
	RoleTypeAdmin
	RoleTypeManager
	RoleTypeMember
	RoleTypeGuest
)

// Privileged reports whether the role type bypasses per-permission checks.
func (i RoleType) Privileged() bool {
	return i == RoleTypeOwner || i == RoleTypeAdmin
}
