package rbac

// PermissionSet holds one flag per Permission, indexed by the enum value.
type PermissionSet [NumPermissions]bool

// Set returns a copy of s with p set to v.
func (s PermissionSet) Set(p Permission, v bool) PermissionSet {
	s[p] = v
	return s
}

// Overrides holds an optional flag per Permission. A nil entry means the
// permission is not customized and inherits its default.
type Overrides [NumPermissions]*bool

// Empty reports whether no permission is overridden.
func (o Overrides) Empty() bool {
	for _, v := range o {
		if v != nil {
			return false
		}
	}
	return true
}

// RoleState is an immutable snapshot of everything needed to answer
// effective-permission queries for one organization role.
type RoleState interface {
	permission(p Permission) bool
}

// LegacyRole is a role from before the base-role migration: the role row
// itself carries its permission flags and no customization applies, even
// if a stale customization row exists.
type LegacyRole struct {
	Permissions PermissionSet
}

func (r LegacyRole) permission(p Permission) bool { return r.Permissions[p] }

// ResolvedRole layers per-organization overrides on base-role defaults.
// Each permission falls back independently.
type ResolvedRole struct {
	Defaults  PermissionSet
	Overrides Overrides
}

func (r ResolvedRole) permission(p Permission) bool {
	if v := r.Overrides[p]; v != nil {
		return *v
	}
	return r.Defaults[p]
}

// EffectivePermission resolves a single permission against a role state
// snapshot. A nil state resolves to false.
func EffectivePermission(state RoleState, p Permission) bool {
	if state == nil {
		return false
	}
	return state.permission(p)
}

// EffectiveSet expands a role state into the permission-name map used by
// API responses.
func EffectiveSet(state RoleState) map[string]bool {
	out := make(map[string]bool, NumPermissions)
	for _, p := range PermissionValues() {
		out[p.String()] = EffectivePermission(state, p)
	}
	return out
}
