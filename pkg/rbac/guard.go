package rbac

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned for cross-tenant access so that a denied
	// object is indistinguishable from a missing one.
	ErrNotFound = errors.New("not found")

	// ErrDenied is returned for action-level denials inside the caller's
	// own organization.
	ErrDenied = errors.New("permission denied")
)

// Principal is the acting identity as seen by the guard.
type Principal interface {
	PrincipalID() uint
	// PrincipalOrganizationID is nil for users not attached to any
	// organization.
	PrincipalOrganizationID() *uint
	Superuser() bool
}

// Resource is any object that can name its owning organization.
// A nil owner means the organization cannot be determined.
type Resource interface {
	ResourceOrganizationID() *uint
}

// MembershipRole is one active membership's role as the guard sees it.
type MembershipRole struct {
	RoleType RoleType
	State    RoleState
}

// MembershipSource resolves the acting principal's active membership
// roles in an organization.
type MembershipSource interface {
	ActiveMembershipRoles(ctx context.Context, userID, orgID uint) ([]MembershipRole, error)
}

// Guard makes access-control decisions. All object access in the API
// funnels through Authorize.
type Guard struct {
	memberships MembershipSource
}

func NewGuard(memberships MembershipSource) *Guard {
	return &Guard{memberships: memberships}
}

// Authorize decides whether principal may perform action on resource.
// It returns nil when allowed, ErrNotFound when the resource belongs to
// another organization (or to none the principal can see), and ErrDenied
// when the resource is visible but the action is not permitted.
func (g *Guard) Authorize(ctx context.Context, principal Principal, action Permission, resource Resource) error {
	if principal == nil {
		return ErrDenied
	}
	if principal.Superuser() {
		return nil
	}
	orgID := principal.PrincipalOrganizationID()
	if orgID == nil {
		return ErrDenied
	}
	resOrg := resource.ResourceOrganizationID()
	if resOrg == nil || *resOrg != *orgID {
		return ErrNotFound
	}

	roles, err := g.memberships.ActiveMembershipRoles(ctx, principal.PrincipalID(), *orgID)
	if err != nil {
		return err
	}
	for _, role := range roles {
		if role.RoleType.Privileged() {
			return nil
		}
		if EffectivePermission(role.State, action) {
			return nil
		}
	}
	return ErrDenied
}

// AuthorizeOrg is Authorize against the organization itself, for
// collection-level operations that have no narrower resource.
func (g *Guard) AuthorizeOrg(ctx context.Context, principal Principal, action Permission, orgID uint) error {
	return g.Authorize(ctx, principal, action, OrgResource(orgID))
}

// OrgResource adapts a bare organization id into a Resource.
type OrgResource uint

func (o OrgResource) ResourceOrganizationID() *uint {
	id := uint(o)
	return &id
}
