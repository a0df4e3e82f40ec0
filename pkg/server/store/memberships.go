package store

import (
	"context"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/rbac"
)

// MembershipsStore abstracts membership lifecycle operations.
type MembershipsStore interface {
	// Create adds a user to an organization with one of the
	// organization's roles. Returns ErrConflict when the user already has
	// a membership there, and ErrValidation when the role belongs to a
	// different organization (a partial insert is rolled back by a
	// compensating delete).
	Create(orgID, userID, roleID uint, invited bool) (*model.OrganizationMembership, error)

	// Get fetches a membership with role and user preloaded.
	Get(id string) (*model.OrganizationMembership, error)

	// ListByOrg returns an organization's memberships.
	ListByOrg(orgID uint) ([]model.OrganizationMembership, error)

	// SendInvitation rotates the invitation token, stamps
	// invitation_sent_at and returns the fresh token. Resending is
	// allowed and invalidates the previous token.
	SendInvitation(id string) (*model.OrganizationMembership, string, error)

	// AcceptInvitation resolves a token and marks the membership
	// accepted and active. Accepting an already-accepted membership
	// succeeds and re-stamps invitation_accepted_at.
	AcceptInvitation(token string) (*model.OrganizationMembership, error)

	// Deactivate and Reactivate flip is_active without losing history.
	Deactivate(id string) (*model.OrganizationMembership, error)
	Reactivate(id string) (*model.OrganizationMembership, error)

	// FindActiveByUser returns the user's active membership in an
	// organization, ErrNotFound if none.
	FindActiveByUser(userID, orgID uint) (*model.OrganizationMembership, error)

	// ActiveMembershipRoles resolves the user's active memberships in an
	// organization into guard-ready role snapshots.
	ActiveMembershipRoles(ctx context.Context, userID, orgID uint) ([]rbac.MembershipRole, error)
}
