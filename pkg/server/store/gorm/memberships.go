package gorm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/rbac"
	"github.com/nyumbani/homemanager/pkg/server/store"
)

// Ensure MembershipsStore implements store.MembershipsStore
var _ store.MembershipsStore = (*MembershipsStore)(nil)

// MembershipsStore implements store.MembershipsStore using GORM
type MembershipsStore struct {
	db *gorm.DB
}

// NewMembershipsStore creates a new MembershipsStore
func NewMembershipsStore(db *gorm.DB) *MembershipsStore {
	return &MembershipsStore{db: db}
}

// Create adds a user to an organization with one of its roles. The
// unique (organization_id, user_id) constraint serializes concurrent
// creates; the role's organization is verified after the insert and a
// mismatch removes the row again so no cross-organization membership
// survives.
func (s *MembershipsStore) Create(orgID, userID, roleID uint, invited bool) (*model.OrganizationMembership, error) {
	m := model.OrganizationMembership{
		OrganizationID: orgID,
		UserID:         userID,
		RoleID:         roleID,
		IsActive:       true,
		IsInvited:      invited,
	}
	if err := s.db.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("user %d already has a membership in organization %d: %w",
				userID, orgID, store.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	var role model.OrganizationRole
	if err := s.db.First(&role, m.RoleID).Error; err != nil {
		s.db.Delete(&model.OrganizationMembership{}, "id = ?", m.ID)
		return nil, fmt.Errorf("membership role %d: %w", m.RoleID, store.ErrValidation)
	}
	if role.OrganizationID != orgID {
		s.db.Delete(&model.OrganizationMembership{}, "id = ?", m.ID)
		return nil, fmt.Errorf("role %d belongs to organization %d, not %d: %w",
			m.RoleID, role.OrganizationID, orgID, store.ErrValidation)
	}

	return s.Get(m.ID)
}

// Get fetches a membership with role and user preloaded
func (s *MembershipsStore) Get(id string) (*model.OrganizationMembership, error) {
	var m model.OrganizationMembership
	err := s.db.Preload("Role.BaseRole").Preload("User").
		Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("membership %q: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch membership %q: %w", id, err)
	}
	return &m, nil
}

// ListByOrg returns an organization's memberships
func (s *MembershipsStore) ListByOrg(orgID uint) ([]model.OrganizationMembership, error) {
	var memberships []model.OrganizationMembership
	err := s.db.Preload("Role.BaseRole").Preload("User").
		Where("organization_id = ?", orgID).
		Order("created_at").
		Find(&memberships).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return memberships, nil
}

// SendInvitation rotates the invitation token and stamps the send time.
// Every send invalidates the previous token.
func (s *MembershipsStore) SendInvitation(id string) (*model.OrganizationMembership, string, error) {
	m, err := s.Get(id)
	if err != nil {
		return nil, "", err
	}

	token := uuid.NewString()
	now := time.Now()
	err = s.db.Model(m).Updates(map[string]interface{}{
		"is_invited":         true,
		"invitation_token":   token,
		"invitation_sent_at": now,
	}).Error
	if err != nil {
		return nil, "", fmt.Errorf("failed to record invitation: %w", err)
	}

	m.IsInvited = true
	m.InvitationToken = &token
	m.InvitationSentAt = &now
	return m, token, nil
}

// AcceptInvitation resolves a token and marks the membership accepted
// and active. Accepting twice succeeds and re-stamps the acceptance.
func (s *MembershipsStore) AcceptInvitation(token string) (*model.OrganizationMembership, error) {
	var m model.OrganizationMembership
	err := s.db.Preload("Role.BaseRole").Preload("User").
		Where("invitation_token = ?", token).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("invitation token: %w", store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve invitation token: %w", err)
	}

	now := time.Now()
	err = s.db.Model(&m).Updates(map[string]interface{}{
		"is_active":              true,
		"is_invited":             false,
		"invitation_accepted_at": now,
	}).Error
	if err != nil {
		return nil, fmt.Errorf("failed to accept invitation: %w", err)
	}

	m.IsActive = true
	m.IsInvited = false
	m.InvitationAcceptedAt = &now
	return &m, nil
}

// Deactivate flips is_active off without losing history
func (s *MembershipsStore) Deactivate(id string) (*model.OrganizationMembership, error) {
	return s.setActive(id, false)
}

// Reactivate flips is_active back on
func (s *MembershipsStore) Reactivate(id string) (*model.OrganizationMembership, error) {
	return s.setActive(id, true)
}

func (s *MembershipsStore) setActive(id string, active bool) (*model.OrganizationMembership, error) {
	m, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(m).Update("is_active", active).Error; err != nil {
		return nil, fmt.Errorf("failed to update membership %q: %w", id, err)
	}
	m.IsActive = active
	return m, nil
}

// FindActiveByUser returns the user's active membership in an organization
func (s *MembershipsStore) FindActiveByUser(userID, orgID uint) (*model.OrganizationMembership, error) {
	var m model.OrganizationMembership
	err := s.db.Preload("Role.BaseRole").
		Where("user_id = ? AND organization_id = ? AND is_active", userID, orgID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("active membership for user %d: %w", userID, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active membership: %w", err)
	}
	return &m, nil
}

// ActiveMembershipRoles resolves the user's active memberships into
// guard-ready snapshots. It satisfies rbac.MembershipSource.
func (s *MembershipsStore) ActiveMembershipRoles(ctx context.Context, userID, orgID uint) ([]rbac.MembershipRole, error) {
	var memberships []model.OrganizationMembership
	err := s.db.WithContext(ctx).Preload("Role.BaseRole").
		Where("user_id = ? AND organization_id = ? AND is_active", userID, orgID).
		Find(&memberships).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active memberships: %w", err)
	}

	roles := make([]rbac.MembershipRole, 0, len(memberships))
	for i := range memberships {
		role := memberships[i].Role
		if role == nil {
			continue
		}
		state, err := resolveRoleState(s.db.WithContext(ctx), role)
		if err != nil {
			return nil, err
		}
		roles = append(roles, rbac.MembershipRole{RoleType: role.Type(), State: state})
	}
	return roles, nil
}
