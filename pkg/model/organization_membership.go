package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationMembership ties a user to an organization through one of
// the organization's roles. A user has at most one membership per
// organization.
//
// Lifecycle: created (optionally invited) -> active <-> inactive.
// Acceptance is idempotent; deactivation keeps the row so history and
// uniqueness survive.
type OrganizationMembership struct {
	ID             string `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	OrganizationID uint   `gorm:"column:organization_id;uniqueIndex:idx_memberships_org_user" json:"organization_id"`
	UserID         uint   `gorm:"column:user_id;uniqueIndex:idx_memberships_org_user" json:"user_id"`
	RoleID         uint   `gorm:"column:role_id" json:"role_id"`

	IsActive             bool       `gorm:"column:is_active;default:true" json:"is_active"`
	IsInvited            bool       `gorm:"column:is_invited" json:"is_invited"`
	InvitationSentAt     *time.Time `gorm:"column:invitation_sent_at" json:"invitation_sent_at"`
	InvitationAcceptedAt *time.Time `gorm:"column:invitation_accepted_at" json:"invitation_accepted_at"`
	InvitationToken      *string    `gorm:"column:invitation_token;type:uuid;uniqueIndex" json:"-"`

	Role *OrganizationRole `gorm:"foreignKey:RoleID" json:"-"`
	User *User             `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (OrganizationMembership) TableName() string {
	return "organization_memberships"
}

func (m *OrganizationMembership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Accepted reports whether the invitation has been accepted.
func (m *OrganizationMembership) Accepted() bool {
	return m.InvitationAcceptedAt != nil
}

// ResourceOrganizationID implements the guard's Resource interface.
func (m *OrganizationMembership) ResourceOrganizationID() *uint {
	if m == nil {
		return nil
	}
	id := m.OrganizationID
	return &id
}
