package gorm

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/server/store"
)

// Ensure NoticesStore implements store.NoticesStore
var _ store.NoticesStore = (*NoticesStore)(nil)

// NoticesStore implements store.NoticesStore using GORM
type NoticesStore struct {
	db *gorm.DB
}

// NewNoticesStore creates a new NoticesStore
func NewNoticesStore(db *gorm.DB) *NoticesStore {
	return &NoticesStore{db: db}
}

// Create persists a new notice
func (s *NoticesStore) Create(notice *model.Notice) error {
	if err := s.db.Create(notice).Error; err != nil {
		return fmt.Errorf("failed to create notice: %w", err)
	}
	return nil
}

// Get retrieves one notice by id
func (s *NoticesStore) Get(id uint) (*model.Notice, error) {
	var notice model.Notice
	err := s.db.First(&notice, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("notice %d: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notice %d: %w", id, err)
	}
	return &notice, nil
}

// ListByOrg returns an organization's notices
func (s *NoticesStore) ListByOrg(orgID uint) ([]model.Notice, error) {
	var notices []model.Notice
	err := s.db.Where("organization_id = ?", orgID).Order("created_at DESC").Find(&notices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}
	return notices, nil
}

// Update persists changes to an existing notice
func (s *NoticesStore) Update(notice *model.Notice) error {
	if err := s.db.Save(notice).Error; err != nil {
		return fmt.Errorf("failed to update notice %d: %w", notice.ID, err)
	}
	return nil
}
