package gorm

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/server/store"
)

// Ensure MessagesStore implements store.MessagesStore
var _ store.MessagesStore = (*MessagesStore)(nil)

// MessagesStore implements store.MessagesStore using GORM
type MessagesStore struct {
	db *gorm.DB
}

// NewMessagesStore creates a new MessagesStore
func NewMessagesStore(db *gorm.DB) *MessagesStore {
	return &MessagesStore{db: db}
}

// Record persists one outbound message
func (s *MessagesStore) Record(message *model.SMSMessage) error {
	if err := s.db.Create(message).Error; err != nil {
		return fmt.Errorf("failed to record message: %w", err)
	}
	return nil
}

// ListByOrg returns an organization's message log
func (s *MessagesStore) ListByOrg(orgID uint) ([]model.SMSMessage, error) {
	var messages []model.SMSMessage
	err := s.db.Where("organization_id = ?", orgID).Order("created_at DESC").Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}
