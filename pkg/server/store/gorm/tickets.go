package gorm

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/server/store"
)

// Ensure TicketsStore implements store.TicketsStore
var _ store.TicketsStore = (*TicketsStore)(nil)

// TicketsStore implements store.TicketsStore using GORM
type TicketsStore struct {
	db *gorm.DB
}

// NewTicketsStore creates a new TicketsStore
func NewTicketsStore(db *gorm.DB) *TicketsStore {
	return &TicketsStore{db: db}
}

// Create persists a new maintenance ticket
func (s *TicketsStore) Create(ticket *model.MaintenanceTicket) error {
	if ticket.Status == "" {
		ticket.Status = model.TicketOpen
	}
	if err := s.db.Create(ticket).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return nil
}

// Get retrieves one ticket by id
func (s *TicketsStore) Get(id uint) (*model.MaintenanceTicket, error) {
	var ticket model.MaintenanceTicket
	err := s.db.First(&ticket, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("ticket %d: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ticket %d: %w", id, err)
	}
	return &ticket, nil
}

// ListByOrg returns an organization's tickets
func (s *TicketsStore) ListByOrg(orgID uint) ([]model.MaintenanceTicket, error) {
	var tickets []model.MaintenanceTicket
	err := s.db.Where("organization_id = ?", orgID).Order("created_at DESC").Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}

// SetStatus moves a ticket through its lifecycle
func (s *TicketsStore) SetStatus(id uint, status string) (*model.MaintenanceTicket, error) {
	if !model.ValidTicketStatus(status) {
		return nil, fmt.Errorf("ticket status %q: %w", status, store.ErrValidation)
	}
	ticket, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(ticket).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update ticket %d: %w", id, err)
	}
	ticket.Status = status
	return ticket, nil
}
