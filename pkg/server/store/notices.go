package store

import "github.com/nyumbani/homemanager/pkg/model"

// NoticesStore abstracts tenant-facing announcements.
type NoticesStore interface {
	Create(notice *model.Notice) error

	// Get returns ErrNotFound for unknown notices.
	Get(id uint) (*model.Notice, error)

	ListByOrg(orgID uint) ([]model.Notice, error)
	Update(notice *model.Notice) error
}

// TicketsStore abstracts maintenance tickets.
type TicketsStore interface {
	Create(ticket *model.MaintenanceTicket) error

	// Get returns ErrNotFound for unknown tickets.
	Get(id uint) (*model.MaintenanceTicket, error)

	ListByOrg(orgID uint) ([]model.MaintenanceTicket, error)

	// SetStatus returns ErrValidation for unknown statuses.
	SetStatus(id uint, status string) (*model.MaintenanceTicket, error)
}

// MessagesStore records outbound notifications.
type MessagesStore interface {
	Record(message *model.SMSMessage) error
	ListByOrg(orgID uint) ([]model.SMSMessage, error)
}
