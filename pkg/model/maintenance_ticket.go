package model

import "time"

const (
	TicketOpen       = "open"
	TicketInProgress = "in_progress"
	TicketResolved   = "resolved"
	TicketClosed     = "closed"
)

type MaintenanceTicket struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	OrganizationID uint   `gorm:"column:organization_id;index" json:"organization_id"`
	UnitID         *uint  `gorm:"column:unit_id" json:"unit_id"`
	TenantID       *uint  `gorm:"column:tenant_id" json:"tenant_id"`
	Title          string `gorm:"column:title" json:"title"`
	Description    string `gorm:"column:description" json:"description"`
	Priority       string `gorm:"column:priority;default:normal" json:"priority"`
	Status         string `gorm:"column:status;default:open" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MaintenanceTicket) TableName() string {
	return "maintenance_tickets"
}

func (t *MaintenanceTicket) ResourceOrganizationID() *uint {
	if t == nil {
		return nil
	}
	id := t.OrganizationID
	return &id
}

// ValidTicketStatus reports whether s is a known ticket status.
func ValidTicketStatus(s string) bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketResolved, TicketClosed:
		return true
	}
	return false
}
