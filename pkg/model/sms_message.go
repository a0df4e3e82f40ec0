package model

import "time"

const (
	SMSQueued = "queued"
	SMSSent   = "sent"
	SMSFailed = "failed"
)

// SMSMessage is the outbound message log written by the notification
// dispatcher. No real gateway is wired; ProviderRef is filled by
// whichever dispatcher sent the message.
type SMSMessage struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	OrganizationID uint       `gorm:"column:organization_id;index" json:"organization_id"`
	Recipient      string     `gorm:"column:recipient" json:"recipient"`
	Body           string     `gorm:"column:body" json:"body"`
	Status         string     `gorm:"column:status;default:queued" json:"status"`
	ProviderRef    string     `gorm:"column:provider_ref" json:"provider_ref"`
	SentAt         *time.Time `gorm:"column:sent_at" json:"sent_at"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SMSMessage) TableName() string {
	return "sms_messages"
}
