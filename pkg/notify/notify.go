// Package notify dispatches outbound messages to organization members
// and tenants. Every dispatch is recorded as an SMSMessage row so the
// message log survives whichever transport actually delivered it.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/server/store"
)

// Message is a single outbound notification.
type Message struct {
	OrganizationID uint
	Recipient      string
	Body           string
}

// Dispatcher delivers outbound messages.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg Message) error
}

// LogDispatcher writes messages to the message log without contacting a
// gateway. It is the default dispatcher; swap in a real transport by
// implementing Dispatcher.
type LogDispatcher struct {
	messages store.MessagesStore
	senderID string
}

var _ Dispatcher = (*LogDispatcher)(nil)

// NewLogDispatcher creates a dispatcher backed by the given message store.
func NewLogDispatcher(messages store.MessagesStore, senderID string) *LogDispatcher {
	return &LogDispatcher{messages: messages, senderID: senderID}
}

func (d *LogDispatcher) Dispatch(ctx context.Context, msg Message) error {
	if msg.Recipient == "" {
		return fmt.Errorf("recipient is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	now := time.Now().UTC()
	record := &model.SMSMessage{
		OrganizationID: msg.OrganizationID,
		Recipient:      msg.Recipient,
		Body:           msg.Body,
		Status:         model.SMSSent,
		ProviderRef:    d.senderID,
		SentAt:         &now,
	}
	if err := d.messages.Record(record); err != nil {
		return fmt.Errorf("failed to record message: %w", err)
	}
	return nil
}

// InvitationBody renders the message sent when a member is invited.
func InvitationBody(orgName, token string) string {
	return fmt.Sprintf("You have been invited to join %s. Use invitation code %s to accept.", orgName, token)
}

// ReceiptBody renders the message sent when a rent payment settles.
func ReceiptBody(orgName string, amount float64, reference string) string {
	return fmt.Sprintf("%s: payment of %.2f received. Ref %s. Thank you.", orgName, amount, reference)
}
