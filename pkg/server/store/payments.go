package store

import (
	"time"

	"github.com/nyumbani/homemanager/pkg/model"
)

// MpesaResult carries a gateway callback outcome keyed by checkout
// request id.
type MpesaResult struct {
	CheckoutRequestID string
	ResultCode        int
	ResultDescription string
	Receipt           string
	TransactionDate   *time.Time
}

// PaymentsStore abstracts rent payments and their M-Pesa attempts.
type PaymentsStore interface {
	Create(payment *model.RentPayment) error

	// Get returns ErrNotFound for unknown payments.
	Get(id uint) (*model.RentPayment, error)

	ListByOrg(orgID uint) ([]model.RentPayment, error)

	// MarkPaid completes a payment manually (cash, bank). Completing an
	// already-completed payment returns ErrValidation.
	MarkPaid(id uint, method, transactionID string) (*model.RentPayment, error)

	// CreateMpesa records an STK push attempt and moves the rent payment
	// to initiated.
	CreateMpesa(attempt *model.MpesaPayment) error

	// GetMpesaByCheckoutID returns ErrNotFound for unknown checkout ids.
	GetMpesaByCheckoutID(checkoutRequestID string) (*model.MpesaPayment, error)

	// ApplyMpesaResult stores a callback outcome. A zero result code
	// completes the rent payment; anything else fails it.
	ApplyMpesaResult(result MpesaResult) (*model.MpesaPayment, error)
}
