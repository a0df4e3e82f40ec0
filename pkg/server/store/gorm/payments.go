package gorm

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/server/store"
)

// Ensure PaymentsStore implements store.PaymentsStore
var _ store.PaymentsStore = (*PaymentsStore)(nil)

// PaymentsStore implements store.PaymentsStore using GORM
type PaymentsStore struct {
	db *gorm.DB
}

// NewPaymentsStore creates a new PaymentsStore
func NewPaymentsStore(db *gorm.DB) *PaymentsStore {
	return &PaymentsStore{db: db}
}

// Create persists a new rent payment
func (s *PaymentsStore) Create(payment *model.RentPayment) error {
	if payment.Status == "" {
		payment.Status = model.PaymentPending
	}
	if err := s.db.Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create rent payment: %w", err)
	}
	return nil
}

// Get retrieves one rent payment by id
func (s *PaymentsStore) Get(id uint) (*model.RentPayment, error) {
	var payment model.RentPayment
	err := s.db.First(&payment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("rent payment %d: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rent payment %d: %w", id, err)
	}
	return &payment, nil
}

// ListByOrg returns an organization's rent payments
func (s *PaymentsStore) ListByOrg(orgID uint) ([]model.RentPayment, error) {
	var payments []model.RentPayment
	err := s.db.Where("organization_id = ?", orgID).Order("due_date DESC").Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list rent payments: %w", err)
	}
	return payments, nil
}

// MarkPaid completes a payment manually (cash, bank transfer)
func (s *PaymentsStore) MarkPaid(id uint, method, transactionID string) (*model.RentPayment, error) {
	payment, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if payment.Settled() {
		return nil, fmt.Errorf("rent payment %d is already completed: %w", id, store.ErrValidation)
	}

	now := time.Now()
	err = s.db.Model(payment).Updates(map[string]interface{}{
		"status":         model.PaymentCompleted,
		"payment_method": method,
		"transaction_id": transactionID,
		"payment_date":   now,
	}).Error
	if err != nil {
		return nil, fmt.Errorf("failed to mark rent payment %d paid: %w", id, err)
	}

	payment.Status = model.PaymentCompleted
	payment.PaymentMethod = method
	payment.TransactionID = transactionID
	payment.PaymentDate = &now
	return payment, nil
}

// CreateMpesa records an STK push attempt and moves the rent payment to
// initiated, in one transaction.
func (s *PaymentsStore) CreateMpesa(attempt *model.MpesaPayment) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(attempt).Error; err != nil {
			return fmt.Errorf("failed to record mpesa attempt: %w", err)
		}
		err := tx.Model(&model.RentPayment{}).
			Where("id = ?", attempt.RentPaymentID).
			Updates(map[string]interface{}{
				"status":         model.PaymentInitiated,
				"payment_method": model.MethodMpesa,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to initiate rent payment %d: %w", attempt.RentPaymentID, err)
		}
		return nil
	})
}

// GetMpesaByCheckoutID resolves a gateway checkout id
func (s *PaymentsStore) GetMpesaByCheckoutID(checkoutRequestID string) (*model.MpesaPayment, error) {
	var attempt model.MpesaPayment
	err := s.db.Where("checkout_request_id = ?", checkoutRequestID).First(&attempt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("mpesa checkout %q: %w", checkoutRequestID, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mpesa attempt: %w", err)
	}
	return &attempt, nil
}

// ApplyMpesaResult stores a callback outcome. Result code zero completes
// the rent payment; anything else fails it.
func (s *PaymentsStore) ApplyMpesaResult(result store.MpesaResult) (*model.MpesaPayment, error) {
	attempt, err := s.GetMpesaByCheckoutID(result.CheckoutRequestID)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"result_code":        result.ResultCode,
			"result_description": result.ResultDescription,
		}
		if result.Receipt != "" {
			updates["mpesa_receipt_number"] = result.Receipt
		}
		if result.TransactionDate != nil {
			updates["transaction_date"] = *result.TransactionDate
		}
		if err := tx.Model(attempt).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to store mpesa result: %w", err)
		}

		paymentUpdates := map[string]interface{}{}
		if result.ResultCode == 0 {
			paymentUpdates["status"] = model.PaymentCompleted
			paymentUpdates["transaction_id"] = result.Receipt
			paymentUpdates["payment_date"] = time.Now()
		} else {
			paymentUpdates["status"] = model.PaymentFailed
		}
		err := tx.Model(&model.RentPayment{}).
			Where("id = ?", attempt.RentPaymentID).
			Updates(paymentUpdates).Error
		if err != nil {
			return fmt.Errorf("failed to settle rent payment %d: %w", attempt.RentPaymentID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetMpesaByCheckoutID(result.CheckoutRequestID)
}
