package model

import "time"

// MpesaPayment tracks one STK push attempt against a rent payment.
// CheckoutRequestID is the correlation key for gateway callbacks.
type MpesaPayment struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	RentPaymentID     uint       `gorm:"column:rent_payment_id;index" json:"rent_payment_id"`
	OrganizationID    uint       `gorm:"column:organization_id;index" json:"organization_id"`
	PhoneNumber       string     `gorm:"column:phone_number" json:"phone_number"`
	Amount            float64    `gorm:"column:amount" json:"amount"`
	Reference         string     `gorm:"column:reference" json:"reference"`
	CheckoutRequestID string     `gorm:"column:checkout_request_id;uniqueIndex" json:"checkout_request_id"`
	MerchantRequestID string     `gorm:"column:merchant_request_id" json:"merchant_request_id"`
	MpesaReceipt      string     `gorm:"column:mpesa_receipt_number" json:"mpesa_receipt_number"`
	ResultCode        *int       `gorm:"column:result_code" json:"result_code"`
	ResultDescription string     `gorm:"column:result_description" json:"result_description"`
	TransactionDate   *time.Time `gorm:"column:transaction_date" json:"transaction_date"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MpesaPayment) TableName() string {
	return "mpesa_payments"
}
