package model

import "time"

// Rent payment statuses. A payment moves pending -> initiated ->
// processing -> completed, or to failed at any point after initiation.
const (
	PaymentPending    = "pending"
	PaymentInitiated  = "initiated"
	PaymentProcessing = "processing"
	PaymentCompleted  = "completed"
	PaymentFailed     = "failed"
)

const (
	MethodMpesa = "m_pesa"
	MethodCard  = "card"
	MethodBank  = "bank"
	MethodCash  = "cash"
	MethodOther = "other"
)

type RentPayment struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	OrganizationID uint       `gorm:"column:organization_id;index" json:"organization_id"`
	UnitID         uint       `gorm:"column:unit_id" json:"unit_id"`
	TenantID       uint       `gorm:"column:tenant_id" json:"tenant_id"`
	Amount         float64    `gorm:"column:amount" json:"amount"`
	DueDate        time.Time  `gorm:"column:due_date" json:"due_date"`
	PaymentDate    *time.Time `gorm:"column:payment_date" json:"payment_date"`
	Status         string     `gorm:"column:status;default:pending" json:"status"`
	PaymentMethod  string     `gorm:"column:payment_method" json:"payment_method"`
	TransactionID  string     `gorm:"column:transaction_id" json:"transaction_id"`
	LateFee        float64    `gorm:"column:late_fee" json:"late_fee"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (RentPayment) TableName() string {
	return "rent_payments"
}

// Settled reports whether the payment is in a terminal successful state.
func (p *RentPayment) Settled() bool {
	return p.Status == PaymentCompleted
}

func (p *RentPayment) ResourceOrganizationID() *uint {
	if p == nil {
		return nil
	}
	id := p.OrganizationID
	return &id
}
