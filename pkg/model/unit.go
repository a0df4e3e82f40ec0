package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Unit is a rentable unit within a property. QRCode is a stable public
// identifier printed on door stickers for tenant self-service payment.
type Unit struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	PropertyID      uint    `gorm:"column:property_id;uniqueIndex:idx_units_property_number" json:"property_id"`
	UnitNumber      string  `gorm:"column:unit_number;uniqueIndex:idx_units_property_number" json:"unit_number"`
	UnitType        string  `gorm:"column:unit_type" json:"unit_type"`
	Floor           int     `gorm:"column:floor" json:"floor"`
	Bedrooms        int     `gorm:"column:bedrooms" json:"bedrooms"`
	MonthlyRent     float64 `gorm:"column:monthly_rent" json:"monthly_rent"`
	SecurityDeposit float64 `gorm:"column:security_deposit" json:"security_deposit"`
	IsOccupied      bool    `gorm:"column:is_occupied" json:"is_occupied"`
	AccessCode      string  `gorm:"column:access_code" json:"-"`
	QRCode          string  `gorm:"column:qr_code;uniqueIndex" json:"qr_code"`
	PaymentEnabled  bool    `gorm:"column:payment_enabled;default:true" json:"payment_enabled"`

	Property *Property `gorm:"foreignKey:PropertyID" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Unit) TableName() string {
	return "units"
}

func (u *Unit) BeforeCreate(tx *gorm.DB) error {
	if u.QRCode == "" {
		// First uuid segment is enough for a human-scannable code.
		u.QRCode = uuid.NewString()[:8]
	}
	return nil
}

// ResourceOrganizationID resolves through the preloaded property. Units
// loaded without their property cannot be authorized and read as absent.
func (u *Unit) ResourceOrganizationID() *uint {
	if u == nil || u.Property == nil {
		return nil
	}
	id := u.Property.OrganizationID
	return &id
}
