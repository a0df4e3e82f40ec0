package model

import "time"

// SubscriptionPlan is a billable tier. Prices are in KES.
type SubscriptionPlan struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"column:name" json:"name"`
	Slug          string  `gorm:"column:slug;uniqueIndex" json:"slug"`
	MonthlyPrice  float64 `gorm:"column:monthly_price" json:"monthly_price"`
	YearlyPrice   float64 `gorm:"column:yearly_price" json:"yearly_price"`
	MaxProperties int     `gorm:"column:max_properties" json:"max_properties"`
	MaxUnits      int     `gorm:"column:max_units" json:"max_units"`
	MaxUsers      int     `gorm:"column:max_users" json:"max_users"`
	HasReports    bool    `gorm:"column:has_reports" json:"has_reports"`
	HasSMS        bool    `gorm:"column:has_sms" json:"has_sms"`
	HasMpesa      bool    `gorm:"column:has_mpesa" json:"has_mpesa"`
	IsActive      bool    `gorm:"column:is_active;default:true" json:"is_active"`
	IsPublic      bool    `gorm:"column:is_public;default:true" json:"is_public"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}
