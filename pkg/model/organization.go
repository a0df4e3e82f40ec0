package model

import "time"

// SubscriptionStatus values mirror the billing lifecycle.
const (
	SubscriptionActive   = "active"
	SubscriptionInactive = "inactive"
	SubscriptionTrialing = "trialing"
	SubscriptionPastDue  = "past_due"
	SubscriptionCanceled = "canceled"
)

// Organization is the tenant boundary. Every domain row carries an
// organization id and the guard refuses access across it.
type Organization struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	Name               string  `gorm:"column:name" json:"name"`
	Slug               string  `gorm:"column:slug;uniqueIndex" json:"slug"`
	Description        string  `gorm:"column:description" json:"description"`
	PrimaryOwnerID     *uint   `gorm:"column:primary_owner_id" json:"primary_owner_id"`
	Email              string  `gorm:"column:email" json:"email"`
	PhoneNumber        string  `gorm:"column:phone_number" json:"phone_number"`
	SubscriptionStatus string  `gorm:"column:subscription_status;default:trialing" json:"subscription_status"`
	TrialEnabled       bool    `gorm:"column:trial_enabled;default:true" json:"trial_enabled"`
	SubscriptionPlanID *uint   `gorm:"column:subscription_plan_id" json:"subscription_plan_id"`
	PlanName           string  `gorm:"column:plan_name" json:"plan_name"`

	SubscriptionPlan *SubscriptionPlan `gorm:"foreignKey:SubscriptionPlanID" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Organization) TableName() string {
	return "organizations"
}

// ResourceOrganizationID lets an organization act as its own guarded
// resource.
func (o *Organization) ResourceOrganizationID() *uint {
	if o == nil {
		return nil
	}
	id := o.ID
	return &id
}
