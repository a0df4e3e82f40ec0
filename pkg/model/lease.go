package model

import "time"

type Lease struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	OrganizationID uint       `gorm:"column:organization_id;index" json:"organization_id"`
	UnitID         uint       `gorm:"column:unit_id" json:"unit_id"`
	TenantID       uint       `gorm:"column:tenant_id" json:"tenant_id"`
	StartDate      time.Time  `gorm:"column:start_date" json:"start_date"`
	EndDate        *time.Time `gorm:"column:end_date" json:"end_date"`
	MonthlyRent    float64    `gorm:"column:monthly_rent" json:"monthly_rent"`
	Deposit        float64    `gorm:"column:deposit" json:"deposit"`
	IsActive       bool       `gorm:"column:is_active;default:true" json:"is_active"`

	Unit   *Unit   `gorm:"foreignKey:UnitID" json:"-"`
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Lease) TableName() string {
	return "leases"
}

func (l *Lease) ResourceOrganizationID() *uint {
	if l == nil {
		return nil
	}
	id := l.OrganizationID
	return &id
}
