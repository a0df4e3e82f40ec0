package model

import "time"

// Tenant is a renter record scoped to an organization. UnitID is set by
// allocation and cleared when the tenant moves out.
type Tenant struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	OrganizationID uint       `gorm:"column:organization_id;index" json:"organization_id"`
	Name           string     `gorm:"column:name" json:"name"`
	PhoneNumber    string     `gorm:"column:phone_number" json:"phone_number"`
	Email          string     `gorm:"column:email" json:"email"`
	IDNumber       string     `gorm:"column:id_number" json:"id_number"`
	UnitID         *uint      `gorm:"column:unit_id" json:"unit_id"`
	MoveInDate     *time.Time `gorm:"column:move_in_date" json:"move_in_date"`

	Unit *Unit `gorm:"foreignKey:UnitID" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}

func (t *Tenant) ResourceOrganizationID() *uint {
	if t == nil {
		return nil
	}
	id := t.OrganizationID
	return &id
}
