package model

import "time"

const (
	PropertyResidential = "residential"
	PropertyCommercial  = "commercial"
	PropertyShortTerm   = "short_term"
)

type Property struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	OrganizationID uint   `gorm:"column:organization_id;index" json:"organization_id"`
	OwnerID        *uint  `gorm:"column:owner_id" json:"owner_id"`
	Name           string `gorm:"column:name" json:"name"`
	Address        string `gorm:"column:address" json:"address"`
	PropertyType   string `gorm:"column:property_type;default:residential" json:"property_type"`
	Description    string `gorm:"column:description" json:"description"`

	Units []Unit `gorm:"foreignKey:PropertyID" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Property) TableName() string {
	return "properties"
}

func (p *Property) ResourceOrganizationID() *uint {
	if p == nil {
		return nil
	}
	id := p.OrganizationID
	return &id
}
