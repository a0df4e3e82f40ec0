package model

import "time"

// Notice is an announcement to tenants. Body is markdown; the API
// renders it to HTML on demand. A nil PropertyID means organization-wide.
type Notice struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	OrganizationID uint       `gorm:"column:organization_id;index" json:"organization_id"`
	PropertyID     *uint      `gorm:"column:property_id" json:"property_id"`
	Title          string     `gorm:"column:title" json:"title"`
	Body           string     `gorm:"column:body" json:"body"`
	NoticeType     string     `gorm:"column:notice_type" json:"notice_type"`
	IsPublished    bool       `gorm:"column:is_published" json:"is_published"`
	StartsAt       *time.Time `gorm:"column:starts_at" json:"starts_at"`
	EndsAt         *time.Time `gorm:"column:ends_at" json:"ends_at"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Notice) TableName() string {
	return "notices"
}

func (n *Notice) ResourceOrganizationID() *uint {
	if n == nil {
		return nil
	}
	id := n.OrganizationID
	return &id
}
