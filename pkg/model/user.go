package model

import "time"

// User is an authenticated account. A user belongs to at most one
// organization; OrganizationID is nil until they create or join one.
type User struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Email           string `gorm:"column:email;uniqueIndex" json:"email"`
	Username        string `gorm:"column:username" json:"username"`
	PasswordHash    string `gorm:"column:password_hash" json:"-"`
	PhoneNumber     string `gorm:"column:phone_number" json:"phone_number"`
	IsSuperuser     bool   `gorm:"column:is_superuser" json:"is_superuser"`
	IsPropertyOwner bool   `gorm:"column:is_property_owner" json:"is_property_owner"`
	IsTenant        bool   `gorm:"column:is_tenant" json:"is_tenant"`
	OrganizationID  *uint  `gorm:"column:organization_id" json:"organization_id"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
