package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is an account known to the identity layer.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"uniqueIndex;size:255" json:"email"`
	Password  string         `gorm:"size:255" json:"-"` // bcrypt hash, never serialized
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Profile carries guest details and the loyalty balance for a user.
type Profile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"column:user_id;uniqueIndex" json:"user_id"`

	FirstName   string     `gorm:"column:first_name;size:100" json:"first_name,omitempty"`
	LastName    string     `gorm:"column:last_name;size:100" json:"last_name,omitempty"`
	Phone       string     `gorm:"size:64" json:"phone,omitempty"`
	Nationality string     `gorm:"size:100" json:"nationality,omitempty"`
	DateOfBirth *time.Time `gorm:"column:date_of_birth" json:"date_of_birth,omitempty"`
	AvatarURL   string     `gorm:"column:avatar_url;size:512" json:"avatar_url,omitempty"`

	LoyaltyPoints int64 `gorm:"column:loyalty_points;default:0" json:"loyalty_points"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AdminUser is a capability marker: the presence of a row for a user_id
// grants admin access. No role is embedded in session tokens.
type AdminUser struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"column:user_id;uniqueIndex" json:"user_id"`
	Role        string         `gorm:"size:64;default:admin" json:"role"`
	Permissions datatypes.JSON `json:"permissions,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}
