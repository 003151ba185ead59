package models

import "gorm.io/gorm"

// Role values for User.Role.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the primary user model.
type User struct {
	gorm.Model
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialised
	Role      string    `gorm:"size:50;default:user" json:"role"`
	Blocked   bool      `gorm:"default:false" json:"blocked"`
	Mobile    string    `gorm:"size:50" json:"mobile"`
	AvatarURL string    `gorm:"size:500" json:"avatar_url"`
	Addresses []Address `json:"addresses,omitempty"`
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// Address is a saved shipping address belonging to a user.
type Address struct {
	gorm.Model
	UserID     uint   `gorm:"not null;index" json:"user_id"`
	Label      string `gorm:"size:100;default:Home" json:"label"`
	Name       string `gorm:"size:255" json:"name"`
	Line1      string `gorm:"size:255" json:"line1"`
	Line2      string `gorm:"size:255" json:"line2"`
	City       string `gorm:"size:100" json:"city"`
	State      string `gorm:"size:100" json:"state"`
	PostalCode string `gorm:"size:20" json:"postal_code"`
	Country    string `gorm:"size:100;default:India" json:"country"`
	Phone      string `gorm:"size:50" json:"phone"`
	IsDefault  bool   `gorm:"default:false" json:"is_default"`
}
