package entity

import (
	"gorm.io/gorm"
)

// User is the login identity. Role mirrors which profile row
// (Customer or Vendor) the user was registered with.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	Customer *Customer `gorm:"foreignKey:UserID" json:"-"`
	Vendor   *Vendor   `gorm:"foreignKey:UserID" json:"-"`
}
