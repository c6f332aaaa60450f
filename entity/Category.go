package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	ItemID uint `json:"itemId"`
	Item   Item `json:"-"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
}
