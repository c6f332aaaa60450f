package entity

import (
	"gorm.io/gorm"
)

type Vendor struct {
	gorm.Model
	UserID *uint `gorm:"uniqueIndex" json:"userId"`
	User   *User `json:"-"`

	Name         string `json:"name"`
	Location     string `json:"location"`
	WorkingHours string `json:"workingHours"`

	Menus []Menu `json:"-"`
	Items []Item `json:"-"`
}
