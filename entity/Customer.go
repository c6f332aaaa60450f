package entity

import (
	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	UserID *uint `gorm:"uniqueIndex" json:"userId"`
	User   *User `json:"-"`

	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`

	Address          string `json:"address"`
	DepartmentNumber string `json:"departmentNumber"`
	BuildingNumber   string `json:"buildingNumber"`
	StreetNumber     string `json:"streetNumber"`
	City             string `json:"city"`

	// preload only when needed
	Orders []Order `json:"-"`
	Cart   *Cart   `json:"-"`
}
