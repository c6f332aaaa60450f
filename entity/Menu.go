package entity

import (
	"gorm.io/gorm"
)

// Menu groups a vendor's items. CreatedAt is the menu date and must
// survive renames untouched.
type Menu struct {
	gorm.Model
	VendorID uint   `json:"vendorId"`
	Vendor   Vendor `json:"-"`

	Name string `gorm:"not null" json:"name"`

	Items []Item `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
