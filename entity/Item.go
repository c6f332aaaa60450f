package entity

import (
	"backend/pkg/money"

	"gorm.io/gorm"
)

// Item is a sellable product. Invariant: VendorID always equals the
// owning menu's VendorID (checked on create, not denormalized away —
// both views and carts join through it).
type Item struct {
	gorm.Model
	VendorID uint   `json:"vendorId"`
	Vendor   Vendor `json:"-"`

	MenuID uint `json:"menuId"`
	Menu   Menu `json:"-"`

	Name        string      `gorm:"not null" json:"name"`
	Price       money.Cents `gorm:"not null" json:"price"`
	Description string      `json:"description"`

	Categories []Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"categories"`

	// order history references block deletion of the item
	OrderLines []OrderLine `gorm:"constraint:OnDelete:RESTRICT;" json:"-"`
}
