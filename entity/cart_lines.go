package entity

import (
	"gorm.io/gorm"
)

// CartLine holds one (item, quantity) pair. The composite unique index
// is what keeps adds merging instead of duplicating rows under
// concurrent requests.
type CartLine struct {
	gorm.Model
	CartID uint `gorm:"not null;uniqueIndex:idx_cart_line_item" json:"cartId"`
	Cart   Cart `json:"-"`

	ItemID uint `gorm:"not null;uniqueIndex:idx_cart_line_item" json:"itemId"`
	Item   Item `json:"-"`

	Quantity int `gorm:"not null" json:"quantity"`
}
