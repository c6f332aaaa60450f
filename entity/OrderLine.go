package entity

import (
	"gorm.io/gorm"
)

// OrderLine snapshots (item, quantity) at checkout. Unit price is not
// copied; valuation in query paths always reads the live Item price.
type OrderLine struct {
	gorm.Model
	OrderID uint  `gorm:"not null;index" json:"orderId"`
	Order   Order `json:"-"`

	ItemID uint `gorm:"not null;index" json:"itemId"`
	Item   Item `json:"-"`

	Quantity int `gorm:"not null" json:"quantity"`
}
