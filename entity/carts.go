package entity

import (
	"gorm.io/gorm"
)

// Cart is the customer's working basket. One per customer, created
// lazily on first touch and emptied (never deleted) by checkout.
type Cart struct {
	gorm.Model
	CustomerID uint     `gorm:"uniqueIndex;not null" json:"customerId"`
	Customer   Customer `json:"-"`

	Lines []CartLine `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"lines"`
}
