package entity

import (
	"backend/pkg/money"

	"gorm.io/gorm"
)

// Order is an immutable purchase record. TotalAmount is the
// checkout-time snapshot; query views recompute from live prices and
// may diverge if a vendor edits prices later (see DESIGN.md).
type Order struct {
	gorm.Model
	Code string `gorm:"uniqueIndex;not null" json:"code"`

	CustomerID uint     `json:"customerId"`
	Customer   Customer `json:"-"`

	TotalAmount   money.Cents `gorm:"not null;default:0" json:"totalAmount"`
	Status        string      `gorm:"not null;default:Pending" json:"status"`
	PaymentMethod string      `json:"paymentMethod"`
	Comment       *string     `json:"comment"`

	Lines []OrderLine `json:"-"`
}
