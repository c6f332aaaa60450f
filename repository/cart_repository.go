package repository

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetOrCreateCart returns the customer's cart, creating it on first
// touch. The insert is conflict-safe: under a concurrent first access
// the unique customer_id index makes one insert a no-op and both
// callers read the same row.
func (r *CartRepository) GetOrCreateCart(tx *gorm.DB, customerID uint) (*entity.Cart, error) {
	c := entity.Cart{CustomerID: customerID}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "customer_id"}},
		DoNothing: true,
	}).Create(&c).Error; err != nil {
		return nil, err
	}
	var out entity.Cart
	if err := tx.Where("customer_id = ?", customerID).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// FindCart returns gorm.ErrRecordNotFound when the customer has never
// touched a cart.
func (r *CartRepository) FindCart(customerID uint) (*entity.Cart, error) {
	var c entity.Cart
	if err := r.DB.Where("customer_id = ?", customerID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) GetCartWithLines(customerID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("customer_id = ?", customerID).
		Preload("Lines").
		Preload("Lines.Item").
		Preload("Lines.Item.Vendor").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{CustomerID: customerID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpsertLine adds qty to the (cart, item) line, creating it when
// absent. The composite unique index turns a concurrent double-add
// into two increments on the same row.
func (r *CartRepository) UpsertLine(tx *gorm.DB, cartID, itemID uint, qty int) (*entity.CartLine, error) {
	line := entity.CartLine{CartID: cartID, ItemID: itemID, Quantity: qty}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "item_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity": gorm.Expr("quantity + ?", qty),
		}),
	}).Create(&line).Error
	if err != nil {
		return nil, err
	}
	var out entity.CartLine
	if err := tx.Where("cart_id = ? AND item_id = ?", cartID, itemID).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// SetLineQuantity overwrites the quantity (absolute, not additive).
// Returns the affected row count so callers can 404 a missing line.
func (r *CartRepository) SetLineQuantity(tx *gorm.DB, cartID, itemID uint, qty int) (int64, error) {
	res := tx.Model(&entity.CartLine{}).
		Where("cart_id = ? AND item_id = ?", cartID, itemID).
		Update("quantity", qty)
	return res.RowsAffected, res.Error
}

// RemoveLine hard-deletes the line; cart lines are working state, not
// history, and a soft-deleted row would still occupy the unique index.
func (r *CartRepository) RemoveLine(tx *gorm.DB, cartID, itemID uint) (int64, error) {
	res := tx.Unscoped().
		Where("cart_id = ? AND item_id = ?", cartID, itemID).
		Delete(&entity.CartLine{})
	return res.RowsAffected, res.Error
}

// ClearLines empties the cart, returning how many lines went.
func (r *CartRepository) ClearLines(tx *gorm.DB, cartID uint) (int64, error) {
	res := tx.Unscoped().Where("cart_id = ?", cartID).Delete(&entity.CartLine{})
	return res.RowsAffected, res.Error
}
