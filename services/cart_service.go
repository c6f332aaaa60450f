package services

import (
	"errors"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/money"
	"backend/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository // item lookups
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddLineOut struct {
	ItemName       string `json:"item_name"`
	QuantityInCart int    `json:"quantity_in_cart"`
}

// AddItem merges into the existing (cart, item) line or creates one.
// The cart itself is created on first touch.
func (s *CartService) AddItem(customerID, itemID uint, qty int) (*AddLineOut, error) {
	if qty < 1 {
		return nil, apperr.Validation("quantity must be a positive integer")
	}

	item, err := s.MenuRepo.FindItem(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("item %d not found", itemID)
		}
		return nil, err
	}

	var line *entity.CartLine
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreateCart(tx, customerID)
		if err != nil {
			return err
		}
		line, err = s.CartRepo.UpsertLine(tx, cart.ID, item.ID, qty)
		return err
	})
	if err != nil {
		return nil, apperr.TxFailed("could not add item to cart", err)
	}

	return &AddLineOut{ItemName: item.Name, QuantityInCart: line.Quantity}, nil
}

// UpdateLineQuantity overwrites the line quantity (absolute).
func (s *CartService) UpdateLineQuantity(customerID, itemID uint, qty int) error {
	if qty < 1 {
		return apperr.Validation("quantity must be a positive integer")
	}

	cart, err := s.CartRepo.FindCart(customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("cart not found")
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		n, err := s.CartRepo.SetLineQuantity(tx, cart.ID, itemID, qty)
		if err != nil {
			return apperr.TxFailed("could not update cart line", err)
		}
		if n == 0 {
			return apperr.NotFound("item %d is not in the cart", itemID)
		}
		return nil
	})
}

func (s *CartService) RemoveLine(customerID, itemID uint) error {
	cart, err := s.CartRepo.FindCart(customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("cart not found")
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		n, err := s.CartRepo.RemoveLine(tx, cart.ID, itemID)
		if err != nil {
			return apperr.TxFailed("could not remove cart line", err)
		}
		if n == 0 {
			return apperr.NotFound("item %d is not in the cart", itemID)
		}
		return nil
	})
}

// Clear empties the cart. Idempotent: no cart or an already-empty cart
// clears zero lines without error.
func (s *CartService) Clear(customerID uint) (int64, error) {
	cart, err := s.CartRepo.FindCart(customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	var removed int64
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		removed, err = s.CartRepo.ClearLines(tx, cart.ID)
		return err
	})
	if err != nil {
		return 0, apperr.TxFailed("could not clear cart", err)
	}
	return removed, nil
}

type CartLineView struct {
	ItemID     uint        `json:"itemId"`
	ItemName   string      `json:"itemName"`
	ItemPrice  money.Cents `json:"itemPrice"`
	VendorName string      `json:"vendorName"`
	Quantity   int         `json:"quantity"`
	Subtotal   money.Cents `json:"subtotal"`
}

type CartView struct {
	CartID     uint           `json:"cartId"`
	Lines      []CartLineView `json:"lines"`
	TotalItems int            `json:"totalItems"`
	TotalPrice money.Cents    `json:"totalPrice"`
}

// View denormalizes the cart for display. Totals are recomputed from
// live item prices on every call.
func (s *CartService) View(customerID uint) (*CartView, error) {
	cart, err := s.CartRepo.GetCartWithLines(customerID)
	if err != nil {
		return nil, err
	}

	out := &CartView{CartID: cart.ID, Lines: make([]CartLineView, 0, len(cart.Lines))}
	for _, l := range cart.Lines {
		sub := l.Item.Price.Mul(l.Quantity)
		out.Lines = append(out.Lines, CartLineView{
			ItemID:     l.ItemID,
			ItemName:   l.Item.Name,
			ItemPrice:  l.Item.Price,
			VendorName: l.Item.Vendor.Name,
			Quantity:   l.Quantity,
			Subtotal:   sub,
		})
		out.TotalItems += l.Quantity
		out.TotalPrice += sub
	}
	return out, nil
}
