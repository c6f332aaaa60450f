package services

import (
	"errors"
	"strings"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/money"
	"backend/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultPaymentMethod = "Cash"

// OrderNotifier pushes a checkout result to interested vendors.
// Delivery is best-effort and never part of the transaction.
type OrderNotifier interface {
	OrderCreated(vendorIDs []uint, event OrderCreatedEvent)
}

type OrderCreatedEvent struct {
	OrderID   uint        `json:"orderId"`
	Code      string      `json:"code"`
	Total     money.Cents `json:"total"`
	ItemCount int         `json:"itemCount"`
	CreatedAt time.Time   `json:"createdAt"`
}

type CheckoutService struct {
	DB        *gorm.DB
	CartRepo  *repository.CartRepository
	OrderRepo *repository.OrderRepository
	Notifier  OrderNotifier // optional
}

func NewCheckoutService(db *gorm.DB, cr *repository.CartRepository, or *repository.OrderRepository) *CheckoutService {
	return &CheckoutService{DB: db, CartRepo: cr, OrderRepo: or}
}

type CheckoutIn struct {
	PaymentMethod string `json:"payment_method"`
	Comment       string `json:"comment"`
}

type CheckoutItemOut struct {
	ItemID     uint        `json:"itemId"`
	ItemName   string      `json:"itemName"`
	Quantity   int         `json:"quantity"`
	UnitPrice  money.Cents `json:"unitPrice"`
	Subtotal   money.Cents `json:"subtotal"`
	VendorName string      `json:"vendorName"`
}

type CheckoutOut struct {
	OrderID       uint              `json:"order_id"`
	Code          string            `json:"code"`
	TotalAmount   money.Cents       `json:"total_amount"`
	Status        string            `json:"status"`
	PaymentMethod string            `json:"paymentMethod"`
	Comment       *string           `json:"comment"`
	Items         []CheckoutItemOut `json:"items"`
	ItemCount     int               `json:"item_count"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// Checkout converts the customer's whole cart into one order.
// Order creation, line copies and the cart clear run in a single
// transaction; any failure rolls the lot back and leaves the cart as
// it was.
func (s *CheckoutService) Checkout(customerID uint, in *CheckoutIn) (*CheckoutOut, error) {
	payment := strings.TrimSpace(in.PaymentMethod)
	if payment == "" {
		payment = defaultPaymentMethod
	}
	var comment *string
	if c := strings.TrimSpace(in.Comment); c != "" {
		comment = &c
	}

	var out *CheckoutOut
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var cart entity.Cart
		err := tx.Where("customer_id = ?", customerID).
			Preload("Lines").
			Preload("Lines.Item").
			Preload("Lines.Item.Vendor").
			First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.EmptyCart("cart is empty")
		}
		if err != nil {
			return err
		}
		if len(cart.Lines) == 0 {
			return apperr.EmptyCart("cart is empty")
		}

		// total from prices as they stand right now, not as they were
		// when the lines were added
		var total money.Cents
		for _, l := range cart.Lines {
			total += l.Item.Price.Mul(l.Quantity)
		}

		order := entity.Order{
			Code:          uuid.NewString(),
			CustomerID:    customerID,
			TotalAmount:   total,
			Status:        "Pending",
			PaymentMethod: payment,
			Comment:       comment,
		}
		if err := s.OrderRepo.CreateOrder(tx, &order); err != nil {
			return err
		}

		items := make([]CheckoutItemOut, 0, len(cart.Lines))
		itemCount := 0
		for _, l := range cart.Lines {
			ol := entity.OrderLine{
				OrderID:  order.ID,
				ItemID:   l.ItemID,
				Quantity: l.Quantity,
			}
			if err := s.OrderRepo.CreateOrderLine(tx, &ol); err != nil {
				return err
			}
			items = append(items, CheckoutItemOut{
				ItemID:     l.ItemID,
				ItemName:   l.Item.Name,
				Quantity:   l.Quantity,
				UnitPrice:  l.Item.Price,
				Subtotal:   l.Item.Price.Mul(l.Quantity),
				VendorName: l.Item.Vendor.Name,
			})
			itemCount += l.Quantity
		}

		if _, err := s.CartRepo.ClearLines(tx, cart.ID); err != nil {
			return err
		}

		out = &CheckoutOut{
			OrderID:       order.ID,
			Code:          order.Code,
			TotalAmount:   total,
			Status:        order.Status,
			PaymentMethod: order.PaymentMethod,
			Comment:       order.Comment,
			Items:         items,
			ItemCount:     itemCount,
			CreatedAt:     order.CreatedAt,
		}
		return nil
	})
	if err != nil {
		if apperr.IsCode(err, apperr.CodeEmptyCart) {
			return nil, err
		}
		return nil, apperr.TxFailed("checkout failed", err)
	}

	s.notify(out)
	return out, nil
}

func (s *CheckoutService) notify(out *CheckoutOut) {
	if s.Notifier == nil {
		return
	}
	seen := make(map[uint]bool)
	var vendorIDs []uint
	var rows []struct{ VendorID uint }
	if err := s.DB.Table("order_lines AS ol").
		Select("i.vendor_id").
		Joins("JOIN items i ON i.id = ol.item_id").
		Where("ol.order_id = ?", out.OrderID).
		Scan(&rows).Error; err != nil {
		return
	}
	for _, r := range rows {
		if !seen[r.VendorID] {
			seen[r.VendorID] = true
			vendorIDs = append(vendorIDs, r.VendorID)
		}
	}
	s.Notifier.OrderCreated(vendorIDs, OrderCreatedEvent{
		OrderID:   out.OrderID,
		Code:      out.Code,
		Total:     out.TotalAmount,
		ItemCount: out.ItemCount,
		CreatedAt: out.CreatedAt,
	})
}
