package services

import (
	"errors"
	"time"

	"backend/pkg/apperr"
	"backend/pkg/money"
	"backend/repository"

	"gorm.io/gorm"
)

// OrderService assembles the read-only order views. Nothing here is
// cached: every call re-derives aggregates from the order lines.
type OrderService struct {
	Repo     *repository.OrderRepository
	UserRepo *repository.UserRepository
}

func NewOrderService(repo *repository.OrderRepository, userRepo *repository.UserRepository) *OrderService {
	return &OrderService{Repo: repo, UserRepo: userRepo}
}

type OrderLineView struct {
	repository.LineDetail
	Subtotal money.Cents `json:"subtotal"`
}

type VendorGroup struct {
	VendorID   uint            `json:"vendorId"`
	VendorName string          `json:"vendorName"`
	Lines      []OrderLineView `json:"lines"`
	Subtotal   money.Cents     `json:"subtotal"`
}

type CustomerOrderView struct {
	OrderID       uint            `json:"orderId"`
	Code          string          `json:"code"`
	CreatedAt     time.Time       `json:"createdAt"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"paymentMethod"`
	Comment       *string         `json:"comment"`
	TotalAmount   money.Cents     `json:"totalAmount"`
	Lines         []OrderLineView `json:"lines"`
	VendorGroups  []VendorGroup   `json:"vendorGroups"`
	ItemCount     int             `json:"itemCount"`
	VendorCount   int             `json:"vendorCount"`
}

type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CustomerOrdersOut struct {
	Orders       []CustomerOrderView `json:"orders"`
	TotalOrders  int                 `json:"totalOrders"`
	CustomerInfo CustomerInfo        `json:"customerInfo"`
}

// ListForCustomer returns all of the customer's orders newest first,
// each with its flat line list and the same lines regrouped by vendor
// with vendor-scoped running totals.
func (s *OrderService) ListForCustomer(customerID uint) (*CustomerOrdersOut, error) {
	customer, err := s.UserRepo.FindCustomerByID(customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("customer not found")
		}
		return nil, err
	}

	orders, err := s.Repo.ListOrdersForCustomer(customerID)
	if err != nil {
		return nil, err
	}

	out := &CustomerOrdersOut{
		Orders:      make([]CustomerOrderView, 0, len(orders)),
		TotalOrders: len(orders),
		CustomerInfo: CustomerInfo{
			Name:  customer.Name,
			Email: customer.Email,
			Phone: customer.Phone,
		},
	}

	for _, o := range orders {
		details, err := s.Repo.GetOrderLines(o.ID)
		if err != nil {
			return nil, err
		}

		view := CustomerOrderView{
			OrderID:       o.ID,
			Code:          o.Code,
			CreatedAt:     o.CreatedAt,
			Status:        o.Status,
			PaymentMethod: o.PaymentMethod,
			Comment:       o.Comment,
			TotalAmount:   o.TotalAmount,
			Lines:         make([]OrderLineView, 0, len(details)),
		}

		groupIdx := make(map[uint]int)
		for _, d := range details {
			line := OrderLineView{LineDetail: d, Subtotal: d.UnitPrice.Mul(d.Quantity)}
			view.Lines = append(view.Lines, line)
			view.ItemCount += d.Quantity

			idx, ok := groupIdx[d.VendorID]
			if !ok {
				idx = len(view.VendorGroups)
				groupIdx[d.VendorID] = idx
				view.VendorGroups = append(view.VendorGroups, VendorGroup{
					VendorID:   d.VendorID,
					VendorName: d.VendorName,
				})
			}
			view.VendorGroups[idx].Lines = append(view.VendorGroups[idx].Lines, line)
			view.VendorGroups[idx].Subtotal += line.Subtotal
		}
		view.VendorCount = len(view.VendorGroups)

		out.Orders = append(out.Orders, view)
	}
	return out, nil
}

type VendorOrderSummary struct {
	repository.OrderHead
	Lines          []OrderLineView `json:"lines"`
	VendorSubtotal money.Cents     `json:"vendorSubtotal"`
	ItemCount      int             `json:"itemCount"`
}

// ListForVendor finds every order containing at least one of the
// vendor's items, emitting each order exactly once with only this
// vendor's lines and their subtotal. Newest order first.
func (s *OrderService) ListForVendor(vendorID uint) ([]VendorOrderSummary, error) {
	hits, err := s.Repo.ListOrderHitsForVendor(vendorID)
	if err != nil {
		return nil, err
	}

	visited := make(map[uint]bool)
	out := make([]VendorOrderSummary, 0, len(hits))
	for _, hit := range hits {
		if visited[hit.OrderID] {
			continue
		}
		visited[hit.OrderID] = true

		head, err := s.Repo.GetOrderHead(hit.OrderID)
		if err != nil {
			return nil, err
		}
		details, err := s.Repo.GetVendorLines(hit.OrderID, vendorID)
		if err != nil {
			return nil, err
		}

		summary := VendorOrderSummary{
			OrderHead: *head,
			Lines:     make([]OrderLineView, 0, len(details)),
		}
		for _, d := range details {
			line := OrderLineView{LineDetail: d, Subtotal: d.UnitPrice.Mul(d.Quantity)}
			summary.Lines = append(summary.Lines, line)
			summary.VendorSubtotal += line.Subtotal
			summary.ItemCount += d.Quantity
		}
		out = append(out, summary)
	}
	return out, nil
}
