package repository

import (
	"time"

	"backend/entity"
	"backend/pkg/money"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- writes (checkout path) ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderLine(tx *gorm.DB, ol *entity.OrderLine) error {
	return tx.Create(ol).Error
}

// ---------------- reads (aggregation paths) ----------------

// LineDetail is one order line joined with its live item and vendor.
// UnitPrice is the current item price, not a checkout-time snapshot.
type LineDetail struct {
	ItemID      uint        `json:"itemId"`
	ItemName    string      `json:"itemName"`
	Description string      `json:"description"`
	Quantity    int         `json:"quantity"`
	UnitPrice   money.Cents `json:"unitPrice"`
	VendorID    uint        `json:"vendorId"`
	VendorName  string      `json:"vendorName"`
}

func (r *OrderRepository) ListOrdersForCustomer(customerID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("customer_id = ?", customerID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) GetOrderForCustomer(customerID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND customer_id = ?", orderID, customerID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderLines(orderID uint) ([]LineDetail, error) {
	var rows []LineDetail
	err := r.DB.Table("order_lines AS ol").
		Select(`ol.item_id, i.name AS item_name, i.description, ol.quantity,
			i.price AS unit_price, i.vendor_id, v.name AS vendor_name`).
		Joins("JOIN items i ON i.id = ol.item_id").
		Joins("JOIN vendors v ON v.id = i.vendor_id").
		Where("ol.order_id = ? AND ol.deleted_at IS NULL", orderID).
		Order("ol.id ASC").
		Scan(&rows).Error
	return rows, err
}

// VendorLineHit pairs an order id with one of the vendor's lines in
// it. Ordered newest order first; the service deduplicates order ids.
type VendorLineHit struct {
	OrderID uint
}

func (r *OrderRepository) ListOrderHitsForVendor(vendorID uint) ([]VendorLineHit, error) {
	var rows []VendorLineHit
	err := r.DB.Table("order_lines AS ol").
		Select("ol.order_id").
		Joins("JOIN items i ON i.id = ol.item_id").
		Joins("JOIN orders o ON o.id = ol.order_id").
		Where("i.vendor_id = ? AND ol.deleted_at IS NULL", vendorID).
		Order("o.created_at DESC, o.id DESC").
		Scan(&rows).Error
	return rows, err
}

// GetVendorLines restricts one order's lines to a single vendor's items.
func (r *OrderRepository) GetVendorLines(orderID, vendorID uint) ([]LineDetail, error) {
	var rows []LineDetail
	err := r.DB.Table("order_lines AS ol").
		Select(`ol.item_id, i.name AS item_name, i.description, ol.quantity,
			i.price AS unit_price, i.vendor_id, v.name AS vendor_name`).
		Joins("JOIN items i ON i.id = ol.item_id").
		Joins("JOIN vendors v ON v.id = i.vendor_id").
		Where("ol.order_id = ? AND i.vendor_id = ? AND ol.deleted_at IS NULL", orderID, vendorID).
		Order("ol.id ASC").
		Scan(&rows).Error
	return rows, err
}

// OrderHead carries the order fields the vendor summary needs along
// with the joined customer contact.
type OrderHead struct {
	ID            uint        `json:"orderId"`
	Code          string      `json:"code"`
	CreatedAt     time.Time   `json:"createdAt"`
	Status        string      `json:"status"`
	PaymentMethod string      `json:"paymentMethod"`
	Comment       *string     `json:"comment"`
	TotalAmount   money.Cents `json:"totalAmount"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	CustomerPhone string      `json:"customerPhone"`
}

func (r *OrderRepository) GetOrderHead(orderID uint) (*OrderHead, error) {
	var row OrderHead
	err := r.DB.Table("orders AS o").
		Select(`o.id, o.code, o.created_at, o.status, o.payment_method, o.comment,
			o.total_amount, c.name AS customer_name, c.email AS customer_email,
			c.phone AS customer_phone`).
		Joins("JOIN customers c ON c.id = o.customer_id").
		Where("o.id = ?", orderID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *OrderRepository) CountLinesForItem(itemID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.OrderLine{}).Where("item_id = ?", itemID).Count(&count).Error
	return count, err
}
