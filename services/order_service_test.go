package services

import (
	"testing"

	"backend/entity"
	"backend/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// placeOrder runs a real checkout so the views read the same facts the
// checkout engine writes.
func placeOrder(t *testing.T, db *gorm.DB, customerID uint, comment string, lines map[uint]int) *CheckoutOut {
	t.Helper()
	carts := newCartService(db)
	for itemID, qty := range lines {
		_, err := carts.AddItem(customerID, itemID, qty)
		require.NoError(t, err)
	}
	out, err := newCheckoutService(db).Checkout(customerID, &CheckoutIn{Comment: comment})
	require.NoError(t, err)
	return out
}

func TestCustomerViewGroupsByVendor(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	customer := createCustomer(t, db, "alice")
	vendorA := createVendor(t, db, "grill")
	vendorB := createVendor(t, db, "juice")
	_, itemA := createMenuWithItem(t, db, vendorA, "Burger", money.Cents(1000))
	_, itemB := createMenuWithItem(t, db, vendorB, "Lemonade", money.Cents(550))

	placed := placeOrder(t, db, customer.ID, "", map[uint]int{itemA.ID: 2, itemB.ID: 1})

	out, err := svc.ListForCustomer(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, out.TotalOrders)
	assert.Equal(t, "alice", out.CustomerInfo.Name)
	assert.Equal(t, customer.Email, out.CustomerInfo.Email)

	require.Len(t, out.Orders, 1)
	order := out.Orders[0]
	assert.Equal(t, placed.OrderID, order.OrderID)
	assert.Len(t, order.Lines, 2)
	assert.Equal(t, 3, order.ItemCount)
	assert.Equal(t, 2, order.VendorCount)

	require.Len(t, order.VendorGroups, 2)
	subtotals := map[uint]money.Cents{}
	var groupSum money.Cents
	for _, g := range order.VendorGroups {
		subtotals[g.VendorID] = g.Subtotal
		groupSum += g.Subtotal
	}
	assert.Equal(t, money.Cents(2000), subtotals[vendorA.ID])
	assert.Equal(t, money.Cents(550), subtotals[vendorB.ID])
	assert.Equal(t, order.TotalAmount, groupSum, "vendor subtotals must sum to the order total")
}

func TestCustomerViewNewestFirst(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	customer := createCustomer(t, db, "alice")
	vendor := createVendor(t, db, "grill")
	_, item := createMenuWithItem(t, db, vendor, "Burger", money.Cents(1000))

	first := placeOrder(t, db, customer.ID, "", map[uint]int{item.ID: 1})
	second := placeOrder(t, db, customer.ID, "", map[uint]int{item.ID: 2})

	out, err := svc.ListForCustomer(customer.ID)
	require.NoError(t, err)
	require.Len(t, out.Orders, 2)
	assert.Equal(t, second.OrderID, out.Orders[0].OrderID)
	assert.Equal(t, first.OrderID, out.Orders[1].OrderID)
}

func TestCustomerViewRecomputesFromLivePrices(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	customer := createCustomer(t, db, "alice")
	vendor := createVendor(t, db, "grill")
	_, item := createMenuWithItem(t, db, vendor, "Burger", money.Cents(1000))

	placed := placeOrder(t, db, customer.ID, "", map[uint]int{item.ID: 2})

	// reprice after the sale: line valuations follow the live price,
	// the stored order total does not
	require.NoError(t, db.Model(&entity.Item{}).Where("id = ?", item.ID).
		Update("price", money.Cents(1500)).Error)

	out, err := svc.ListForCustomer(customer.ID)
	require.NoError(t, err)
	require.Len(t, out.Orders, 1)
	order := out.Orders[0]

	require.Len(t, order.Lines, 1)
	assert.Equal(t, money.Cents(1500), order.Lines[0].UnitPrice)
	assert.Equal(t, money.Cents(3000), order.Lines[0].Subtotal)
	assert.Equal(t, placed.TotalAmount, order.TotalAmount)
	assert.Equal(t, money.Cents(2000), order.TotalAmount)
}

func TestVendorViewEmitsEachOrderOnce(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	customer := createCustomer(t, db, "alice")
	vendorA := createVendor(t, db, "grill")
	vendorB := createVendor(t, db, "juice")
	_, itemA1 := createMenuWithItem(t, db, vendorA, "Burger", money.Cents(1000))
	_, itemA2 := createMenuWithItem(t, db, vendorA, "Fries", money.Cents(300))
	_, itemB1 := createMenuWithItem(t, db, vendorB, "Lemonade", money.Cents(550))

	placed := placeOrder(t, db, customer.ID, "no onions",
		map[uint]int{itemA1.ID: 1, itemA2.ID: 2, itemB1.ID: 1})

	out, err := svc.ListForVendor(vendorA.ID)
	require.NoError(t, err)
	require.Len(t, out, 1, "two matching lines may not produce two summaries")

	summary := out[0]
	assert.Equal(t, placed.OrderID, summary.ID)
	assert.Equal(t, "Pending", summary.Status)
	assert.Equal(t, "alice", summary.CustomerName)
	assert.Equal(t, customer.Email, summary.CustomerEmail)
	require.NotNil(t, summary.Comment)
	assert.Equal(t, "no onions", *summary.Comment)

	// only this vendor's lines, and only their subtotal
	assert.Len(t, summary.Lines, 2)
	assert.Equal(t, money.Cents(1600), summary.VendorSubtotal)
	assert.Equal(t, 3, summary.ItemCount)
	for _, l := range summary.Lines {
		assert.Equal(t, vendorA.ID, l.VendorID)
	}
}

func TestVendorViewNewestFirstAndScoped(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	customer := createCustomer(t, db, "alice")
	vendorA := createVendor(t, db, "grill")
	vendorB := createVendor(t, db, "juice")
	_, itemA := createMenuWithItem(t, db, vendorA, "Burger", money.Cents(1000))
	_, itemB := createMenuWithItem(t, db, vendorB, "Lemonade", money.Cents(550))

	first := placeOrder(t, db, customer.ID, "", map[uint]int{itemA.ID: 1})
	onlyB := placeOrder(t, db, customer.ID, "", map[uint]int{itemB.ID: 1})
	second := placeOrder(t, db, customer.ID, "", map[uint]int{itemA.ID: 3})

	out, err := svc.ListForVendor(vendorA.ID)
	require.NoError(t, err)
	require.Len(t, out, 2, "orders without this vendor's items are excluded")
	assert.Equal(t, second.OrderID, out[0].ID)
	assert.Equal(t, first.OrderID, out[1].ID)
	for _, s := range out {
		assert.NotEqual(t, onlyB.OrderID, s.ID)
	}
}

func TestVendorViewEmptyWhenNoOrders(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	vendor := createVendor(t, db, "grill")

	out, err := svc.ListForVendor(vendor.ID)
	require.NoError(t, err)
	assert.Empty(t, out)
}
