package services

import (
	"testing"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemMergesQuantities(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	customer := createCustomer(t, db, "alice")
	vendor := createVendor(t, db, "grill")
	_, item := createMenuWithItem(t, db, vendor, "Burger", money.Cents(900))

	out, err := svc.AddItem(customer.ID, item.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, "Burger", out.ItemName)
	assert.Equal(t, 2, out.QuantityInCart)

	out, err = svc.AddItem(customer.ID, item.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, out.QuantityInCart)

	var lines int64
	require.NoError(t, db.Model(&entity.CartLine{}).Count(&lines).Error)
	assert.Equal(t, int64(1), lines, "adds must merge into one line, not duplicate")
}

func TestAddItemValidation(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	customer := createCustomer(t, db, "alice")
	vendor := createVendor(t, db, "grill")
	_, item := createMenuWithItem(t, db, vendor, "Burger", money.Cents(900))

	_, err := svc.AddItem(customer.ID, item.ID, 0)
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))

	_, err = svc.AddItem(customer.ID, item.ID, -4)
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))

	_, err = svc.AddItem(customer.ID, 9999, 1)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}

func TestUpdateLineQuantityIsAbsolute(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	customer := createCustomer(t, db, "alice")
	vendor := createVendor(t, db, "grill")
	_, item := createMenuWithItem(t, db, vendor, "Burger", money.Cents(900))

	_, err := svc.AddItem(customer.ID, item.ID, 2)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateLineQuantity(customer.ID, item.ID, 7))

	view, err := svc.View(customer.ID)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 7, view.Lines[0].Quantity)
}

func TestUpdateLineQuantityNotFound(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	customer := createCustomer(t, db, "alice")
	vendor := createVendor(t, db, "grill")
	_, item := createMenuWithItem(t, db, vendor, "Burger", money.Cents(900))

	// no cart yet
	err := svc.UpdateLineQuantity(customer.ID, item.ID, 2)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))

	// cart exists, line does not
	_, err = svc.AddItem(customer.ID, item.ID, 1)
	require.NoError(t, err)
	err = svc.UpdateLineQuantity(customer.ID, 9999, 2)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}

func TestRemoveLine(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	customer := createCustomer(t, db, "alice")
	vendor := createVendor(t, db, "grill")
	_, item := createMenuWithItem(t, db, vendor, "Burger", money.Cents(900))

	err := svc.RemoveLine(customer.ID, item.ID)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound), "no cart yet")

	_, err = svc.AddItem(customer.ID, item.ID, 2)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveLine(customer.ID, item.ID))

	err = svc.RemoveLine(customer.ID, item.ID)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound), "line already gone")

	view, err := svc.View(customer.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestClearIsIdempotent(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	customer := createCustomer(t, db, "alice")
	vendor := createVendor(t, db, "grill")
	_, itemA := createMenuWithItem(t, db, vendor, "Burger", money.Cents(900))
	_, itemB := createMenuWithItem(t, db, vendor, "Fries", money.Cents(300))

	// clearing a nonexistent cart succeeds with zero
	removed, err := svc.Clear(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)

	_, err = svc.AddItem(customer.ID, itemA.ID, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(customer.ID, itemB.ID, 2)
	require.NoError(t, err)

	removed, err = svc.Clear(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	removed, err = svc.Clear(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)

	// cart row survives the clear
	var carts int64
	require.NoError(t, db.Model(&entity.Cart{}).Count(&carts).Error)
	assert.Equal(t, int64(1), carts)
}

func TestViewTotals(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	customer := createCustomer(t, db, "alice")
	vendorA := createVendor(t, db, "grill")
	vendorB := createVendor(t, db, "juice")
	_, itemA := createMenuWithItem(t, db, vendorA, "Burger", money.Cents(1000))
	_, itemB := createMenuWithItem(t, db, vendorB, "Lemonade", money.Cents(550))

	_, err := svc.AddItem(customer.ID, itemA.ID, 2)
	require.NoError(t, err)
	_, err = svc.AddItem(customer.ID, itemB.ID, 1)
	require.NoError(t, err)

	view, err := svc.View(customer.ID)
	require.NoError(t, err)
	require.Len(t, view.Lines, 2)

	var expected money.Cents
	for _, l := range view.Lines {
		assert.Equal(t, l.ItemPrice.Mul(l.Quantity), l.Subtotal)
		expected += l.Subtotal
	}
	assert.Equal(t, expected, view.TotalPrice)
	assert.Equal(t, money.Cents(2550), view.TotalPrice)
	assert.Equal(t, 3, view.TotalItems)

	byName := map[string]CartLineView{}
	for _, l := range view.Lines {
		byName[l.ItemName] = l
	}
	assert.Equal(t, "grill", byName["Burger"].VendorName)
	assert.Equal(t, "juice", byName["Lemonade"].VendorName)
}

func TestViewEmptyCart(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	customer := createCustomer(t, db, "alice")

	view, err := svc.View(customer.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Equal(t, money.Cents(0), view.TotalPrice)
	assert.Equal(t, 0, view.TotalItems)
}
