package services

import (
	"fmt"
	"testing"

	"backend/entity"
	"backend/pkg/money"
	"backend/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a fresh connection would see a fresh empty :memory: database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Customer{}, &entity.Vendor{},
		&entity.Menu{}, &entity.Item{}, &entity.Category{},
		&entity.Cart{}, &entity.CartLine{},
		&entity.Order{}, &entity.OrderLine{},
	))
	return db
}

var seq int

func createCustomer(t *testing.T, db *gorm.DB, name string) entity.Customer {
	t.Helper()
	seq++
	c := entity.Customer{
		Name:  name,
		Email: fmt.Sprintf("%s%d@example.com", name, seq),
		Phone: "555-0100",
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func createVendor(t *testing.T, db *gorm.DB, name string) entity.Vendor {
	t.Helper()
	v := entity.Vendor{Name: name, Location: "somewhere"}
	require.NoError(t, db.Create(&v).Error)
	return v
}

func createMenuWithItem(t *testing.T, db *gorm.DB, vendor entity.Vendor, itemName string, price money.Cents) (entity.Menu, entity.Item) {
	t.Helper()
	m := entity.Menu{VendorID: vendor.ID, Name: vendor.Name + " menu"}
	require.NoError(t, db.Create(&m).Error)
	i := entity.Item{VendorID: vendor.ID, MenuID: m.ID, Name: itemName, Price: price}
	require.NoError(t, db.Create(&i).Error)
	return m, i
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newCheckoutService(db *gorm.DB) *CheckoutService {
	return NewCheckoutService(db, repository.NewCartRepository(db), repository.NewOrderRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(repository.NewOrderRepository(db), repository.NewUserRepository(db))
}

func newMenuService(db *gorm.DB) *MenuService {
	return NewMenuService(db, repository.NewMenuRepository(db), repository.NewOrderRepository(db))
}
