package configs

import (
	"log"

	"backend/entity"
	"backend/pkg/money"

	"golang.org/x/crypto/bcrypt"
)

// SeedDemo loads a small catalog for local development. Skips when any
// vendor already exists.
func SeedDemo() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Vendor{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("seed skipped: vendors already present")
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

	vendorUser := entity.User{Email: "kitchen@example.com", Password: string(hash), Role: "vendor"}
	if err := db.Create(&vendorUser).Error; err != nil {
		return err
	}
	vendor := entity.Vendor{
		UserID:       &vendorUser.ID,
		Name:         "Corner Kitchen",
		Location:     "12 Market St",
		WorkingHours: "09:00-21:00",
	}
	if err := db.Create(&vendor).Error; err != nil {
		return err
	}

	menu := entity.Menu{VendorID: vendor.ID, Name: "Lunch"}
	if err := db.Create(&menu).Error; err != nil {
		return err
	}
	items := []entity.Item{
		{VendorID: vendor.ID, MenuID: menu.ID, Name: "Falafel Wrap", Price: money.Cents(1000)},
		{VendorID: vendor.ID, MenuID: menu.ID, Name: "Lemonade", Price: money.Cents(550)},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	log.Println("seeded demo vendor:", vendor.Name)
	return nil
}
