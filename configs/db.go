package configs

import (
	"backend/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source+"?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.Customer{}, &entity.Vendor{},
		&entity.Menu{}, &entity.Item{}, &entity.Category{},
		&entity.Cart{}, &entity.CartLine{},
		&entity.Order{}, &entity.OrderLine{},
	)
}
