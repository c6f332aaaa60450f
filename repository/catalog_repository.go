package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// ListVendors pages through the vendor directory. Unpaged "fetch all"
// browsing is the known gap flagged for the API layer; page/limit here
// keeps it bounded.
func (r *CatalogRepository) ListVendors(page, limit int) ([]entity.Vendor, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := r.DB.Model(&entity.Vendor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var vendors []entity.Vendor
	err := r.DB.Order("id ASC").Limit(limit).Offset((page - 1) * limit).Find(&vendors).Error
	return vendors, total, err
}

func (r *CatalogRepository) GetVendorWithMenus(vendorID uint) (*entity.Vendor, []entity.Menu, error) {
	var v entity.Vendor
	if err := r.DB.First(&v, vendorID).Error; err != nil {
		return nil, nil, err
	}
	var menus []entity.Menu
	err := r.DB.Where("vendor_id = ?", vendorID).
		Preload("Items").
		Preload("Items.Categories").
		Order("id ASC").
		Find(&menus).Error
	return &v, menus, err
}

func (r *CatalogRepository) GetItemDetail(itemID uint) (*entity.Item, error) {
	var i entity.Item
	err := r.DB.Preload("Categories").Preload("Vendor").First(&i, itemID).Error
	if err != nil {
		return nil, err
	}
	return &i, nil
}
