package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) CreateMenu(tx *gorm.DB, m *entity.Menu) error {
	return tx.Create(m).Error
}

func (r *MenuRepository) CreateItem(tx *gorm.DB, i *entity.Item) error {
	return tx.Create(i).Error
}

func (r *MenuRepository) FindMenuOwned(menuID, vendorID uint) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.Where("id = ? AND vendor_id = ?", menuID, vendorID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) ListMenusForVendor(vendorID uint) ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Where("vendor_id = ?", vendorID).
		Preload("Items").
		Preload("Items.Categories").
		Order("id ASC").
		Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) ItemsForMenu(menuID uint) ([]entity.Item, error) {
	var items []entity.Item
	err := r.DB.Where("menu_id = ?", menuID).
		Preload("Categories").
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// RenameMenu touches only the name column; CreatedAt stays the menu date.
func (r *MenuRepository) RenameMenu(tx *gorm.DB, menuID uint, name string) error {
	return tx.Model(&entity.Menu{}).Where("id = ?", menuID).Update("name", name).Error
}

func (r *MenuRepository) FindItem(itemID uint) (*entity.Item, error) {
	var i entity.Item
	if err := r.DB.First(&i, itemID).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *MenuRepository) FindItemOwned(itemID, vendorID uint) (*entity.Item, error) {
	var i entity.Item
	if err := r.DB.Where("id = ? AND vendor_id = ?", itemID, vendorID).First(&i).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

// DeleteMenuCascade removes the menu with its items, their categories
// and any cart lines still holding those items. Hard deletes: the
// catalog keeps no tombstones, and cart lines are working state, not
// protected history — only order lines block (on the item-delete path).
func (r *MenuRepository) DeleteMenuCascade(tx *gorm.DB, menuID uint) error {
	if err := tx.Unscoped().
		Where("item_id IN (?)", tx.Model(&entity.Item{}).Select("id").Where("menu_id = ?", menuID)).
		Delete(&entity.Category{}).Error; err != nil {
		return err
	}
	if err := tx.Unscoped().
		Where("item_id IN (?)", tx.Model(&entity.Item{}).Select("id").Where("menu_id = ?", menuID)).
		Delete(&entity.CartLine{}).Error; err != nil {
		return err
	}
	if err := tx.Unscoped().Where("menu_id = ?", menuID).Delete(&entity.Item{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&entity.Menu{}, menuID).Error
}

func (r *MenuRepository) DeleteItemCascade(tx *gorm.DB, itemID uint) error {
	if err := tx.Unscoped().Where("item_id = ?", itemID).Delete(&entity.Category{}).Error; err != nil {
		return err
	}
	if err := tx.Unscoped().Where("item_id = ?", itemID).Delete(&entity.CartLine{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&entity.Item{}, itemID).Error
}
