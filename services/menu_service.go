package services

import (
	"errors"
	"strings"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/money"
	"backend/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	DB        *gorm.DB
	Repo      *repository.MenuRepository
	OrderRepo *repository.OrderRepository // history guard on item delete
}

func NewMenuService(db *gorm.DB, repo *repository.MenuRepository, orderRepo *repository.OrderRepository) *MenuService {
	return &MenuService{DB: db, Repo: repo, OrderRepo: orderRepo}
}

type CategoryIn struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ItemIn struct {
	Name        string       `json:"name"`
	Price       *float64     `json:"price"`
	Description string       `json:"description"`
	Categories  []CategoryIn `json:"categories"`
}

type CreateMenuIn struct {
	Name  string   `json:"name"`
	Items []ItemIn `json:"items"`
}

func validateItems(items []ItemIn) error {
	for i, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			return apperr.Validation("item %d: name is required", i+1)
		}
		if it.Price == nil {
			return apperr.Validation("item %d: price is required", i+1)
		}
		if *it.Price < 0 {
			return apperr.Validation("item %d: price must not be negative", i+1)
		}
		for j, cat := range it.Categories {
			if strings.TrimSpace(cat.Name) == "" {
				return apperr.Validation("item %d: category %d: name is required", i+1, j+1)
			}
		}
	}
	return nil
}

// CreateMenu persists a menu with its items and categories, or nothing
// at all. Item vendor always equals the menu vendor by construction.
func (s *MenuService) CreateMenu(vendorID uint, in *CreateMenuIn) (*entity.Menu, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperr.Validation("menu name is required")
	}
	if len(in.Items) == 0 {
		return nil, apperr.Validation("menu needs at least one item")
	}
	if err := validateItems(in.Items); err != nil {
		return nil, err
	}

	var menu entity.Menu
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		menu = entity.Menu{VendorID: vendorID, Name: strings.TrimSpace(in.Name)}
		if err := s.Repo.CreateMenu(tx, &menu); err != nil {
			return err
		}
		return s.createItems(tx, &menu, in.Items)
	})
	if err != nil {
		return nil, apperr.TxFailed("could not create menu", err)
	}

	items, err := s.Repo.ItemsForMenu(menu.ID)
	if err != nil {
		return nil, err
	}
	menu.Items = items
	return &menu, nil
}

func (s *MenuService) createItems(tx *gorm.DB, menu *entity.Menu, items []ItemIn) error {
	for _, it := range items {
		item := entity.Item{
			VendorID:    menu.VendorID,
			MenuID:      menu.ID,
			Name:        strings.TrimSpace(it.Name),
			Price:       money.FromFloat(*it.Price),
			Description: strings.TrimSpace(it.Description),
		}
		for _, cat := range it.Categories {
			item.Categories = append(item.Categories, entity.Category{
				Name:        strings.TrimSpace(cat.Name),
				Description: strings.TrimSpace(cat.Description),
			})
		}
		if err := s.Repo.CreateItem(tx, &item); err != nil {
			return err
		}
	}
	return nil
}

type UpdateMenuIn struct {
	Name  string   `json:"name"`
	Items []ItemIn `json:"items"`
}

// UpdateMenu renames and/or appends items. A blank or unchanged name is
// a no-op; the rename only ever touches the name column, so the menu's
// creation date is left alone.
func (s *MenuService) UpdateMenu(vendorID, menuID uint, in *UpdateMenuIn) ([]entity.Item, error) {
	menu, err := s.Repo.FindMenuOwned(menuID, vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu %d not found", menuID)
		}
		return nil, err
	}

	if len(in.Items) > 0 {
		if err := validateItems(in.Items); err != nil {
			return nil, err
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if name := strings.TrimSpace(in.Name); name != "" && name != menu.Name {
			if err := s.Repo.RenameMenu(tx, menu.ID, name); err != nil {
				return err
			}
		}
		if len(in.Items) > 0 {
			return s.createItems(tx, menu, in.Items)
		}
		return nil
	})
	if err != nil {
		return nil, apperr.TxFailed("could not update menu", err)
	}

	return s.Repo.ItemsForMenu(menu.ID)
}

// DeleteMenu cascades to the menu's items and their categories.
func (s *MenuService) DeleteMenu(vendorID, menuID uint) error {
	menu, err := s.Repo.FindMenuOwned(menuID, vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("menu %d not found", menuID)
		}
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteMenuCascade(tx, menu.ID)
	})
	if err != nil {
		return apperr.TxFailed("could not delete menu", err)
	}
	return nil
}

// DeleteItem refuses while any order line references the item, so
// order history keeps resolving.
func (s *MenuService) DeleteItem(vendorID, itemID uint) error {
	item, err := s.Repo.FindItemOwned(itemID, vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("item %d not found", itemID)
		}
		return err
	}

	refs, err := s.OrderRepo.CountLinesForItem(item.ID)
	if err != nil {
		return err
	}
	if refs > 0 {
		return apperr.Conflict("item %d appears in %d order line(s) and cannot be deleted", item.ID, refs)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteItemCascade(tx, item.ID)
	})
	if err != nil {
		return apperr.TxFailed("could not delete item", err)
	}
	return nil
}

func (s *MenuService) ListMenus(vendorID uint) ([]entity.Menu, error) {
	return s.Repo.ListMenusForVendor(vendorID)
}
