package services

import (
	"errors"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"gorm.io/gorm"
)

type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

type VendorListOut struct {
	Vendors []entity.Vendor `json:"vendors"`
	Total   int64           `json:"total"`
	Page    int             `json:"page"`
	Limit   int             `json:"limit"`
}

func (s *CatalogService) ListVendors(page, limit int) (*VendorListOut, error) {
	vendors, total, err := s.Repo.ListVendors(page, limit)
	if err != nil {
		return nil, err
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return &VendorListOut{Vendors: vendors, Total: total, Page: page, Limit: limit}, nil
}

type VendorDetailOut struct {
	Vendor entity.Vendor `json:"vendor"`
	Menus  []entity.Menu `json:"menus"`
}

func (s *CatalogService) VendorDetail(vendorID uint) (*VendorDetailOut, error) {
	vendor, menus, err := s.Repo.GetVendorWithMenus(vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("vendor %d not found", vendorID)
		}
		return nil, err
	}
	return &VendorDetailOut{Vendor: *vendor, Menus: menus}, nil
}

func (s *CatalogService) ItemDetail(itemID uint) (*entity.Item, error) {
	item, err := s.Repo.GetItemDetail(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("item %d not found", itemID)
		}
		return nil, err
	}
	return item, nil
}
