package service

import (
	"context"
	"strings"

	"delights/internal/cache"
	"delights/internal/core/model"
	"delights/internal/core/repository"
	"delights/internal/core/util"
)

// MenuItemUpdate carries a partial update. Name and Price must always be
// supplied; the pointer fields keep the stored value when nil.
type MenuItemUpdate struct {
	Name        string
	Price       float64
	Description *string
	Image       *string
	Category    *string
}

type MenuService interface {
	ListItems() ([]*model.MenuItem, error)
	CreateItem(name, description string, price float64, image, category string) (*model.MenuItem, error)
	UpdateItem(id string, upd MenuItemUpdate) (*model.MenuItem, error)
	DeleteItem(id string) error
}

type menuService struct {
	menuRepo repository.MenuRepository
}

func NewMenuService(menuRepo repository.MenuRepository) MenuService {
	return &menuService{
		menuRepo: menuRepo,
	}
}

func (s *menuService) ListItems() ([]*model.MenuItem, error) {
	ctx := context.Background()

	var cached []*model.MenuItem
	if err := cache.Get(ctx, cache.MenuKey, &cached); err == nil {
		return cached, nil
	}

	items, err := s.menuRepo.FindAll()
	if err != nil {
		return nil, err
	}

	// Category is always canonical on output, including legacy records
	// stored before the category field existed.
	for _, item := range items {
		item.Category = util.NormalizeCategory(item.Category)
	}

	_ = cache.Set(ctx, cache.MenuKey, items, cache.MenuTTL)
	return items, nil
}

func (s *menuService) CreateItem(name, description string, price float64, image, category string) (*model.MenuItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidf("Missing name or price")
	}
	if price < 0 {
		return nil, invalidf("Price must not be negative")
	}

	item := model.NewMenuItem(name, description, price, image, category)
	if err := s.menuRepo.Create(item); err != nil {
		return nil, err
	}
	s.invalidate()
	return item, nil
}

func (s *menuService) UpdateItem(id string, upd MenuItemUpdate) (*model.MenuItem, error) {
	upd.Name = strings.TrimSpace(upd.Name)
	if upd.Name == "" {
		return nil, invalidf("Missing name or price")
	}
	if upd.Price < 0 {
		return nil, invalidf("Price must not be negative")
	}

	item, err := s.menuRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	item.Name = upd.Name
	item.Price = upd.Price
	if upd.Description != nil {
		item.Description = *upd.Description
	}
	if upd.Image != nil && *upd.Image != "" {
		item.Image = *upd.Image
	}
	if upd.Category != nil {
		item.Category = util.NormalizeCategory(*upd.Category)
	}

	if err := s.menuRepo.Update(item); err != nil {
		return nil, err
	}
	s.invalidate()
	return item, nil
}

func (s *menuService) DeleteItem(id string) error {
	if err := s.menuRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *menuService) invalidate() {
	_ = cache.Delete(context.Background(), cache.MenuKey)
}
