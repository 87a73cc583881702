package service

import (
	"errors"
	"testing"

	"delights/internal/core/model"
	"delights/internal/core/repository"
)

func newTestMenuService(t *testing.T) MenuService {
	t.Helper()
	return NewMenuService(repository.NewFileMenuRepository(t.TempDir()))
}

func TestCreateItemAppliesDefaultsAndNormalization(t *testing.T) {
	svc := newTestMenuService(t)

	item, err := svc.CreateItem("Knefeh", "Cheese pastry", 7.5, "", " Sweets ")
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.Category != model.CategorySweets {
		t.Errorf("category = %q, want sweets", item.Category)
	}
	if item.Image != model.DefaultMenuImage {
		t.Errorf("image = %q, want default placeholder", item.Image)
	}

	other, err := svc.CreateItem("Mystery Dish", "", 4, "", "mystery")
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if other.Category != model.CategoryDailyPlatters {
		t.Errorf("unrecognized category = %q, want daily-platters", other.Category)
	}

	items, err := svc.ListItems()
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("ListItems returned %d items, want 2", len(items))
	}
	for _, it := range items {
		if it.Category != model.CategorySweets && it.Category != model.CategoryDailyPlatters {
			t.Errorf("non-canonical category on output: %q", it.Category)
		}
	}
}

func TestCreateItemValidation(t *testing.T) {
	svc := newTestMenuService(t)

	var ve *ValidationError
	if _, err := svc.CreateItem("  ", "", 5, "", ""); !errors.As(err, &ve) {
		t.Errorf("blank name: got %v, want ValidationError", err)
	}
	if _, err := svc.CreateItem("Cake", "", -1, "", ""); !errors.As(err, &ve) {
		t.Errorf("negative price: got %v, want ValidationError", err)
	}
}

func TestUpdateItemKeepsOmittedFields(t *testing.T) {
	svc := newTestMenuService(t)
	item, err := svc.CreateItem("Knefeh", "Cheese pastry", 7.5, "assets/images/knefeh.jpg", "sweets")
	if err != nil {
		t.Fatal(err)
	}

	// Only name and price supplied; everything else keeps prior values.
	updated, err := svc.UpdateItem(item.ID, MenuItemUpdate{Name: "Knefeh Deluxe", Price: 9})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if updated.Name != "Knefeh Deluxe" || updated.Price != 9 {
		t.Errorf("required fields not applied: %+v", updated)
	}
	if updated.Description != "Cheese pastry" || updated.Image != "assets/images/knefeh.jpg" || updated.Category != "sweets" {
		t.Errorf("omitted fields not kept: %+v", updated)
	}

	category := "SWEETS"
	description := ""
	updated, err = svc.UpdateItem(item.ID, MenuItemUpdate{
		Name:        "Knefeh Deluxe",
		Price:       9,
		Description: &description,
		Category:    &category,
	})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if updated.Description != "" {
		t.Errorf("explicit empty description not applied: %q", updated.Description)
	}
	if updated.Category != model.CategorySweets {
		t.Errorf("category not normalized on update: %q", updated.Category)
	}
}

func TestUpdateAndDeleteNotFound(t *testing.T) {
	svc := newTestMenuService(t)

	if _, err := svc.UpdateItem("item_missing", MenuItemUpdate{Name: "x", Price: 1}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("UpdateItem missing: got %v, want ErrNotFound", err)
	}
	if err := svc.DeleteItem("item_missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("DeleteItem missing: got %v, want ErrNotFound", err)
	}
}

func TestDeleteItemRemovesExactlyOne(t *testing.T) {
	svc := newTestMenuService(t)
	keep, err := svc.CreateItem("Keep", "", 1, "", "")
	if err != nil {
		t.Fatal(err)
	}
	drop, err := svc.CreateItem("Drop", "", 2, "", "")
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteItem(drop.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	items, _ := svc.ListItems()
	if len(items) != 1 || items[0].ID != keep.ID {
		t.Errorf("delete removed the wrong record: %+v", items)
	}
	if err := svc.DeleteItem(drop.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}
