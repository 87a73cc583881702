package handler

import (
	"encoding/json"
	"net/http"

	"delights/internal/core/model"
	"delights/internal/core/service"
)

type MenuHandler struct {
	menuService service.MenuService
}

func NewMenuHandler(menuService service.MenuService) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
	}
}

// menuItemRequest covers both create and update. Price is a pointer so a
// missing or non-numeric price is distinguishable from zero.
type menuItemRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
}

func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.menuService.ListItems()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if items == nil {
		items = []*model.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Price == nil {
		writeError(w, http.StatusBadRequest, "Missing name or price")
		return
	}

	item, err := h.menuService.CreateItem(
		req.Name,
		stringValue(req.Description),
		*req.Price,
		stringValue(req.Image),
		stringValue(req.Category),
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Price == nil {
		writeError(w, http.StatusBadRequest, "Missing name or price")
		return
	}

	item, err := h.menuService.UpdateItem(r.PathValue("id"), service.MenuItemUpdate{
		Name:        req.Name,
		Price:       *req.Price,
		Description: req.Description,
		Image:       req.Image,
		Category:    req.Category,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.menuService.DeleteItem(r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
