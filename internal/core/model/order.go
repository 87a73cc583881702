package model

import (
	"time"

	"delights/internal/core/util"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

// Field caps applied before persistence.
const (
	MaxCustomerName    = 120
	MaxCustomerPhone   = 60
	MaxCustomerAddress = 200
	MaxItemID          = 80
	MaxItemName        = 120
)

// OrderItem is a snapshot of a menu item at order time. Later menu edits
// never alter historical orders.
type OrderItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Order struct {
	ID        string      `json:"id"`
	CreatedAt time.Time   `json:"createdAt"`
	Status    string      `json:"status"`
	Customer  Customer    `json:"customer"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
}

// NewOrder stamps id, creation time and the pending status. The total is
// computed once here and stored, never recomputed on read.
func NewOrder(customer Customer, items []OrderItem) *Order {
	var total float64
	for _, it := range items {
		total += float64(it.Qty) * it.Price
	}
	return &Order{
		ID:        util.GenerateID("ord"),
		CreatedAt: time.Now().UTC(),
		Status:    OrderStatusPending,
		Customer:  customer,
		Items:     items,
		Total:     total,
	}
}

// ValidOrderStatus reports whether s is one of the admin-settable statuses.
func ValidOrderStatus(s string) bool {
	return s == OrderStatusPending || s == OrderStatusCompleted
}
