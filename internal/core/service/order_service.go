package service

import (
	"strings"

	"delights/internal/core/model"
	"delights/internal/core/repository"
	"delights/internal/core/util"
)

type OrderService interface {
	PlaceOrder(customer model.Customer, items []model.OrderItem) (*model.Order, error)
	ListOrders() ([]*model.Order, error)
	SetStatus(id, status string) (*model.Order, error)
	DeleteOrder(id string) error
}

type orderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{
		orderRepo: orderRepo,
	}
}

// PlaceOrder validates the checkout payload and persists the order. Items
// are snapshots taken at order time; zero and negative quantities are
// dropped before the total is computed.
func (s *orderService) PlaceOrder(customer model.Customer, items []model.OrderItem) (*model.Order, error) {
	kept := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		if item.Qty <= 0 {
			continue
		}
		item.ID = util.Truncate(item.ID, model.MaxItemID)
		item.Name = util.Truncate(item.Name, model.MaxItemName)
		kept = append(kept, item)
	}
	if len(kept) == 0 {
		return nil, invalidf("Cart is empty")
	}

	phone := util.NormalizePhone(customer.Phone)
	if phone == "" {
		return nil, invalidf("Phone number is required")
	}
	address := strings.TrimSpace(customer.Address)
	if address == "" {
		return nil, invalidf("Delivery address is required")
	}

	order := model.NewOrder(model.Customer{
		Name:    util.Truncate(strings.TrimSpace(customer.Name), model.MaxCustomerName),
		Phone:   util.Truncate(phone, model.MaxCustomerPhone),
		Address: util.Truncate(address, model.MaxCustomerAddress),
	}, kept)

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) ListOrders() ([]*model.Order, error) {
	return s.orderRepo.FindAll()
}

func (s *orderService) SetStatus(id, status string) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, invalidf("Status must be pending or completed")
	}

	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	order.Status = status
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) DeleteOrder(id string) error {
	return s.orderRepo.Delete(id)
}
