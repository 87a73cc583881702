package repository

import (
	"path/filepath"
	"sync"

	"delights/internal/core/model"
)

type fileOrderRepository struct {
	path  string
	mutex sync.RWMutex
}

func NewFileOrderRepository(dataDir string) OrderRepository {
	return &fileOrderRepository{
		path: filepath.Join(dataDir, "orders.json"),
	}
}

func (r *fileOrderRepository) Create(order *model.Order) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	orders := loadCollection[model.Order](r.path)
	orders = append(orders, *order)
	return saveCollection(r.path, orders)
}

func (r *fileOrderRepository) Update(order *model.Order) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	orders := loadCollection[model.Order](r.path)
	for i := range orders {
		if orders[i].ID == order.ID {
			orders[i] = *order
			return saveCollection(r.path, orders)
		}
	}
	return ErrNotFound
}

func (r *fileOrderRepository) Delete(id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	orders := loadCollection[model.Order](r.path)
	next := orders[:0:0]
	for _, o := range orders {
		if o.ID != id {
			next = append(next, o)
		}
	}
	if len(next) == len(orders) {
		return ErrNotFound
	}
	return saveCollection(r.path, next)
}

func (r *fileOrderRepository) FindByID(id string) (*model.Order, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, o := range loadCollection[model.Order](r.path) {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fileOrderRepository) FindAll() ([]*model.Order, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	// Stored oldest first (append order), returned newest first.
	stored := loadCollection[model.Order](r.path)
	orders := make([]*model.Order, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		orders = append(orders, &stored[i])
	}
	return orders, nil
}
