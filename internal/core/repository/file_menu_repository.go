package repository

import (
	"path/filepath"
	"sync"

	"delights/internal/core/model"
)

// File-backed store: one JSON array file, loaded fully on each call and
// rewritten wholesale on each mutation. The mutex serializes writers per
// collection so near-simultaneous creates cannot lose records.
type fileMenuRepository struct {
	path  string
	mutex sync.RWMutex
}

func NewFileMenuRepository(dataDir string) MenuRepository {
	return &fileMenuRepository{
		path: filepath.Join(dataDir, "menu.json"),
	}
}

func (r *fileMenuRepository) Create(item *model.MenuItem) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	items := loadCollection[model.MenuItem](r.path)
	items = append(items, *item)
	return saveCollection(r.path, items)
}

func (r *fileMenuRepository) Update(item *model.MenuItem) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	items := loadCollection[model.MenuItem](r.path)
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = *item
			return saveCollection(r.path, items)
		}
	}
	return ErrNotFound
}

func (r *fileMenuRepository) Delete(id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	items := loadCollection[model.MenuItem](r.path)
	next := items[:0:0]
	for _, it := range items {
		if it.ID != id {
			next = append(next, it)
		}
	}
	if len(next) == len(items) {
		return ErrNotFound
	}
	return saveCollection(r.path, next)
}

func (r *fileMenuRepository) FindByID(id string) (*model.MenuItem, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, it := range loadCollection[model.MenuItem](r.path) {
		if it.ID == id {
			item := it
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fileMenuRepository) FindAll() ([]*model.MenuItem, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	stored := loadCollection[model.MenuItem](r.path)
	items := make([]*model.MenuItem, 0, len(stored))
	for i := range stored {
		items = append(items, &stored[i])
	}
	return items, nil
}
