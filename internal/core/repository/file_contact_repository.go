package repository

import (
	"path/filepath"
	"sync"

	"delights/internal/core/model"
)

type fileContactRepository struct {
	path  string
	mutex sync.RWMutex
}

func NewFileContactRepository(dataDir string) ContactRepository {
	return &fileContactRepository{
		path: filepath.Join(dataDir, "contact_messages.json"),
	}
}

func (r *fileContactRepository) Create(msg *model.ContactMessage) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	messages := loadCollection[model.ContactMessage](r.path)
	messages = append(messages, *msg)
	return saveCollection(r.path, messages)
}

func (r *fileContactRepository) FindAll() ([]*model.ContactMessage, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	stored := loadCollection[model.ContactMessage](r.path)
	messages := make([]*model.ContactMessage, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		messages = append(messages, &stored[i])
	}
	return messages, nil
}
