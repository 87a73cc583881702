package service

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// TokenStore owns admin token validity. Two backings exist: an in-memory
// set whose tokens die with the process, and signed JWT assertions that
// survive restarts.
type TokenStore interface {
	Issue() (string, error)
	IsValid(token string) bool
	Revoke(token string)
}

type memoryTokenStore struct {
	tokens map[string]struct{}
	mutex  sync.RWMutex
}

func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{
		tokens: make(map[string]struct{}),
	}
}

func (s *memoryTokenStore) Issue() (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.tokens[token] = struct{}{}
	return token, nil
}

func (s *memoryTokenStore) IsValid(token string) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	_, ok := s.tokens[token]
	return ok
}

func (s *memoryTokenStore) Revoke(token string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.tokens, token)
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return "adm_" + hex.EncodeToString(bytes), nil
}
