package model

import (
	"time"

	"delights/internal/core/util"
)

const (
	MaxContactName    = 120
	MaxContactEmail   = 160
	MaxContactMessage = 2000
)

type ContactMessage struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
}

func NewContactMessage(name, email, message string) *ContactMessage {
	return &ContactMessage{
		ID:        util.GenerateID("msg"),
		CreatedAt: time.Now().UTC(),
		Name:      name,
		Email:     email,
		Message:   message,
	}
}
