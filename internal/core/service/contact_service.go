package service

import (
	"strings"

	"delights/internal/core/model"
	"delights/internal/core/repository"
	"delights/internal/core/util"
)

type ContactService interface {
	Submit(name, email, message string) (*model.ContactMessage, error)
	ListMessages() ([]*model.ContactMessage, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
}

func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactService{
		contactRepo: contactRepo,
	}
}

func (s *contactService) Submit(name, email, message string) (*model.ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)
	if name == "" || email == "" || message == "" {
		return nil, invalidf("Name, email, and message are required")
	}

	msg := model.NewContactMessage(
		util.Truncate(name, model.MaxContactName),
		util.Truncate(email, model.MaxContactEmail),
		util.Truncate(message, model.MaxContactMessage),
	)
	if err := s.contactRepo.Create(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *contactService) ListMessages() ([]*model.ContactMessage, error) {
	return s.contactRepo.FindAll()
}
