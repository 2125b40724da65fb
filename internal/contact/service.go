// Package contact stores messages from the public contact form.
package contact

import (
	"errors"
	"fmt"
	"strings"

	"voicebox/backend/internal/models"
	"voicebox/backend/internal/storage"
)

var ErrInvalidMessage = errors.New("invalid contact message")

type Service struct {
	Storage storage.Storage
}

func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// Create stores a contact message with status "unread".
func (s *Service) Create(firstName, lastName, email, message string) (*models.ContactMessage, error) {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: first name, email and message are required", ErrInvalidMessage)
	}

	msg := &models.ContactMessage{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     strings.TrimSpace(email),
		Message:   strings.TrimSpace(message),
		Status:    models.ContactUnread,
	}
	if err := s.Storage.CreateContactMessage(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *Service) List() ([]models.ContactMessage, error) {
	return s.Storage.ListContactMessages()
}

func (s *Service) MarkRead(id string) error {
	return s.Storage.MarkContactMessageRead(id)
}
