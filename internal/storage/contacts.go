package storage

import (
	"log"

	"voicebox/backend/internal/models"
)

func (s *Service) CreateContactMessage(msg *models.ContactMessage) error {
	if msg.Status == "" {
		msg.Status = models.ContactUnread
	}
	if err := s.DB.Create(msg).Error; err != nil {
		log.Printf("ERROR: Failed to save contact message from %s: %v", msg.Email, err)
		return wrap(err)
	}
	return nil
}

func (s *Service) ListContactMessages() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := s.DB.Order("created_at desc").Find(&messages).Error; err != nil {
		return nil, wrap(err)
	}
	return messages, nil
}

func (s *Service) MarkContactMessageRead(id string) error {
	res := s.DB.Model(&models.ContactMessage{}).Where("id = ?", id).Update("status", models.ContactRead)
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
