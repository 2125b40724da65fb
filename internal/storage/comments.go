package storage

import (
	"errors"
	"log"

	"voicebox/backend/internal/models"

	"gorm.io/gorm"
)

func (s *Service) CreateComment(comment *models.Comment) error {
	if err := s.DB.Create(comment).Error; err != nil {
		log.Printf("ERROR: Failed to save comment for complaint %s: %v", comment.ComplaintID, err)
		return wrap(err)
	}
	return nil
}

// GetThread returns the full discussion thread for a complaint, ordered by
// creation time ascending. An unknown complaint yields an empty thread, not
// an error; existence is the caller's concern.
func (s *Service) GetThread(complaintID string) ([]models.Comment, error) {
	var thread []models.Comment
	err := s.DB.Where("complaint_id = ?", complaintID).
		Order("created_at asc").
		Find(&thread).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return thread, nil
		}
		log.Printf("ERROR: Failed to get thread for complaint %s: %v", complaintID, err)
		return nil, wrap(err)
	}
	return thread, nil
}
