package storage

import (
	"log"

	"voicebox/backend/internal/models"
)

func (s *Service) CreateAnnouncement(announcement *models.Announcement) error {
	if err := s.DB.Create(announcement).Error; err != nil {
		log.Printf("ERROR: Failed to save announcement %q: %v", announcement.Title, err)
		return wrap(err)
	}
	return nil
}

// ListAnnouncements returns announcements newest first. limit <= 0 returns
// all of them.
func (s *Service) ListAnnouncements(limit int) ([]models.Announcement, error) {
	var announcements []models.Announcement
	q := s.DB.Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&announcements).Error; err != nil {
		log.Printf("ERROR: Failed to list announcements: %v", err)
		return nil, wrap(err)
	}
	return announcements, nil
}

func (s *Service) DeleteAnnouncement(id string) error {
	res := s.DB.Delete(&models.Announcement{}, "id = ?", id)
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
