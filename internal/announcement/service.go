// Package announcement implements the admin broadcast board.
package announcement

import (
	"errors"
	"fmt"
	"strings"

	"voicebox/backend/internal/models"
	"voicebox/backend/internal/storage"
)

var ErrInvalidDraft = errors.New("invalid announcement")

// Service handles the announcement board: create, list, delete. There is
// no edit operation.
type Service struct {
	Storage storage.Storage
}

func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

func (s *Service) Post(title, message, priority, authorName string) (*models.Announcement, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: title and message are required", ErrInvalidDraft)
	}
	if priority != models.AnnouncementNormal && priority != models.AnnouncementHigh {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidDraft, priority)
	}
	if authorName == "" {
		authorName = "Admin"
	}

	announcement := &models.Announcement{
		Title:     strings.TrimSpace(title),
		Message:   strings.TrimSpace(message),
		Priority:  priority,
		CreatedBy: authorName,
	}
	if err := s.Storage.CreateAnnouncement(announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

// List returns announcements newest first; limit <= 0 returns all.
func (s *Service) List(limit int) ([]models.Announcement, error) {
	return s.Storage.ListAnnouncements(limit)
}

// Delete removes an announcement. storage.ErrNotFound when absent.
func (s *Service) Delete(id string) error {
	return s.Storage.DeleteAnnouncement(id)
}
