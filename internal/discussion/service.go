// Package discussion implements the live comment thread attached to each
// complaint.
package discussion

import (
	"errors"
	"log"
	"strings"

	"voicebox/backend/internal/models"
	"voicebox/backend/internal/storage"
	"voicebox/backend/internal/threadhub"
)

// ErrEmptyComment: the comment text is empty or whitespace-only.
var ErrEmptyComment = errors.New("empty comment")

// Service handles posting into and reading complaint threads. Live
// delivery goes through the hub.
type Service struct {
	Storage storage.Storage
	Hub     *threadhub.ManagerService
}

func NewService(s storage.Storage, hub *threadhub.ManagerService) *Service {
	return &Service{Storage: s, Hub: hub}
}

// Post appends a comment to a complaint's thread. Role and display label
// are resolved here, from the parent complaint, never from the comment:
// the complaint's author posts as a Student and, when the complaint is
// anonymous, is labelled "Anonymous Student" to every reader — the admin
// side included. Anyone else posts as Admin under their real name.
func (s *Service) Post(complaintID string, author *models.User, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyComment
	}

	complaint, err := s.Storage.GetComplaintByID(complaintID)
	if err != nil {
		return nil, err
	}

	role := models.CommentRoleAdmin
	authorName := author.FullName
	if author.ID == complaint.AuthorID {
		role = models.CommentRoleStudent
		if complaint.IsAnonymous {
			authorName = "Anonymous Student"
		}
	}

	comment := &models.Comment{
		ComplaintID: complaintID,
		AuthorID:    author.ID,
		AuthorName:  authorName,
		Role:        role,
		Text:        text,
	}
	if err := s.Storage.CreateComment(comment); err != nil {
		return nil, err
	}
	if err := s.Storage.PublishThreadEvent(models.ThreadEvent{ComplaintID: complaintID, Kind: "comment"}); err != nil {
		log.Printf("ERROR: Failed to publish comment event for complaint %s: %v", complaintID, err)
	}
	return comment, nil
}

// History returns the thread ordered by creation time ascending.
func (s *Service) History(complaintID string) ([]models.Comment, error) {
	return s.Storage.GetThread(complaintID)
}

// Subscribe establishes a live view of the thread. onUpdate fires with the
// full refreshed snapshot on every post or status change, the poster's own
// included. The returned cancel func must be called on view teardown.
func (s *Service) Subscribe(complaintID string, onUpdate func(models.ThreadUpdate)) (cancel func()) {
	return s.Hub.Subscribe(complaintID, onUpdate)
}
