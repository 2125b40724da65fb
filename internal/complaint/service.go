// Package complaint owns the complaint lifecycle: submission, the filer's
// and the admin's list views, and status overwrites.
package complaint

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"voicebox/backend/internal/models"
	"voicebox/backend/internal/storage"
)

var (
	// ErrInvalidDraft: a required field is missing or an enum value is
	// unknown. Raised before any store call.
	ErrInvalidDraft = errors.New("invalid complaint draft")
	// ErrInvalidStatus: the requested status is not one of the known values.
	ErrInvalidStatus = errors.New("invalid complaint status")
)

// Draft is the user-supplied part of a new complaint.
type Draft struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	IsAnonymous bool   `json:"is_anonymous"`
}

// ListFilter narrows the admin view. Search matches case-insensitively
// against title and id substrings; Status "" or "All" means every status.
type ListFilter struct {
	Search string
	Status string
}

// Service handles the business logic for complaints.
type Service struct {
	Storage storage.Storage
}

func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// Submit validates the draft and stores it with status Pending. The stored
// author name is "Anonymous" when the filer asked for anonymity, the real
// display name otherwise; that choice is made once, here, and every later
// read of the complaint or its thread honors it.
func (s *Service) Submit(draft Draft, author *models.User) (*models.Complaint, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	authorName := author.FullName
	if draft.IsAnonymous {
		authorName = "Anonymous"
	}

	complaint := &models.Complaint{
		AuthorID:    author.ID,
		AuthorName:  authorName,
		Title:       strings.TrimSpace(draft.Title),
		Category:    draft.Category,
		Description: strings.TrimSpace(draft.Description),
		Priority:    draft.Priority,
		IsAnonymous: draft.IsAnonymous,
		Status:      models.StatusPending,
		CollegeName: author.CollegeName,
	}
	if err := s.Storage.CreateComplaint(complaint); err != nil {
		return nil, err
	}
	log.Printf("INFO: Complaint %s submitted (%s/%s)", complaint.ID, complaint.Category, complaint.Priority)
	return complaint, nil
}

// ListFor returns the author's own complaints, newest first.
func (s *Service) ListFor(authorID string) ([]models.Complaint, error) {
	return s.Storage.ListComplaintsByAuthor(authorID)
}

// ListAll is the admin view over every complaint.
func (s *Service) ListAll(filter ListFilter) ([]models.Complaint, error) {
	status := filter.Status
	if status == "All" {
		status = ""
	}
	complaints, err := s.Storage.ListComplaints(status)
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	if search == "" {
		return complaints, nil
	}
	matched := complaints[:0]
	for _, c := range complaints {
		if strings.Contains(strings.ToLower(c.Title), search) ||
			strings.Contains(strings.ToLower(c.ID), search) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// SetStatus overwrites the complaint's status. Any status is reachable
// from any other; repeating the same status is a harmless no-op. A thread
// event is published so live detail views refresh without re-fetching.
func (s *Service) SetStatus(complaintID, newStatus string) error {
	if !contains(newStatus, models.StatusPending, models.StatusInProgress, models.StatusResolved) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}
	if err := s.Storage.UpdateComplaintStatus(complaintID, newStatus); err != nil {
		return err
	}
	if err := s.Storage.PublishThreadEvent(models.ThreadEvent{ComplaintID: complaintID, Kind: "status"}); err != nil {
		// The write landed; a missed event only delays live views.
		log.Printf("ERROR: Failed to publish status event for complaint %s: %v", complaintID, err)
	}
	return nil
}

// Stats returns complaint counts by status for dashboards.
func (s *Service) Stats() (models.ComplaintStats, error) {
	return s.Storage.ComplaintStats()
}

func validateDraft(draft Draft) error {
	if strings.TrimSpace(draft.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidDraft)
	}
	if strings.TrimSpace(draft.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidDraft)
	}
	if !contains(draft.Category, models.ComplaintCategories...) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidDraft, draft.Category)
	}
	if !contains(draft.Priority, models.ComplaintPriorities...) {
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidDraft, draft.Priority)
	}
	return nil
}

func contains(value string, set ...string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}
