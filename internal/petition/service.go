// Package petition implements the signature ledger: goal-bounded drives
// with idempotent per-user signing.
package petition

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"voicebox/backend/internal/config"
	"voicebox/backend/internal/models"
	"voicebox/backend/internal/storage"
)

var (
	// ErrInvalidDraft: missing title/description or unknown category.
	ErrInvalidDraft = errors.New("invalid petition draft")
	// ErrGoalTooLow: the signature goal is below the minimum floor.
	ErrGoalTooLow = fmt.Errorf("signature goal below minimum of %d", config.MinPetitionTarget)
)

// Draft is the user-supplied part of a new petition.
type Draft struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Target      int    `json:"target"`
}

// Service handles the business logic for petitions.
type Service struct {
	Storage storage.Storage
}

func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// Create validates the draft and stores it as an Active petition with zero
// supporters.
func (s *Service) Create(draft Draft, author *models.User) (*models.Petition, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidDraft)
	}
	if strings.TrimSpace(draft.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidDraft)
	}
	if !validCategory(draft.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidDraft, draft.Category)
	}
	if draft.Target < config.MinPetitionTarget {
		return nil, ErrGoalTooLow
	}

	petition := &models.Petition{
		AuthorID:          author.ID,
		AuthorName:        author.FullName,
		Title:             strings.TrimSpace(draft.Title),
		Category:          draft.Category,
		Description:       strings.TrimSpace(draft.Description),
		Target:            draft.Target,
		CurrentSupporters: 0,
		Supporters:        []string{},
		Status:            models.PetitionActive,
	}
	if err := s.Storage.CreatePetition(petition); err != nil {
		return nil, err
	}
	log.Printf("INFO: Petition %s created with goal %d", petition.ID, petition.Target)
	return petition, nil
}

// Get returns one petition. storage.ErrNotFound when absent.
func (s *Service) Get(id string) (*models.Petition, error) {
	return s.Storage.GetPetitionByID(id)
}

// Sign records the user's signature. Already-signed is not an error: the
// call is a no-op and accepted comes back false. The storage layer
// serializes the membership re-check, so concurrent duplicate calls count
// at most once and distinct signers never lose updates.
func (s *Service) Sign(petitionID, userID string) (accepted bool, err error) {
	return s.Storage.SignPetition(petitionID, userID)
}

// List returns petitions newest first, optionally narrowed by a
// case-insensitive title search.
func (s *Service) List(search string) ([]models.Petition, error) {
	petitions, err := s.Storage.ListPetitions()
	if err != nil {
		return nil, err
	}
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return petitions, nil
	}
	matched := petitions[:0]
	for _, p := range petitions {
		if strings.Contains(strings.ToLower(p.Title), search) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Stats aggregates active/successful counts and the total supporter count
// across every petition. Pure read-side computation.
func (s *Service) Stats() (models.PetitionStats, error) {
	return s.Storage.PetitionStats()
}

// ProgressPercent returns how far along the petition is, capped at 100
// even when supporters overshoot the goal.
func ProgressPercent(p *models.Petition) float64 {
	if p.Target <= 0 {
		return 0
	}
	percent := float64(p.CurrentSupporters) / float64(p.Target) * 100
	if percent > 100 {
		return 100
	}
	return percent
}

// IsTrending reports whether the petition crossed the fixed trending
// threshold.
func IsTrending(p *models.Petition) bool {
	return p.CurrentSupporters > config.TrendingThreshold
}

// IsSuccessful reports whether the petition reached its goal.
func IsSuccessful(p *models.Petition) bool {
	return p.CurrentSupporters >= p.Target
}

func validCategory(category string) bool {
	for _, c := range models.PetitionCategories {
		if c == category {
			return true
		}
	}
	return false
}
