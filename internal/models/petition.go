package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Petition statuses.
const (
	PetitionActive = "Active"
)

// Petition categories offered on the creation form.
var PetitionCategories = []string{"Infrastructure", "Academics", "Policy", "Events"}

// Petition tracks a goal-bounded signature drive. Invariant:
// CurrentSupporters == len(Supporters) at all times, and a user id appears
// in Supporters at most once. Both are enforced by the signing transaction
// in storage, not by this struct.
type Petition struct {
	ID                string         `gorm:"primaryKey" json:"id"`
	AuthorID          string         `gorm:"not null;index" json:"author_id"`
	AuthorName        string         `gorm:"not null" json:"author_name"`
	Title             string         `gorm:"not null" json:"title"`
	Category          string         `gorm:"not null" json:"category"`
	Description       string         `gorm:"type:text;not null" json:"description"`
	Target            int            `gorm:"not null" json:"target"`
	CurrentSupporters int            `gorm:"not null;default:0" json:"current_supporters"`
	Supporters        pq.StringArray `gorm:"type:text[]" json:"supporters"`
	Status            string         `gorm:"not null;default:'Active'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Petition) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

// PetitionStats is a read-side aggregation over the full petition set; no
// separate counters are persisted for it.
type PetitionStats struct {
	Active          int64 `json:"active"`
	Successful      int64 `json:"successful"`
	TotalSupporters int64 `json:"total_supporters"`
}
