package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Complaint statuses. Transitions are unrestricted: admins may move a
// complaint between any two statuses, including reopening a resolved one.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
)

// Complaint categories offered on the submission form.
var ComplaintCategories = []string{"Academics", "Hostel", "Mess/Food", "Infrastructure", "Other"}

// Complaint priorities.
var ComplaintPriorities = []string{"Low", "Medium", "High"}

// Complaint is a grievance filed by a student. The record is owned by its
// author; only the Status field is ever mutated, and only by admins.
// AuthorName is fixed at submission time: "Anonymous" when the filer asked
// for anonymity, the real display name otherwise.
type Complaint struct {
	ID          string `gorm:"primaryKey" json:"id"`
	AuthorID    string `gorm:"not null;index" json:"author_id"`
	AuthorName  string `gorm:"not null" json:"author_name"`
	Title       string `gorm:"not null" json:"title"`
	Category    string `gorm:"not null" json:"category"`
	Description string `gorm:"type:text;not null" json:"description"`
	Priority    string `gorm:"not null" json:"priority"`
	IsAnonymous bool   `json:"is_anonymous"`
	Status      string `gorm:"not null;default:'Pending';index" json:"status"`
	CollegeName string `json:"college_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Complaint) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

// ComplaintStats is a read-side aggregation for dashboards.
type ComplaintStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
}
