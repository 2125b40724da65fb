package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Announcement priorities.
const (
	AnnouncementNormal = "Normal"
	AnnouncementHigh   = "High"
)

// Announcement is an admin-authored broadcast message. Create and delete
// only; no edit operation exists.
type Announcement struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"not null" json:"title"`
	Message   string `gorm:"type:text;not null" json:"message"`
	Priority  string `gorm:"size:20;not null;default:'Normal'" json:"priority"`
	CreatedBy string `gorm:"not null" json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
}

func (a *Announcement) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}
