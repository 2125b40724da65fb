package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact message statuses.
const (
	ContactUnread = "unread"
	ContactRead   = "read"
)

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	ID        string `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `gorm:"not null" json:"email"`
	Message   string `gorm:"type:text;not null" json:"message"`
	Status    string `gorm:"size:20;not null;default:'unread'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return
}
