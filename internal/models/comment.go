package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment roles. The role is derived from the parent complaint when the
// comment is posted: the complaint's author comments as a student, anyone
// else is staff.
const (
	CommentRoleStudent = "Student"
	CommentRoleAdmin   = "Admin"
)

// Comment is one message in a complaint's discussion thread. Threads are
// append-only: no edit or delete exists. AuthorName is resolved at write
// time from the anonymity flag of the parent complaint, so an anonymous
// filer is labelled "Anonymous Student" to every reader, admins included.
type Comment struct {
	ID          string `gorm:"primaryKey" json:"id"`
	ComplaintID string `gorm:"type:uuid;not null;index:idx_thread_created" json:"complaint_id"`
	AuthorID    string `gorm:"not null" json:"author_id"`
	AuthorName  string `gorm:"not null" json:"author_name"`
	Role        string `gorm:"size:20;not null" json:"role"`
	Text        string `gorm:"type:text;not null" json:"text"`

	CreatedAt time.Time `gorm:"index:idx_thread_created" json:"created_at"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
