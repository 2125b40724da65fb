package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles assignable at signup. Admin accounts stay locked until an
// operator approves them out-of-band (see cmd/admin).
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User represents an account in the system. Students are approved on
// creation; admins start with IsApproved=false. A banned student has
// IsApproved flipped back to false.
type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	FullName     string `gorm:"not null" json:"full_name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"size:20;not null;default:'student'" json:"role"`
	RollNumber   string `json:"roll_number"` // students only
	CollegeName  string `json:"college_name"`
	IsApproved   bool   `json:"is_approved"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate is a GORM hook that assigns a UUID when the ID is not
// already set.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
