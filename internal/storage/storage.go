package storage

import (
	"context"

	"voicebox/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Storage is the persistence surface the services are written against.
// The production implementation is Service (PostgreSQL via GORM plus Redis
// for the event bus and token revocation); tests mock it.
type Storage interface {
	CreateUser(user *models.User) error
	GetUserByID(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	ListUsersByRole(role string) ([]models.User, error)
	SetUserApproval(id string, approved bool) error

	RevokeUser(id string) error
	ClearRevocation(id string) error
	IsUserRevoked(id string) (bool, error)

	CreateComplaint(complaint *models.Complaint) error
	GetComplaintByID(id string) (*models.Complaint, error)
	ListComplaintsByAuthor(authorID string) ([]models.Complaint, error)
	ListComplaints(status string) ([]models.Complaint, error)
	UpdateComplaintStatus(id, status string) error
	ComplaintStats() (models.ComplaintStats, error)

	CreateComment(comment *models.Comment) error
	GetThread(complaintID string) ([]models.Comment, error)

	CreatePetition(petition *models.Petition) error
	GetPetitionByID(id string) (*models.Petition, error)
	ListPetitions() ([]models.Petition, error)
	SignPetition(petitionID, userID string) (bool, error)
	PetitionStats() (models.PetitionStats, error)

	CreateAnnouncement(announcement *models.Announcement) error
	ListAnnouncements(limit int) ([]models.Announcement, error)
	DeleteAnnouncement(id string) error

	CreateContactMessage(msg *models.ContactMessage) error
	ListContactMessages() ([]models.ContactMessage, error)
	MarkContactMessageRead(id string) error

	PublishThreadEvent(ev models.ThreadEvent) error
	SubscribeThreadEvents(ctx context.Context) (<-chan models.ThreadEvent, error)
}

// Service is the PostgreSQL + Redis implementation of Storage.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}
