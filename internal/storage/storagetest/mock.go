// Package storagetest provides a testify mock of the storage.Storage
// interface for unit tests across the service packages.
package storagetest

import (
	"context"

	"voicebox/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a mock implementation of storage.Storage.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) CreateUser(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *MockStorage) GetUserByID(id string) (*models.User, error) {
	args := m.Called(id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockStorage) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockStorage) ListUsersByRole(role string) ([]models.User, error) {
	args := m.Called(role)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *MockStorage) SetUserApproval(id string, approved bool) error {
	return m.Called(id, approved).Error(0)
}

func (m *MockStorage) RevokeUser(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockStorage) ClearRevocation(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockStorage) IsUserRevoked(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) CreateComplaint(complaint *models.Complaint) error {
	return m.Called(complaint).Error(0)
}

func (m *MockStorage) GetComplaintByID(id string) (*models.Complaint, error) {
	args := m.Called(id)
	complaint, _ := args.Get(0).(*models.Complaint)
	return complaint, args.Error(1)
}

func (m *MockStorage) ListComplaintsByAuthor(authorID string) ([]models.Complaint, error) {
	args := m.Called(authorID)
	complaints, _ := args.Get(0).([]models.Complaint)
	return complaints, args.Error(1)
}

func (m *MockStorage) ListComplaints(status string) ([]models.Complaint, error) {
	args := m.Called(status)
	complaints, _ := args.Get(0).([]models.Complaint)
	return complaints, args.Error(1)
}

func (m *MockStorage) UpdateComplaintStatus(id, status string) error {
	return m.Called(id, status).Error(0)
}

func (m *MockStorage) ComplaintStats() (models.ComplaintStats, error) {
	args := m.Called()
	stats, _ := args.Get(0).(models.ComplaintStats)
	return stats, args.Error(1)
}

func (m *MockStorage) CreateComment(comment *models.Comment) error {
	return m.Called(comment).Error(0)
}

func (m *MockStorage) GetThread(complaintID string) ([]models.Comment, error) {
	args := m.Called(complaintID)
	thread, _ := args.Get(0).([]models.Comment)
	return thread, args.Error(1)
}

func (m *MockStorage) CreatePetition(petition *models.Petition) error {
	return m.Called(petition).Error(0)
}

func (m *MockStorage) GetPetitionByID(id string) (*models.Petition, error) {
	args := m.Called(id)
	petition, _ := args.Get(0).(*models.Petition)
	return petition, args.Error(1)
}

func (m *MockStorage) ListPetitions() ([]models.Petition, error) {
	args := m.Called()
	petitions, _ := args.Get(0).([]models.Petition)
	return petitions, args.Error(1)
}

func (m *MockStorage) SignPetition(petitionID, userID string) (bool, error) {
	args := m.Called(petitionID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) PetitionStats() (models.PetitionStats, error) {
	args := m.Called()
	stats, _ := args.Get(0).(models.PetitionStats)
	return stats, args.Error(1)
}

func (m *MockStorage) CreateAnnouncement(announcement *models.Announcement) error {
	return m.Called(announcement).Error(0)
}

func (m *MockStorage) ListAnnouncements(limit int) ([]models.Announcement, error) {
	args := m.Called(limit)
	announcements, _ := args.Get(0).([]models.Announcement)
	return announcements, args.Error(1)
}

func (m *MockStorage) DeleteAnnouncement(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockStorage) CreateContactMessage(msg *models.ContactMessage) error {
	return m.Called(msg).Error(0)
}

func (m *MockStorage) ListContactMessages() ([]models.ContactMessage, error) {
	args := m.Called()
	messages, _ := args.Get(0).([]models.ContactMessage)
	return messages, args.Error(1)
}

func (m *MockStorage) MarkContactMessageRead(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockStorage) PublishThreadEvent(ev models.ThreadEvent) error {
	return m.Called(ev).Error(0)
}

func (m *MockStorage) SubscribeThreadEvents(ctx context.Context) (<-chan models.ThreadEvent, error) {
	args := m.Called(ctx)
	ch, _ := args.Get(0).(<-chan models.ThreadEvent)
	return ch, args.Error(1)
}
