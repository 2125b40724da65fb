package storage

import (
	"errors"
	"log"

	"voicebox/backend/internal/models"

	"github.com/redis/go-redis/v9"
)

// CreateUser stores a new account. ErrAlreadyExists when the email is taken.
func (s *Service) CreateUser(user *models.User) error {
	return wrap(s.DB.Create(user).Error)
}

func (s *Service) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "id = ?", id).Error; err != nil {
		return nil, wrap(err)
	}
	return &user, nil
}

func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "email = ?", email).Error; err != nil {
		return nil, wrap(err)
	}
	return &user, nil
}

// ListUsersByRole returns all accounts with the given role, newest first.
func (s *Service) ListUsersByRole(role string) ([]models.User, error) {
	var users []models.User
	if err := s.DB.Where("role = ?", role).Order("created_at desc").Find(&users).Error; err != nil {
		log.Printf("ERROR: Failed to list %s users: %v", role, err)
		return nil, wrap(err)
	}
	return users, nil
}

// SetUserApproval flips the approval flag. Used for admin approval and for
// banning/reactivating students.
func (s *Service) SetUserApproval(id string, approved bool) error {
	res := s.DB.Model(&models.User{}).Where("id = ?", id).Update("is_approved", approved)
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RevokeUser marks outstanding sessions for the user as dead. A banned
// user's token is rejected on the next request even though the JWT itself
// is still within its lifetime.
func (s *Service) RevokeUser(id string) error {
	return wrap(s.Redis.Set(s.Ctx, "revoked:"+id, "1", 0).Err())
}

func (s *Service) ClearRevocation(id string) error {
	return wrap(s.Redis.Del(s.Ctx, "revoked:"+id).Err())
}

func (s *Service) IsUserRevoked(id string) (bool, error) {
	_, err := s.Redis.Get(s.Ctx, "revoked:"+id).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, wrap(err)
	}
	return true, nil
}
