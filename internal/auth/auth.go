// Package auth implements accounts and sessions: signup with the
// student/admin role gate, signin, token issue and verification, and the
// ban/reactivate flow.
package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"voicebox/backend/internal/config"
	"voicebox/backend/internal/models"
	"voicebox/backend/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials: unknown email or wrong password. The two are
	// deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountPending: the account exists but is not approved — an admin
	// awaiting approval, or a banned student.
	ErrAccountPending = errors.New("account pending approval")
	// ErrBadAccessKey: admin signup attempted without the staff access key.
	ErrBadAccessKey = errors.New("invalid admin access key")
	// ErrInvalidSignup: malformed signup input.
	ErrInvalidSignup = errors.New("invalid signup")
)

// Service handles accounts and sessions.
type Service struct {
	Storage storage.Storage
	// Secret signs session tokens.
	Secret []byte
	// AdminAccessKey gates admin signup. Checked server-side; the key never
	// leaves configuration.
	AdminAccessKey string
}

func NewService(s storage.Storage, cfg config.Config) *Service {
	return &Service{
		Storage:        s,
		Secret:         []byte(cfg.JWTSecret),
		AdminAccessKey: cfg.AdminAccessKey,
	}
}

// SignUpInput is the signup form payload.
type SignUpInput struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Role           string `json:"role"`
	RollNumber     string `json:"roll_number"`
	CollegeName    string `json:"college_name"`
	AdminAccessKey string `json:"admin_access_key"`
}

// SignUp creates an account. Students come out approved and usable
// immediately. Admin signup requires the configured access key and still
// lands unapproved; an operator must approve it via cmd/admin before any
// admin-gated call accepts the account.
func (s *Service) SignUp(in SignUpInput) (*models.User, error) {
	if strings.TrimSpace(in.FullName) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrInvalidSignup)
	}
	if len(in.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidSignup)
	}
	if in.Role != models.RoleStudent && in.Role != models.RoleAdmin {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidSignup, in.Role)
	}
	if in.Role == models.RoleAdmin && in.AdminAccessKey != s.AdminAccessKey {
		return nil, ErrBadAccessKey
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName:     strings.TrimSpace(in.FullName),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		Role:         in.Role,
		RollNumber:   in.RollNumber,
		CollegeName:  in.CollegeName,
		IsApproved:   in.Role == models.RoleStudent,
	}
	if err := s.Storage.CreateUser(user); err != nil {
		return nil, err
	}
	log.Printf("INFO: New %s account %s created (approved=%v)", user.Role, user.ID, user.IsApproved)
	return user, nil
}

// SignIn verifies credentials and issues a session token. Unapproved
// accounts (pending admins, banned students) are rejected with
// ErrAccountPending after the password check.
func (s *Service) SignIn(email, password string) (*models.User, string, error) {
	user, err := s.Storage.GetUserByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !user.IsApproved {
		return nil, "", ErrAccountPending
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// BanStudent locks the account and kills outstanding sessions.
func (s *Service) BanStudent(userID string) error {
	if err := s.Storage.SetUserApproval(userID, false); err != nil {
		return err
	}
	if err := s.Storage.RevokeUser(userID); err != nil {
		log.Printf("ERROR: Failed to revoke sessions for banned user %s: %v", userID, err)
	}
	return nil
}

// ReactivateStudent lifts a ban.
func (s *Service) ReactivateStudent(userID string) error {
	if err := s.Storage.SetUserApproval(userID, true); err != nil {
		return err
	}
	return s.Storage.ClearRevocation(userID)
}
