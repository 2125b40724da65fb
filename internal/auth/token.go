package auth

import (
	"errors"
	"time"

	"voicebox/backend/internal/config"
	"voicebox/backend/internal/models"
	"voicebox/backend/internal/storage"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken: the token is malformed, expired, wrongly signed, or
// belongs to a revoked session.
var ErrInvalidToken = errors.New("invalid or expired token")

// IssueToken creates a signed session token for the user.
func (s *Service) IssueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"uid":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(config.TokenTTL).Unix(),
		"iss":  "voicebox-service",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

// Authenticate verifies a session token end to end: signature and expiry,
// the revocation list, and the account's current approval flag. It returns
// the live user record, so a ban or un-approval takes effect on the very
// next request rather than at token expiry.
func (s *Service) Authenticate(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return nil, ErrInvalidToken
	}

	revoked, err := s.Storage.IsUserRevoked(uid)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrInvalidToken
	}

	user, err := s.Storage.GetUserByID(uid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if !user.IsApproved {
		return nil, ErrAccountPending
	}
	return user, nil
}
