package handler

import (
	"net/http"
	"strings"

	"voicebox/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// CurrentUserKey is the gin context key holding the authenticated user.
const CurrentUserKey = "currentUser"

// RequireAuth validates the bearer token and stashes the live user record
// in the request context.
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token missing"})
			return
		}
		user, err := h.Auth.Authenticate(token)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// RequireAdmin allows only approved admin accounts through. Must run after
// RequireAuth.
func (h *Handler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	val, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil
	}
	user, _ := val.(*models.User)
	return user
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return header[7:]
	}
	// WebSocket clients in browsers cannot set headers on the upgrade
	// request, so the token may ride in the query string instead.
	return c.Query("token")
}
