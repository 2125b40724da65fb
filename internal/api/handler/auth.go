package handler

import (
	"net/http"

	"voicebox/backend/internal/auth"
	"voicebox/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SignUp creates an account. Students receive a token immediately; admins
// get a pending notice and no token until approved.
func (h *Handler) SignUp(c *gin.Context) {
	var in auth.SignUpInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	user, err := h.Auth.SignUp(in)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if user.Role == models.RoleAdmin {
		c.JSON(http.StatusCreated, gin.H{
			"user":    user,
			"message": "account pending approval",
		})
		return
	}

	token, err := h.Auth.IssueToken(user)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

func (h *Handler) SignIn(c *gin.Context) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	user, token, err := h.Auth.SignIn(in.Email, in.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Me returns the authenticated user's own record.
func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": currentUser(c)})
}
