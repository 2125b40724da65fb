package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateContactMessage accepts a public contact form submission. No auth.
func (h *Handler) CreateContactMessage(c *gin.Context) {
	var in struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Message   string `json:"message"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	msg, err := h.Contact.Create(in.FirstName, in.LastName, in.Email, in.Message)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// ListContactMessages returns every contact message (admin only).
func (h *Handler) ListContactMessages(c *gin.Context) {
	messages, err := h.Contact.List()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// MarkContactRead flips a contact message to read (admin only).
func (h *Handler) MarkContactRead(c *gin.Context) {
	if err := h.Contact.MarkRead(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
