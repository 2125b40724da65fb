package handler

import (
	"net/http"

	"voicebox/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// ListStudents returns every student account for the admin user panel.
func (h *Handler) ListStudents(c *gin.Context) {
	students, err := h.Auth.Storage.ListUsersByRole(models.RoleStudent)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"students": students})
}

// BanStudent locks a student account and revokes its sessions.
func (h *Handler) BanStudent(c *gin.Context) {
	if err := h.Auth.BanStudent(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReactivateStudent lifts a ban.
func (h *Handler) ReactivateStudent(c *gin.Context) {
	if err := h.Auth.ReactivateStudent(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
