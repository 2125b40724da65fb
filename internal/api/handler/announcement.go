package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PostAnnouncement publishes a broadcast message (admin only).
func (h *Handler) PostAnnouncement(c *gin.Context) {
	var in struct {
		Title    string `json:"title"`
		Message  string `json:"message"`
		Priority string `json:"priority"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	posted, err := h.Announcements.Post(in.Title, in.Message, in.Priority, currentUser(c).FullName)
	if err != nil {
		abortWithError(c, err)
		return
	}
	h.Notifier.AnnouncementPosted(posted)
	c.JSON(http.StatusCreated, gin.H{"announcement": posted})
}

// ListAnnouncements returns announcements newest first. ?limit= caps the
// result; student dashboards ask for 5.
func (h *Handler) ListAnnouncements(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	announcements, err := h.Announcements.List(limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"announcements": announcements})
}

// DeleteAnnouncement removes a broadcast (admin only).
func (h *Handler) DeleteAnnouncement(c *gin.Context) {
	if err := h.Announcements.Delete(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
