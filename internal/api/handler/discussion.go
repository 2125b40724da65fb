package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PostComment appends a comment to a complaint's thread. Role and display
// label are resolved server-side from the parent complaint.
func (h *Handler) PostComment(c *gin.Context) {
	var in struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	comment, err := h.Discussion.Post(c.Param("id"), currentUser(c), in.Text)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// GetThread returns the full thread ordered oldest first. One-shot read;
// live views use the WebSocket subscription instead.
func (h *Handler) GetThread(c *gin.Context) {
	thread, err := h.Discussion.History(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": thread})
}
