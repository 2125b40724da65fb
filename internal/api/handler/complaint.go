package handler

import (
	"net/http"

	"voicebox/backend/internal/complaint"

	"github.com/gin-gonic/gin"
)

// SubmitComplaint files a new complaint for the authenticated student.
func (h *Handler) SubmitComplaint(c *gin.Context) {
	var draft complaint.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	filed, err := h.Complaints.Submit(draft, currentUser(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	h.Notifier.ComplaintFiled(filed)
	c.JSON(http.StatusCreated, gin.H{"complaint": filed})
}

// ListMyComplaints returns the caller's own complaints, newest first.
func (h *Handler) ListMyComplaints(c *gin.Context) {
	complaints, err := h.Complaints.ListFor(currentUser(c).ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaints": complaints})
}

// ListAllComplaints is the admin triage view. Supports ?search= and
// ?status= query filters.
func (h *Handler) ListAllComplaints(c *gin.Context) {
	complaints, err := h.Complaints.ListAll(complaint.ListFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaints": complaints})
}

// GetComplaint returns one complaint with its discussion thread.
func (h *Handler) GetComplaint(c *gin.Context) {
	id := c.Param("id")
	found, err := h.Complaints.Storage.GetComplaintByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	thread, err := h.Discussion.History(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaint": found, "comments": thread})
}

// SetComplaintStatus overwrites a complaint's status (admin only).
func (h *Handler) SetComplaintStatus(c *gin.Context) {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}
	if err := h.Complaints.SetStatus(c.Param("id"), in.Status); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": in.Status})
}

// ComplaintStats serves the dashboard counters.
func (h *Handler) ComplaintStats(c *gin.Context) {
	stats, err := h.Complaints.Stats()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
