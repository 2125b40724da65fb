package handler

import (
	"net/http"

	"voicebox/backend/internal/models"
	"voicebox/backend/internal/threadhub"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten in production behind the
	// real frontend host.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeThreadSocket upgrades the connection into a live subscription on
// one complaint's thread. Runs behind RequireAuth; the peer receives the
// current snapshot immediately and a refreshed one after every change,
// until it disconnects.
func (h *Handler) ServeThreadSocket(c *gin.Context) {
	complaintID := c.Param("id")
	if _, err := h.Complaints.Storage.GetComplaintByID(complaintID); err != nil {
		abortWithError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to upgrade connection"})
		return
	}

	client := &threadhub.WebSocketClient{
		ID:          uuid.New().String(),
		ComplaintID: complaintID,
		Conn:        conn,
		Hub:         h.Hub,
		Send:        make(chan models.ThreadUpdate, 16),
	}

	// Register before the pumps start: a peer that disconnects right away
	// will then always unregister a client the hub actually holds.
	h.Hub.RegisterCh <- client
	client.Run()
}
