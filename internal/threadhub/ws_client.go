package threadhub

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"voicebox/backend/internal/models"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// WebSocketClient implements the threadhub.Client interface over one
// WebSocket connection. Comments are posted over the REST API; the socket
// only carries refreshed thread snapshots downstream.
type WebSocketClient struct {
	ID          string
	ComplaintID string
	Conn        *websocket.Conn
	Hub         *ManagerService
	Send        chan models.ThreadUpdate

	closeOnce sync.Once
}

func (c *WebSocketClient) GetID() string                              { return c.ID }
func (c *WebSocketClient) GetComplaintID() string                     { return c.ComplaintID }
func (c *WebSocketClient) GetSendChannel() chan<- models.ThreadUpdate { return c.Send }

// Run starts the pumps for this connection.
func (c *WebSocketClient) Run() {
	go c.writePump()
	go c.readPump()
}

// Close shuts the Send channel, which stops writePump.
func (c *WebSocketClient) Close() {
	c.closeOnce.Do(func() { close(c.Send) })
}

// readPump exists to notice the peer going away. Inbound frames carry no
// application data; anything unreadable tears the subscription down.
func (c *WebSocketClient) readPump() {
	defer func() {
		c.Hub.UnregisterCh <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error reading from thread subscriber %s: %v", c.ID, err)
			}
			break
		}
	}
}

// writePump drains Send into the socket and keeps the connection alive
// with pings.
func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case update, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel; say goodbye to the peer.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			data, err := json.Marshal(update)
			if err != nil {
				log.Printf("Error encoding thread update for subscriber %s: %v", c.ID, err)
				continue
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
