package threadhub

import "voicebox/backend/internal/models"

// Client is the interface for any live view of a complaint thread
// (WebSocket connection, in-process callback subscriber). It abstracts the
// delivery mechanism so the hub can manage all subscriber types uniformly.
type Client interface {
	// GetID returns the unique identifier of this subscription. One user
	// may hold several subscriptions at once.
	GetID() string
	// GetComplaintID returns the complaint whose thread this client watches.
	GetComplaintID() string

	// GetSendChannel returns the channel the hub delivers refreshed thread
	// snapshots on. It is a send-only channel.
	GetSendChannel() chan<- models.ThreadUpdate

	// Run starts the client's delivery loop.
	Run()
	// Close releases the subscription and stops delivery. Safe to call once;
	// the hub guarantees it is not called twice.
	Close()
}
