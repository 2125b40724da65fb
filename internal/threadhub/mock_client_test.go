package threadhub_test

import (
	"sync"

	"voicebox/backend/internal/models"
)

// mockClient is an in-memory threadhub.Client that records delivered
// snapshots for assertions.
type mockClient struct {
	id          string
	complaintID string
	RecvCh      chan models.ThreadUpdate

	mu        sync.Mutex
	closeOnce sync.Once
	closed    bool
}

func newMockClient(id, complaintID string) *mockClient {
	return &mockClient{
		id:          id,
		complaintID: complaintID,
		RecvCh:      make(chan models.ThreadUpdate, 8),
	}
}

func (c *mockClient) GetID() string                              { return c.id }
func (c *mockClient) GetComplaintID() string                     { return c.complaintID }
func (c *mockClient) GetSendChannel() chan<- models.ThreadUpdate { return c.RecvCh }
func (c *mockClient) Run()                                       {}

func (c *mockClient) Close() {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()
		close(c.RecvCh)
	})
}

// isClosed is safe to call while the hub goroutine is running.
func (c *mockClient) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
