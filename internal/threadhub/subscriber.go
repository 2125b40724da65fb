package threadhub

import (
	"sync"

	"voicebox/backend/internal/models"

	"github.com/google/uuid"
)

// FuncSubscriber is an in-process Client that invokes a callback for every
// delivered snapshot. It backs ManagerService.Subscribe.
type FuncSubscriber struct {
	id          string
	complaintID string
	send        chan models.ThreadUpdate
	onUpdate    func(models.ThreadUpdate)
	closeOnce   sync.Once
}

func (c *FuncSubscriber) GetID() string                              { return c.id }
func (c *FuncSubscriber) GetComplaintID() string                     { return c.complaintID }
func (c *FuncSubscriber) GetSendChannel() chan<- models.ThreadUpdate { return c.send }

// Run drains the send channel into the callback until Close.
func (c *FuncSubscriber) Run() {
	go func() {
		for update := range c.send {
			c.onUpdate(update)
		}
	}()
}

func (c *FuncSubscriber) Close() {
	c.closeOnce.Do(func() { close(c.send) })
}

// Subscribe establishes a live view of one complaint's thread. Every
// change to the thread triggers onUpdate with the full refreshed snapshot;
// the initial state is delivered immediately. The returned cancel func
// stops delivery and releases the subscription; callers must invoke it
// when the consuming view is torn down.
func (m *ManagerService) Subscribe(complaintID string, onUpdate func(models.ThreadUpdate)) (cancel func()) {
	sub := &FuncSubscriber{
		id:          uuid.New().String(),
		complaintID: complaintID,
		send:        make(chan models.ThreadUpdate, 16),
		onUpdate:    onUpdate,
	}
	sub.Run()
	m.RegisterCh <- sub
	return func() {
		m.UnregisterCh <- sub
	}
}
