package threadhub_test

import (
	"sync"
	"testing"
	"time"

	"voicebox/backend/internal/models"
	"voicebox/backend/internal/storage/storagetest"
	"voicebox/backend/internal/threadhub"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newHub(storageMock *storagetest.MockStorage) *threadhub.ManagerService {
	// The bus goes quiet in tests; events are injected via EventCh.
	events := make(chan models.ThreadEvent)
	storageMock.On("SubscribeThreadEvents", mock.Anything).Return((<-chan models.ThreadEvent)(events), nil)
	return threadhub.NewManagerService(storageMock)
}

func TestManager_RegisterDeliversInitialSnapshot(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	hub := newHub(storageMock)

	storageMock.On("GetComplaintByID", "c1").Return(&models.Complaint{ID: "c1", Status: models.StatusPending}, nil)
	storageMock.On("GetThread", "c1").Return([]models.Comment{{ID: "m1", Text: "hello"}}, nil)

	go hub.Run()

	client := newMockClient("sub_A", "c1")
	hub.RegisterCh <- client

	select {
	case update := <-client.RecvCh:
		assert.Equal(t, "c1", update.ComplaintID)
		assert.Equal(t, models.StatusPending, update.Status)
		assert.Len(t, update.Comments, 1)
	case <-time.After(time.Second):
		t.Fatal("no initial snapshot delivered")
	}
}

func TestManager_EventBroadcastsToThreadSubscribersOnly(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	hub := newHub(storageMock)

	storageMock.On("GetComplaintByID", "c1").Return(&models.Complaint{ID: "c1", Status: models.StatusInProgress}, nil)
	storageMock.On("GetComplaintByID", "c2").Return(&models.Complaint{ID: "c2", Status: models.StatusPending}, nil)
	storageMock.On("GetThread", "c1").Return([]models.Comment{{ID: "m1"}, {ID: "m2"}}, nil)
	storageMock.On("GetThread", "c2").Return([]models.Comment{}, nil)

	go hub.Run()

	watcher := newMockClient("sub_A", "c1")
	bystander := newMockClient("sub_B", "c2")
	hub.RegisterCh <- watcher
	hub.RegisterCh <- bystander
	// drain initial snapshots
	<-watcher.RecvCh
	<-bystander.RecvCh

	hub.EventCh <- models.ThreadEvent{ComplaintID: "c1", Kind: "comment"}

	select {
	case update := <-watcher.RecvCh:
		assert.Len(t, update.Comments, 2)
		assert.Equal(t, models.StatusInProgress, update.Status)
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive broadcast")
	}

	select {
	case <-bystander.RecvCh:
		t.Error("subscriber of another thread received the broadcast")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestManager_UnregisterStopsDelivery(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	hub := newHub(storageMock)

	storageMock.On("GetComplaintByID", "c1").Return(&models.Complaint{ID: "c1", Status: models.StatusPending}, nil)
	storageMock.On("GetThread", "c1").Return([]models.Comment{}, nil)

	go hub.Run()

	client := newMockClient("sub_A", "c1")
	hub.RegisterCh <- client
	<-client.RecvCh

	hub.UnregisterCh <- client
	assert.Eventually(t, client.isClosed, time.Second, 10*time.Millisecond,
		"unregister should close the client")

	// A thread event after unregistration must not reach the client: its
	// channel drains closed with nothing buffered.
	hub.EventCh <- models.ThreadEvent{ComplaintID: "c1", Kind: "comment"}
	_, open := <-client.RecvCh
	assert.False(t, open, "no delivery after unregister")
}

func TestManager_SubscribeCallbackAndCancel(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	hub := newHub(storageMock)

	storageMock.On("GetComplaintByID", "c1").Return(&models.Complaint{ID: "c1", Status: models.StatusPending}, nil)
	storageMock.On("GetThread", "c1").Return([]models.Comment{{ID: "m1"}}, nil)

	go hub.Run()

	var mu sync.Mutex
	var delivered []models.ThreadUpdate
	cancel := hub.Subscribe("c1", func(update models.ThreadUpdate) {
		mu.Lock()
		delivered = append(delivered, update)
		mu.Unlock()
	})

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(delivered) == 1
	}, time.Second, 10*time.Millisecond, "initial snapshot should reach the callback")

	hub.EventCh <- models.ThreadEvent{ComplaintID: "c1", Kind: "status"}
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(delivered) == 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	time.Sleep(50 * time.Millisecond)

	hub.EventCh <- models.ThreadEvent{ComplaintID: "c1", Kind: "comment"}
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, delivered, 2, "no delivery after cancel")
}
