package threadhub

import (
	"context"
	"log"

	"voicebox/backend/internal/models"
	"voicebox/backend/internal/storage"
)

// ManagerService owns every live thread subscription on this node. All
// state is confined to the Run goroutine; registration, teardown and event
// delivery arrive over channels.
type ManagerService struct {
	Clients map[string]Client

	RegisterCh   chan Client
	UnregisterCh chan Client
	// EventCh carries thread-change events. Run feeds it from the shared
	// bus; tests inject into it directly.
	EventCh chan models.ThreadEvent

	Storage storage.Storage

	ctx context.Context
}

func NewManagerService(s storage.Storage) *ManagerService {
	return &ManagerService{
		Clients:      make(map[string]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		EventCh:      make(chan models.ThreadEvent),
		Storage:      s,
		ctx:          context.Background(),
	}
}

// Run is the hub's main dispatcher loop. It must run in its own goroutine.
func (m *ManagerService) Run() {
	m.startEventListener()

	for {
		select {
		case client := <-m.RegisterCh:
			m.Clients[client.GetID()] = client
			// New subscribers get the current snapshot right away, before
			// any further write arrives.
			m.deliver(client)

		case client := <-m.UnregisterCh:
			if _, ok := m.Clients[client.GetID()]; ok {
				delete(m.Clients, client.GetID())
				client.Close()
			}

		case ev := <-m.EventCh:
			m.broadcast(ev.ComplaintID)
		}
	}
}

// startEventListener bridges the shared bus into EventCh. When the
// subscription cannot be established or dies, the hub stays silent;
// consumers treat a silent stream as broken and re-subscribe.
func (m *ManagerService) startEventListener() {
	go func() {
		events, err := m.Storage.SubscribeThreadEvents(m.ctx)
		if err != nil {
			log.Printf("ERROR: Thread event subscription failed: %v", err)
			return
		}
		for ev := range events {
			m.EventCh <- ev
		}
		log.Println("WARNING: Thread event stream closed")
	}()
}

// broadcast refreshes every subscriber of the given complaint. The
// snapshot is read once and fanned out.
func (m *ManagerService) broadcast(complaintID string) {
	update, err := m.snapshot(complaintID)
	if err != nil {
		log.Printf("ERROR: Failed to refresh thread %s: %v", complaintID, err)
		return
	}
	for id, client := range m.Clients {
		if client.GetComplaintID() != complaintID {
			continue
		}
		select {
		case client.GetSendChannel() <- update:
		default:
			// Slow consumer: drop the subscription rather than block the hub.
			delete(m.Clients, id)
			client.Close()
		}
	}
}

func (m *ManagerService) deliver(client Client) {
	update, err := m.snapshot(client.GetComplaintID())
	if err != nil {
		log.Printf("ERROR: Failed to load thread %s for new subscriber: %v", client.GetComplaintID(), err)
		return
	}
	select {
	case client.GetSendChannel() <- update:
	default:
	}
}

func (m *ManagerService) snapshot(complaintID string) (models.ThreadUpdate, error) {
	complaint, err := m.Storage.GetComplaintByID(complaintID)
	if err != nil {
		return models.ThreadUpdate{}, err
	}
	thread, err := m.Storage.GetThread(complaintID)
	if err != nil {
		return models.ThreadUpdate{}, err
	}
	return models.ThreadUpdate{
		ComplaintID: complaintID,
		Status:      complaint.Status,
		Comments:    thread,
	}, nil
}
