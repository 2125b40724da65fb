package storage

import (
	"context"
	"encoding/json"
	"log"

	"voicebox/backend/internal/models"
)

// threadChannel is the Redis channel carrying thread events. A single
// channel is enough: events name their complaint and the hub fans out.
const threadChannel = "voicebox:threads"

// PublishThreadEvent announces that a complaint's thread changed. Every
// node's hub picks this up and refreshes its local subscribers, so a write
// issued through one node is visible to live views held anywhere.
func (s *Service) PublishThreadEvent(ev models.ThreadEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if err := s.Redis.Publish(s.Ctx, threadChannel, payload).Err(); err != nil {
		return wrap(err)
	}
	return nil
}

// SubscribeThreadEvents returns a channel of decoded thread events. The
// channel closes when ctx is cancelled. Undecodable payloads are logged
// and skipped.
func (s *Service) SubscribeThreadEvents(ctx context.Context) (<-chan models.ThreadEvent, error) {
	pubsub := s.Redis.Subscribe(ctx, threadChannel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, wrap(err)
	}

	out := make(chan models.ThreadEvent)
	go func() {
		defer close(out)
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var ev models.ThreadEvent
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					log.Printf("ERROR: Undecodable thread event: %v", err)
					continue
				}
				out <- ev
			}
		}
	}()
	return out, nil
}
