package realtime

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// Channel carries reservation change notifications. Consumers treat any
// event as "re-fetch the full list"; no incremental merge is attempted.
const Channel = "reservations:changes"

type Event struct {
	Table  string `json:"table"`
	Action string `json:"action"` // insert | update
	ID     uint   `json:"id"`
}

type Broker struct {
	rdb *redis.Client
}

func NewBroker(rdb *redis.Client) *Broker {
	return &Broker{rdb: rdb}
}

// ReservationChanged publishes best-effort: a failed publish is logged
// and otherwise ignored, it never fails the mutation that caused it.
func (b *Broker) ReservationChanged(ctx context.Context, action string, id uint) {
	payload, err := json.Marshal(Event{
		Table:  "reservations",
		Action: action,
		ID:     id,
	})
	if err != nil {
		return
	}

	if err := b.rdb.Publish(ctx, Channel, payload).Err(); err != nil {
		log.Warn().Err(err).Msg("realtime publish failed")
	}
}

func (b *Broker) Subscribe(ctx context.Context) *redis.PubSub {
	return b.rdb.Subscribe(ctx, Channel)
}
