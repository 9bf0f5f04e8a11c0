package stash

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const keyPrefix = "pending_reservation:"

// PendingReservation is an unauthenticated booking intent: it is held
// here until an identity is established, then submitted as a pending
// reservation. No table write happens while it sits in the stash.
type PendingReservation struct {
	ReservationDate string   `json:"reservation_date"`
	ReservationTime string   `json:"reservation_time"`
	Notes           string   `json:"notes"`
	ServiceName     string   `json:"service_name"`
	ServicePrice    *float64 `json:"service_price"`
}

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Put stashes one intent and returns the opaque token the client must
// present on register/login. The entry expires on its own.
func (s *Store) Put(ctx context.Context, p PendingReservation) (string, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return "", err
	}

	token := uuid.NewString()
	if err := s.rdb.Set(ctx, keyPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Consume pops the intent for a token, at most once. A missing or
// expired token yields (nil, nil).
func (s *Store) Consume(ctx context.Context, token string) (*PendingReservation, error) {
	payload, err := s.rdb.GetDel(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var p PendingReservation
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}
