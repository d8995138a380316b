// Package producer contains the interface of interaction event producer.
package producer

import (
	"context"
	"time"
)

//go:generate mockgen -destination=./producer_mock.go -package=producer -source=producer.go

// InteractionMessage is emitted after a successful social use case for
// downstream consumers. Delivery is best-effort.
type InteractionMessage struct {
	Type      string    `json:"type"`
	ActorID   string    `json:"actor_id"`
	TargetID  string    `json:"target_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Producer ...
type Producer interface {
	Produce(ctx context.Context, m *InteractionMessage) error
}

type noop struct{}

// NewNoop returns producer which drops messages. Used when no queue is configured.
func NewNoop() Producer {
	return noop{}
}

func (noop) Produce(_ context.Context, _ *InteractionMessage) error {
	return nil
}
