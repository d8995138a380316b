// Package fame applies named, signed deltas to profiles' fame ratings.
package fame

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
)

// ScoreStore reads and writes the per-profile fame rating.
type ScoreStore interface {
	GetFameRating(ctx context.Context, id string) (int, error)
	SetFameRating(ctx context.Context, id string, rating int) error
}

// lockStripes is the size of the fixed lock pool, so memory stays constant
// no matter how many profiles are touched.
const lockStripes = 256

// Engine mutates fame ratings through a read-then-write cycle.
// Updates to the same profile are serialized, so concurrent deltas are not
// lost. Profiles hashing to the same stripe share a lock.
type Engine struct {
	s ScoreStore

	locks [lockStripes]sync.Mutex
}

// New returns new instance of Engine.
func New(s ScoreStore) *Engine {
	return &Engine{s: s}
}

func (e *Engine) lock(id string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(id)) // nolint:gosec,errcheck
	return &e.locks[h.Sum32()%lockStripes]
}

// Apply adds the signed delta to the profile's fame rating and returns the
// new value. The rating is not clamped.
func (e *Engine) Apply(ctx context.Context, id string, delta int) (int, error) {
	l := e.lock(id)
	l.Lock()
	defer l.Unlock()

	rating, err := e.s.GetFameRating(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to get fame rating: %w", err)
	}

	rating += delta

	if err := e.s.SetFameRating(ctx, id, rating); err != nil {
		return 0, fmt.Errorf("failed to set fame rating: %w", err)
	}

	return rating, nil
}
