// Package throttler limits how often an actor may repeat an interaction.
package throttler

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// Throttler tells whether an interaction key is still within its cooldown.
type Throttler interface {
	Throttle(key string) bool
	Reset(key string)
}

type throttler struct {
	c *cache.Cache
}

// New returns a new instance of Throttler with the given cooldown period.
func New(period time.Duration) Throttler {
	return &throttler{
		c: cache.New(period, time.Hour),
	}
}

// Throttle reports whether the key was reset within the cooldown period.
func (t *throttler) Throttle(key string) bool {
	_, ok := t.c.Get(key)
	return ok
}

// Reset starts the cooldown for the key.
func (t *throttler) Reset(key string) {
	t.c.SetDefault(key, true)
}

// Key builds the throttling key for an actor's action on a target.
func Key(action, actorID, targetID string) string {
	return fmt.Sprintf("%s:%s:%s", action, actorID, targetID)
}
