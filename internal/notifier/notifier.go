// Package notifier appends notification records to the notification store.
package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amoredev/amore/internal/entities"
	"github.com/amoredev/amore/internal/storage"
)

//go:generate mockgen -destination=./notifier_mock.go -package=notifier -source=notifier.go

// Dispatcher appends a single notification. It holds no business rules,
// sequencing and content are the caller's.
type Dispatcher interface {
	Dispatch(ctx context.Context, userID string, t entities.NotificationType, message string) error
}

type dispatcher struct {
	s storage.NotificationStorage
}

// New returns new instance of dispatcher.
func New(s storage.NotificationStorage) Dispatcher {
	return &dispatcher{s: s}
}

// Dispatch assigns id and timestamp and appends the notification.
func (d *dispatcher) Dispatch(ctx context.Context, userID string, t entities.NotificationType, message string) error {
	if err := d.s.Create(ctx, &entities.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      t,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}
