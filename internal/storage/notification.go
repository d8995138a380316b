package storage

import (
	"context"

	"github.com/amoredev/amore/internal/entities"
)

//go:generate mockgen -destination=./notification_mock.go -package=storage -source=notification.go

// NotificationStorage is an append-only store of notification events with a
// read/delete lifecycle on top.
type NotificationStorage interface {
	Create(ctx context.Context, n *entities.Notification) error
	List(ctx context.Context, userID string) ([]*entities.Notification, error)
	MarkRead(ctx context.Context, userID, id string) error
	Delete(ctx context.Context, userID, id string) error
}
