// Package postgres is a postgres implementation of NotificationStorage.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/amoredev/amore/internal/entities"
	"github.com/amoredev/amore/internal/storage"
)

type pg struct {
	ext sqlx.ExtContext
}

type notificationDTO struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Type      string    `db:"type"`
	Message   string    `db:"message"`
	Read      bool      `db:"read"`
	CreatedAt time.Time `db:"created_at"`
}

// New creates new instance of pg.
func New(db *sql.DB) storage.NotificationStorage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) Create(ctx context.Context, n *entities.Notification) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext, `
		INSERT INTO notification(id, user_id, type, message, read, created_at)
		VALUES(:id, :user_id, :type, :message, :read, :created_at)
	`, notificationDTO{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) List(ctx context.Context, userID string) ([]*entities.Notification, error) {
	var nn []*notificationDTO
	if err := sqlx.SelectContext(ctx, s.ext, &nn, `
		SELECT id, user_id, type, message, read, created_at
		FROM notification
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Notification, len(nn))
	for i, v := range nn {
		out[i] = toNotification(v)
	}

	return out, nil
}

func (s pg) MarkRead(ctx context.Context, userID, id string) error {
	res, err := s.ext.ExecContext(ctx, `
		UPDATE notification SET read = TRUE WHERE user_id = $1 AND id = $2
	`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) Delete(ctx context.Context, userID, id string) error {
	res, err := s.ext.ExecContext(ctx, `
		DELETE FROM notification WHERE user_id = $1 AND id = $2
	`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func toNotification(n *notificationDTO) *entities.Notification {
	return &entities.Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      entities.NotificationType(n.Type),
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
