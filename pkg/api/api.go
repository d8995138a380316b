// Package api provides API models and client to Amore.
package api

import (
	"context"
	"errors"
	"io"
)

// PhotoSlotsCount is the number of photo slots every profile has.
const PhotoSlotsCount = 5

// ErrInvalidRequest is returned when request is invalid.
var ErrInvalidRequest = errors.New("invalid request")

// ErrUnauthorized is returned when the access token wasn't accepted.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden is returned when the interaction is blocked.
var ErrForbidden = errors.New("forbidden")

// ErrNotFound is returned when object is not found.
var ErrNotFound = errors.New("not found")

// Amore provides user-friendly API methods.
type Amore interface {
	Like(ctx context.Context, targetID string) error
	Unlike(ctx context.Context, targetID string) error
	View(ctx context.Context, targetID string) error
	Block(ctx context.Context, targetID string) error
	Unblock(ctx context.Context, targetID string) error

	Liked(ctx context.Context) ([]Profile, error)
	Blocked(ctx context.Context) ([]Profile, error)
	Viewed(ctx context.Context) ([]Profile, error)
	Viewers(ctx context.Context) ([]Profile, error)
	Matches(ctx context.Context) ([]Profile, error)

	AddTag(ctx context.Context, name string) error
	RemoveTag(ctx context.Context, name string) error
	PopularTags(ctx context.Context, limit int) ([]TagCount, error)

	ReorderPhotos(ctx context.Context, order [PhotoSlotsCount]int) error
	UploadPhoto(ctx context.Context, index int, r io.Reader) (string, error)
	DeletePhoto(ctx context.Context, index int) error

	Notifications(ctx context.Context) ([]Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	DeleteNotification(ctx context.Context, id string) error
}
