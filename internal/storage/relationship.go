// Package storage contains capability interfaces consumed by the service and their mocks.
package storage

import (
	"context"
	"errors"

	"github.com/amoredev/amore/internal/entities"
)

//go:generate mockgen -destination=./relationship_mock.go -package=storage -source=relationship.go

// ErrNotFound means that requested object is not found.
var ErrNotFound = errors.New("not found")

// RelationshipStorage provides access to the profile graph: edges, fame
// ratings, photo slots and tags.
//
// The store does not enforce business rules. In particular CreateEdge does
// not dedupe, callers are responsible for existence pre-checks.
type RelationshipStorage interface {
	GetShortProfile(ctx context.Context, id string) (*entities.ShortProfile, error)

	EdgeExists(ctx context.Context, t entities.EdgeType, from, to string) (bool, error)
	CreateEdge(ctx context.Context, t entities.EdgeType, from, to string) error
	// DeleteEdge is a no-op if the edge is absent.
	DeleteEdge(ctx context.Context, t entities.EdgeType, from, to string) error

	ListOutgoing(ctx context.Context, t entities.EdgeType, from string) ([]entities.ShortProfile, error)
	ListIncoming(ctx context.Context, t entities.EdgeType, to string) ([]entities.ShortProfile, error)

	GetFameRating(ctx context.Context, id string) (int, error)
	SetFameRating(ctx context.Context, id string, rating int) error

	GetPhotos(ctx context.Context, id string) (entities.PhotoSlots, error)
	SetPhotoAt(ctx context.Context, id string, index int, name string) error
	SetPhotos(ctx context.Context, id string, photos entities.PhotoSlots) error

	GetTagCount(ctx context.Context, id string) (int, error)
	// AddTag merges the shared tag node by name and links the profile to it.
	AddTag(ctx context.Context, id, name string) error
	// RemoveTag unlinks the tag, the shared tag node stays.
	RemoveTag(ctx context.Context, id, name string) error
	ListTags(ctx context.Context, id string) ([]string, error)
	ListPopularTags(ctx context.Context, limit int) ([]entities.TagCount, error)
}
