// Package entities contains service-wide models.
package entities

import (
	"time"
)

// PhotoSlotsCount is the number of photo slots every profile has.
const PhotoSlotsCount = 5

// PhotoSlots is a fixed-size ordered set of photo names, "" means an empty slot.
type PhotoSlots [PhotoSlotsCount]string

// EdgeType is a type of directed relationship between two profiles.
type EdgeType string

// nolint:golint
const (
	EdgeLikes  EdgeType = "LIKES"
	EdgeBlocks EdgeType = "BLOCKS"
	EdgeViewed EdgeType = "VIEWED"
	EdgeHasTag EdgeType = "HAS_TAG"
)

// NotificationType is a type of event surfaced to a recipient's inbox.
type NotificationType string

// nolint:golint
const (
	NotificationLike   NotificationType = "LIKE"
	NotificationMatch  NotificationType = "MATCH"
	NotificationUnlike NotificationType = "UNLIKE"
	NotificationView   NotificationType = "VIEW"
)

// ShortProfile is a compact profile view used by relationship listings.
type ShortProfile struct {
	ID         string
	Username   string
	FirstName  string
	LastName   string
	Photo      string
	FameRating int
}

// Notification is an addressed, typed event record.
type Notification struct {
	ID        string
	UserID    string
	Type      NotificationType
	Message   string
	Read      bool
	CreatedAt time.Time
}

// TagCount is a tag name with the number of profiles carrying it.
type TagCount struct {
	Name  string
	Count int
}
