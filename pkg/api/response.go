package api

import "time"

// Error ...
type Error struct {
	Error string `json:"error"`
}

// MessageResponse ...
type MessageResponse struct {
	Message string `json:"message"`
}

// Profile is a short profile card returned by list endpoints.
type Profile struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Photo      string `json:"photo"`
	FameRating int    `json:"fameRating"`
}

// TagCount ...
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Notification ...
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// UploadPhotoResponse ...
type UploadPhotoResponse struct {
	Name string `json:"name"`
}
