package api

import "strings"

// Validator interface provides method for validation.
type Validator interface {
	IsValid() bool
}

// TagRequest ...
type TagRequest struct {
	Name string `json:"name"`
}

// IsValid ...
func (r TagRequest) IsValid() bool {
	return strings.TrimSpace(r.Name) != ""
}

// ReorderPhotosRequest ...
type ReorderPhotosRequest struct {
	Order [PhotoSlotsCount]int `json:"order"`
}

// IsValid ...
func (r ReorderPhotosRequest) IsValid() bool {
	var seen [PhotoSlotsCount]bool
	for _, v := range r.Order {
		if v < 0 || v >= PhotoSlotsCount || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
