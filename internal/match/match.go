// Package match detects mutual-interest pairs.
package match

import (
	"context"
	"fmt"

	"github.com/amoredev/amore/internal/entities"
)

// EdgeChecker checks directed edge existence.
type EdgeChecker interface {
	EdgeExists(ctx context.Context, t entities.EdgeType, from, to string) (bool, error)
}

// Detector reports whether two profiles like each other.
type Detector struct {
	s EdgeChecker
}

// New returns new instance of Detector.
func New(s EdgeChecker) *Detector {
	return &Detector{s: s}
}

// IsMatch is true iff LIKES edges exist in both directions.
func (d *Detector) IsMatch(ctx context.Context, a, b string) (bool, error) {
	ab, err := d.s.EdgeExists(ctx, entities.EdgeLikes, a, b)
	if err != nil {
		return false, fmt.Errorf("failed to check edge: %w", err)
	}
	if !ab {
		return false, nil
	}

	ba, err := d.s.EdgeExists(ctx, entities.EdgeLikes, b, a)
	if err != nil {
		return false, fmt.Errorf("failed to check edge: %w", err)
	}

	return ba, nil
}
