package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/amoredev/amore/internal/entities"
)

// AddTag links the named tag to the actor's profile.
func (s *service) AddTag(ctx context.Context, actorID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: tag name is required", ErrInvalidRequest)
	}

	cnt, err := s.rs.GetTagCount(ctx, actorID)
	if err != nil {
		return fmt.Errorf("failed to count tags: %w", err)
	}
	if cnt >= s.cfg.MaxTags {
		return ErrTagLimit
	}

	if err := s.rs.AddTag(ctx, actorID, name); err != nil {
		return fmt.Errorf("failed to add tag: %w", err)
	}

	return nil
}

// RemoveTag unlinks the named tag from the actor's profile, no-op if absent.
func (s *service) RemoveTag(ctx context.Context, actorID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: tag name is required", ErrInvalidRequest)
	}

	if err := s.rs.RemoveTag(ctx, actorID, name); err != nil {
		return fmt.Errorf("failed to remove tag: %w", err)
	}

	return nil
}

// ListTags returns actor's tags.
func (s *service) ListTags(ctx context.Context, actorID string) ([]string, error) {
	return s.rs.ListTags(ctx, actorID)
}

// PopularTags returns count-ranked tags, cached for a short period.
func (s *service) PopularTags(ctx context.Context, limit int) ([]entities.TagCount, error) {
	if limit <= 0 || limit > s.cfg.PopularTagsMaxLimit {
		return nil, fmt.Errorf("%w: limit %d is out of range [1, %d]", ErrInvalidRequest, limit, s.cfg.PopularTagsMaxLimit)
	}

	key := fmt.Sprintf("popular_tags_%d", limit)
	if v, ok := s.popularTags.Get(key); ok {
		return v.([]entities.TagCount), nil
	}

	tt, err := s.rs.ListPopularTags(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list popular tags: %w", err)
	}

	s.popularTags.SetDefault(key, tt)

	return tt, nil
}
