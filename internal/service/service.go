// Package service contains the social interaction orchestrator.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/amoredev/amore/internal/entities"
	"github.com/amoredev/amore/internal/fame"
	"github.com/amoredev/amore/internal/match"
	"github.com/amoredev/amore/internal/notifier"
	"github.com/amoredev/amore/internal/producer"
	"github.com/amoredev/amore/internal/storage"
)

//go:generate mockgen -destination=./service_mock.go -package=service -source=service.go

// nolint:golint
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrSelfAction     = errors.New("action on yourself is not allowed")
	ErrNotFound       = errors.New("profile not found")
	ErrAlreadyLiked   = errors.New("profile is already liked")
	ErrAlreadyViewed  = errors.New("profile is already viewed")
	ErrBlocked        = errors.New("blocked or being blocked")
	ErrTagLimit       = errors.New("tags limit is exceeded")
	ErrNoPhoto        = errors.New("no photo to delete")
)

// Config contains policy values resolved by deployment configuration.
type Config struct {
	// signed fame deltas applied to the counterpart of an action
	LikeDelta    int
	UnlikeDelta  int
	BlockDelta   int
	UnblockDelta int

	MaxTags             int
	PopularTagsMaxLimit int
	PopularTagsTTL      time.Duration
}

// Service interface provides social interaction use cases.
type Service interface {
	// Like persists actor's like, updates the counterpart's fame rating and
	// dispatches LIKE and, on mutual interest, MATCH notifications.
	Like(ctx context.Context, actorID, targetID string) error
	Unlike(ctx context.Context, actorID, targetID string) error
	View(ctx context.Context, actorID, targetID string) error
	Block(ctx context.Context, actorID, targetID string) error
	Unblock(ctx context.Context, actorID, targetID string) error

	GetLiked(ctx context.Context, actorID string) ([]entities.ShortProfile, error)
	GetBlocked(ctx context.Context, actorID string) ([]entities.ShortProfile, error)
	GetViewed(ctx context.Context, actorID string) ([]entities.ShortProfile, error)
	GetViewers(ctx context.Context, actorID string) ([]entities.ShortProfile, error)
	GetMatched(ctx context.Context, actorID string) ([]entities.ShortProfile, error)

	AddTag(ctx context.Context, actorID, name string) error
	RemoveTag(ctx context.Context, actorID, name string) error
	ListTags(ctx context.Context, actorID string) ([]string, error)
	PopularTags(ctx context.Context, limit int) ([]entities.TagCount, error)

	ReorderPhotos(ctx context.Context, actorID string, order [entities.PhotoSlotsCount]int) error
	DeletePhoto(ctx context.Context, actorID string, index int) error
	UploadPhoto(ctx context.Context, actorID string, index int, r io.Reader) (string, error)

	ListNotifications(ctx context.Context, actorID string) ([]*entities.Notification, error)
	MarkNotificationRead(ctx context.Context, actorID, id string) error
	DeleteNotification(ctx context.Context, actorID, id string) error
}

// service is Service interface implementation.
type service struct {
	rs storage.RelationshipStorage
	ns storage.NotificationStorage
	fs storage.FileStorage

	fame     *fame.Engine
	matcher  *match.Detector
	notifier notifier.Dispatcher
	producer producer.Producer

	cfg Config

	popularTags *cache.Cache
}

// New returns new instance of service.
func New(
	rs storage.RelationshipStorage,
	ns storage.NotificationStorage,
	fs storage.FileStorage,
	f *fame.Engine,
	m *match.Detector,
	d notifier.Dispatcher,
	p producer.Producer,
	cfg Config,
) Service {
	if cfg.PopularTagsTTL <= 0 {
		cfg.PopularTagsTTL = time.Minute
	}

	return &service{
		rs:          rs,
		ns:          ns,
		fs:          fs,
		fame:        f,
		matcher:     m,
		notifier:    d,
		producer:    p,
		cfg:         cfg,
		popularTags: cache.New(cfg.PopularTagsTTL, time.Hour),
	}
}

// getProfiles resolves target and actor in that order, mapping an absent
// target to ErrNotFound.
func (s *service) getProfiles(ctx context.Context, actorID, targetID string) (target, actor *entities.ShortProfile, err error) {
	target, err = s.rs.GetShortProfile(ctx, targetID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to get target profile: %w", err)
	}

	actor, err = s.rs.GetShortProfile(ctx, actorID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get actor profile: %w", err)
	}

	return target, actor, nil
}

// Like persists actor's like of target.
func (s *service) Like(ctx context.Context, actorID, targetID string) error {
	if targetID == "" {
		return fmt.Errorf("%w: target id is required", ErrInvalidRequest)
	}
	if targetID == actorID {
		return ErrSelfAction
	}

	_, actor, err := s.getProfiles(ctx, actorID, targetID)
	if err != nil {
		return err
	}

	liked, err := s.rs.EdgeExists(ctx, entities.EdgeLikes, actorID, targetID)
	if err != nil {
		return fmt.Errorf("failed to check like edge: %w", err)
	}
	if liked {
		return ErrAlreadyLiked
	}

	if err := s.rs.CreateEdge(ctx, entities.EdgeLikes, actorID, targetID); err != nil {
		return fmt.Errorf("failed to create like edge: %w", err)
	}

	// liking implies viewing
	if err := s.rs.CreateEdge(ctx, entities.EdgeViewed, actorID, targetID); err != nil {
		return fmt.Errorf("failed to create view edge: %w", err)
	}

	if _, err := s.fame.Apply(ctx, targetID, s.cfg.LikeDelta); err != nil {
		return fmt.Errorf("failed to update fame rating: %w", err)
	}

	matched, err := s.matcher.IsMatch(ctx, targetID, actorID)
	if err != nil {
		return fmt.Errorf("failed to detect match: %w", err)
	}

	if err := s.notifier.Dispatch(ctx, targetID, entities.NotificationLike,
		fmt.Sprintf("%s has liked you", actor.Username)); err != nil {
		return fmt.Errorf("failed to dispatch notification: %w", err)
	}

	if matched {
		if err := s.notifier.Dispatch(ctx, targetID, entities.NotificationMatch,
			fmt.Sprintf("%s and you have liked each other", actor.Username)); err != nil {
			return fmt.Errorf("failed to dispatch notification: %w", err)
		}
		if err := s.notifier.Dispatch(ctx, actorID, entities.NotificationMatch,
			"You have just matched!"); err != nil {
			return fmt.Errorf("failed to dispatch notification: %w", err)
		}
	}

	s.produce(ctx, "liked", actorID, targetID)

	return nil
}

// Unlike removes actor's like of target.
func (s *service) Unlike(ctx context.Context, actorID, targetID string) error {
	if targetID == "" {
		return fmt.Errorf("%w: target id is required", ErrInvalidRequest)
	}
	if targetID == actorID {
		return ErrSelfAction
	}

	_, actor, err := s.getProfiles(ctx, actorID, targetID)
	if err != nil {
		return err
	}

	if err := s.rs.DeleteEdge(ctx, entities.EdgeLikes, actorID, targetID); err != nil {
		return fmt.Errorf("failed to delete like edge: %w", err)
	}

	if _, err := s.fame.Apply(ctx, targetID, s.cfg.UnlikeDelta); err != nil {
		return fmt.Errorf("failed to update fame rating: %w", err)
	}

	if err := s.notifier.Dispatch(ctx, targetID, entities.NotificationUnlike,
		fmt.Sprintf("%s has unliked you", actor.Username)); err != nil {
		return fmt.Errorf("failed to dispatch notification: %w", err)
	}

	s.produce(ctx, "unliked", actorID, targetID)

	return nil
}

// View records actor's visit of target's profile.
func (s *service) View(ctx context.Context, actorID, targetID string) error {
	if targetID == "" {
		return fmt.Errorf("%w: target id is required", ErrInvalidRequest)
	}
	if targetID == actorID {
		return ErrSelfAction
	}

	_, actor, err := s.getProfiles(ctx, actorID, targetID)
	if err != nil {
		return err
	}

	// blocked profiles are mutually invisible, checked before the duplicate check
	for _, pair := range [][2]string{{actorID, targetID}, {targetID, actorID}} {
		blocked, err := s.rs.EdgeExists(ctx, entities.EdgeBlocks, pair[0], pair[1])
		if err != nil {
			return fmt.Errorf("failed to check block edge: %w", err)
		}
		if blocked {
			return ErrBlocked
		}
	}

	viewed, err := s.rs.EdgeExists(ctx, entities.EdgeViewed, actorID, targetID)
	if err != nil {
		return fmt.Errorf("failed to check view edge: %w", err)
	}
	if viewed {
		return ErrAlreadyViewed
	}

	if err := s.rs.CreateEdge(ctx, entities.EdgeViewed, actorID, targetID); err != nil {
		return fmt.Errorf("failed to create view edge: %w", err)
	}

	if err := s.notifier.Dispatch(ctx, targetID, entities.NotificationView,
		fmt.Sprintf("%s has viewed your profile", actor.Username)); err != nil {
		return fmt.Errorf("failed to dispatch notification: %w", err)
	}

	s.produce(ctx, "viewed", actorID, targetID)

	return nil
}

// Block hides target from actor and vice versa.
func (s *service) Block(ctx context.Context, actorID, targetID string) error {
	if targetID == "" {
		return fmt.Errorf("%w: target id is required", ErrInvalidRequest)
	}
	if targetID == actorID {
		return ErrSelfAction
	}

	if err := s.rs.CreateEdge(ctx, entities.EdgeBlocks, actorID, targetID); err != nil {
		return fmt.Errorf("failed to create block edge: %w", err)
	}

	if _, err := s.fame.Apply(ctx, targetID, s.cfg.BlockDelta); err != nil {
		return fmt.Errorf("failed to update fame rating: %w", err)
	}

	// no notification, the blocked profile must not learn about the block

	s.produce(ctx, "blocked", actorID, targetID)

	return nil
}

// Unblock removes actor's block of target.
func (s *service) Unblock(ctx context.Context, actorID, targetID string) error {
	if targetID == "" {
		return fmt.Errorf("%w: target id is required", ErrInvalidRequest)
	}
	if targetID == actorID {
		return ErrSelfAction
	}

	if err := s.rs.DeleteEdge(ctx, entities.EdgeBlocks, actorID, targetID); err != nil {
		return fmt.Errorf("failed to delete block edge: %w", err)
	}

	if _, err := s.fame.Apply(ctx, targetID, s.cfg.UnblockDelta); err != nil {
		return fmt.Errorf("failed to update fame rating: %w", err)
	}

	s.produce(ctx, "unblocked", actorID, targetID)

	return nil
}

// GetLiked returns profiles the actor liked.
func (s *service) GetLiked(ctx context.Context, actorID string) ([]entities.ShortProfile, error) {
	return s.rs.ListOutgoing(ctx, entities.EdgeLikes, actorID)
}

// GetBlocked returns profiles the actor blocked.
func (s *service) GetBlocked(ctx context.Context, actorID string) ([]entities.ShortProfile, error) {
	return s.rs.ListOutgoing(ctx, entities.EdgeBlocks, actorID)
}

// GetViewed returns profiles the actor visited.
func (s *service) GetViewed(ctx context.Context, actorID string) ([]entities.ShortProfile, error) {
	return s.rs.ListOutgoing(ctx, entities.EdgeViewed, actorID)
}

// GetViewers returns profiles which visited the actor.
func (s *service) GetViewers(ctx context.Context, actorID string) ([]entities.ShortProfile, error) {
	return s.rs.ListIncoming(ctx, entities.EdgeViewed, actorID)
}

// GetMatched returns liked profiles which like the actor back.
func (s *service) GetMatched(ctx context.Context, actorID string) ([]entities.ShortProfile, error) {
	liked, err := s.rs.ListOutgoing(ctx, entities.EdgeLikes, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}

	out := make([]entities.ShortProfile, 0, len(liked))
	for _, p := range liked {
		mutual, err := s.rs.EdgeExists(ctx, entities.EdgeLikes, p.ID, actorID)
		if err != nil {
			return nil, fmt.Errorf("failed to check like edge: %w", err)
		}
		if mutual {
			out = append(out, p)
		}
	}

	return out, nil
}

// ListNotifications returns actor's notifications.
func (s *service) ListNotifications(ctx context.Context, actorID string) ([]*entities.Notification, error) {
	return s.ns.List(ctx, actorID)
}

// MarkNotificationRead marks actor's notification as read.
func (s *service) MarkNotificationRead(ctx context.Context, actorID, id string) error {
	if err := s.ns.MarkRead(ctx, actorID, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// DeleteNotification deletes actor's notification.
func (s *service) DeleteNotification(ctx context.Context, actorID, id string) error {
	if err := s.ns.Delete(ctx, actorID, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}

// produce emits the interaction message, delivery is best-effort.
func (s *service) produce(ctx context.Context, typ, actorID, targetID string) {
	if err := s.producer.Produce(ctx, &producer.InteractionMessage{
		Type:      typ,
		ActorID:   actorID,
		TargetID:  targetID,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		logrus.WithError(err).WithField("type", typ).Error("failed to produce interaction message")
	}
}
