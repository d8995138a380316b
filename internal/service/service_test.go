package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amoredev/amore/internal/entities"
	"github.com/amoredev/amore/internal/fame"
	"github.com/amoredev/amore/internal/match"
	"github.com/amoredev/amore/internal/notifier"
	"github.com/amoredev/amore/internal/producer"
	"github.com/amoredev/amore/internal/storage"
)

var (
	errTest = errors.New("test")

	testConfig = Config{
		LikeDelta:           2,
		UnlikeDelta:         -2,
		BlockDelta:          -5,
		UnblockDelta:        5,
		MaxTags:             5,
		PopularTagsMaxLimit: 50,
	}

	actorProfile = entities.ShortProfile{
		ID:       "actor",
		Username: "romeo",
	}
	targetProfile = entities.ShortProfile{
		ID:       "target",
		Username: "juliet",
	}
)

type serviceMocks struct {
	rs *storage.MockRelationshipStorage
	ns *storage.MockNotificationStorage
	fs *storage.MockFileStorage
	d  *notifier.MockDispatcher
	p  *producer.MockProducer
}

func newTestService(t *testing.T) (Service, serviceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := serviceMocks{
		rs: storage.NewMockRelationshipStorage(ctrl),
		ns: storage.NewMockNotificationStorage(ctrl),
		fs: storage.NewMockFileStorage(ctrl),
		d:  notifier.NewMockDispatcher(ctrl),
		p:  producer.NewMockProducer(ctrl),
	}

	s := New(m.rs, m.ns, m.fs, fame.New(m.rs), match.New(m.rs), m.d, m.p, testConfig)

	return s, m
}

func expectProfiles(m serviceMocks) {
	m.rs.EXPECT().GetShortProfile(gomock.Any(), "target").Return(&targetProfile, nil)
	m.rs.EXPECT().GetShortProfile(gomock.Any(), "actor").Return(&actorProfile, nil)
}

func TestService_Like(t *testing.T) {
	s, m := newTestService(t)

	expectProfiles(m)
	m.rs.EXPECT().EdgeExists(gomock.Any(), entities.EdgeLikes, "actor", "target").Return(false, nil)
	m.rs.EXPECT().CreateEdge(gomock.Any(), entities.EdgeLikes, "actor", "target").Return(nil)
	m.rs.EXPECT().CreateEdge(gomock.Any(), entities.EdgeViewed, "actor", "target").Return(nil)
	m.rs.EXPECT().GetFameRating(gomock.Any(), "target").Return(10, nil)
	m.rs.EXPECT().SetFameRating(gomock.Any(), "target", 12).Return(nil)
	m.rs.EXPECT().EdgeExists(gomock.Any(), entities.EdgeLikes, "target", "actor").Return(false, nil)
	m.d.EXPECT().Dispatch(gomock.Any(), "target", entities.NotificationLike, "romeo has liked you").Return(nil)
	m.p.EXPECT().Produce(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg *producer.InteractionMessage) error {
			assert.Equal(t, "liked", msg.Type)
			assert.Equal(t, "actor", msg.ActorID)
			assert.Equal(t, "target", msg.TargetID)
			assert.False(t, msg.CreatedAt.IsZero())
			return nil
		})

	require.NoError(t, s.Like(context.Background(), "actor", "target"))
}

func TestService_Like_Match(t *testing.T) {
	s, m := newTestService(t)

	expectProfiles(m)

	// the target liked the actor before, so this like completes a match
	gomock.InOrder(
		m.rs.EXPECT().EdgeExists(gomock.Any(), entities.EdgeLikes, "actor", "target").Return(false, nil),
		m.rs.EXPECT().CreateEdge(gomock.Any(), entities.EdgeLikes, "actor", "target").Return(nil),
		m.rs.EXPECT().CreateEdge(gomock.Any(), entities.EdgeViewed, "actor", "target").Return(nil),
		m.rs.EXPECT().GetFameRating(gomock.Any(), "target").Return(10, nil),
		m.rs.EXPECT().SetFameRating(gomock.Any(), "target", 12).Return(nil),
		m.rs.EXPECT().EdgeExists(gomock.Any(), entities.EdgeLikes, "target", "actor").Return(true, nil),
		m.rs.EXPECT().EdgeExists(gomock.Any(), entities.EdgeLikes, "actor", "target").Return(true, nil),
	)

	// the like notification always precedes the match ones,
	// and the target is notified about the match first
	gomock.InOrder(
		m.d.EXPECT().Dispatch(gomock.Any(), "target", entities.NotificationLike, "romeo has liked you").Return(nil),
		m.d.EXPECT().Dispatch(gomock.Any(), "target", entities.NotificationMatch, "romeo and you have liked each other").Return(nil),
		m.d.EXPECT().Dispatch(gomock.Any(), "actor", entities.NotificationMatch, "You have just matched!").Return(nil),
	)

	m.p.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, s.Like(context.Background(), "actor", "target"))
}

func TestService_Like_Self(t *testing.T) {
	s, _ := newTestService(t)

	assert.ErrorIs(t, s.Like(context.Background(), "actor", "actor"), ErrSelfAction)
}

func TestService_Like_EmptyTarget(t *testing.T) {
	s, _ := newTestService(t)

	assert.ErrorIs(t, s.Like(context.Background(), "actor", ""), ErrInvalidRequest)
}

func TestService_Like_TargetNotFound(t *testing.T) {
	s, m := newTestService(t)

	m.rs.EXPECT().GetShortProfile(gomock.Any(), "target").Return(nil, storage.ErrNotFound)

	assert.ErrorIs(t, s.Like(context.Background(), "actor", "target"), ErrNotFound)
}

func TestService_Like_AlreadyLiked(t *testing.T) {
	s, m := newTestService(t)

	expectProfiles(m)
	m.rs.EXPECT().EdgeExists(gomock.Any(), entities.EdgeLikes, "actor", "target").Return(true, nil)

	assert.ErrorIs(t, s.Like(context.Background(), "actor", "target"), ErrAlreadyLiked)
}

func TestService_Like_StorageError(t *testing.T) {
	s, m := newTestService(t)

	expectProfiles(m)
	m.rs.EXPECT().EdgeExists(gomock.Any(), entities.EdgeLikes, "actor", "target").Return(false, nil)
	m.rs.EXPECT().CreateEdge(gomock.Any(), entities.EdgeLikes, "actor", "target").Return(errTest)

	assert.ErrorIs(t, s.Like(context.Background(), "actor", "target"), errTest)
}

func TestService_Unlike(t *testing.T) {
	s, m := newTestService(t)

	expectProfiles(m)
	m.rs.EXPECT().DeleteEdge(gomock.Any(), entities.EdgeLikes, "actor", "target").Return(nil)
	m.rs.EXPECT().GetFameRating(gomock.Any(), "target").Return(10, nil)
	m.rs.EXPECT().SetFameRating(gomock.Any(), "target", 8).Return(nil)
	m.d.EXPECT().Dispatch(gomock.Any(), "target", entities.NotificationUnlike, "romeo has unliked you").Return(nil)
	m.p.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, s.Unlike(context.Background(), "actor", "target"))
}

func TestService_Unlike_Self(t *testing.T) {
	s, _ := newTestService(t)

	assert.ErrorIs(t, s.Unlike(context.Background(), "actor", "actor"), ErrSelfAction)
}

func TestService_View(t *testing.T) {
	s, m := newTestService(t)

	expectProfiles(m)
	m.rs.EXPECT().EdgeExists(gomock.Any(), entities.EdgeBlocks, "actor", "target").Return(false, nil)
	m.rs.EXPECT().EdgeExists(gomock.Any(), entities.EdgeBlocks, "target", "actor").Return(false, nil)
	m.rs.EXPECT().EdgeExists(gomock.Any(), entities.EdgeViewed, "actor", "target").Return(false, nil)
	m.rs.EXPECT().CreateEdge(gomock.Any(), entities.EdgeViewed, "actor", "target").Return(nil)
	m.d.EXPECT().Dispatch(gomock.Any(), "target", entities.NotificationView, "romeo has viewed your profile").Return(nil)
	m.p.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, s.View(context.Background(), "actor", "target"))
}

func TestService_View_Blocked(t *testing.T) {
	tt := []struct {
		name    string
		byActor bool
	}{
		{name: "blocked by actor", byActor: true},
		{name: "blocked by target", byActor: false},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s, m := newTestService(t)

			expectProfiles(m)
			m.rs.EXPECT().EdgeExists(gomock.Any(), entities.EdgeBlocks, "actor", "target").Return(tc.byActor, nil)
			if !tc.byActor {
				m.rs.EXPECT().EdgeExists(gomock.Any(), entities.EdgeBlocks, "target", "actor").Return(true, nil)
			}

			assert.ErrorIs(t, s.View(context.Background(), "actor", "target"), ErrBlocked)
		})
	}
}

func TestService_View_AlreadyViewed(t *testing.T) {
	s, m := newTestService(t)

	expectProfiles(m)
	m.rs.EXPECT().EdgeExists(gomock.Any(), entities.EdgeBlocks, "actor", "target").Return(false, nil)
	m.rs.EXPECT().EdgeExists(gomock.Any(), entities.EdgeBlocks, "target", "actor").Return(false, nil)
	m.rs.EXPECT().EdgeExists(gomock.Any(), entities.EdgeViewed, "actor", "target").Return(true, nil)

	assert.ErrorIs(t, s.View(context.Background(), "actor", "target"), ErrAlreadyViewed)
}

func TestService_Block(t *testing.T) {
	s, m := newTestService(t)

	m.rs.EXPECT().CreateEdge(gomock.Any(), entities.EdgeBlocks, "actor", "target").Return(nil)
	m.rs.EXPECT().GetFameRating(gomock.Any(), "target").Return(10, nil)
	m.rs.EXPECT().SetFameRating(gomock.Any(), "target", 5).Return(nil)
	m.p.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

	// note no Dispatch expectation, blocking is silent
	require.NoError(t, s.Block(context.Background(), "actor", "target"))
}

func TestService_Block_Self(t *testing.T) {
	s, _ := newTestService(t)

	// no edge and no fame change may be recorded for a self-block
	assert.ErrorIs(t, s.Block(context.Background(), "actor", "actor"), ErrSelfAction)
}

func TestService_Unblock(t *testing.T) {
	s, m := newTestService(t)

	m.rs.EXPECT().DeleteEdge(gomock.Any(), entities.EdgeBlocks, "actor", "target").Return(nil)
	m.rs.EXPECT().GetFameRating(gomock.Any(), "target").Return(5, nil)
	m.rs.EXPECT().SetFameRating(gomock.Any(), "target", 10).Return(nil)
	m.p.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, s.Unblock(context.Background(), "actor", "target"))
}

func TestService_Unblock_Self(t *testing.T) {
	s, _ := newTestService(t)

	assert.ErrorIs(t, s.Unblock(context.Background(), "actor", "actor"), ErrSelfAction)
}

func TestService_GetLiked(t *testing.T) {
	s, m := newTestService(t)

	expected := []entities.ShortProfile{targetProfile}
	m.rs.EXPECT().ListOutgoing(gomock.Any(), entities.EdgeLikes, "actor").Return(expected, nil)

	got, err := s.GetLiked(context.Background(), "actor")
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestService_GetViewers(t *testing.T) {
	s, m := newTestService(t)

	expected := []entities.ShortProfile{targetProfile}
	m.rs.EXPECT().ListIncoming(gomock.Any(), entities.EdgeViewed, "actor").Return(expected, nil)

	got, err := s.GetViewers(context.Background(), "actor")
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestService_GetMatched(t *testing.T) {
	s, m := newTestService(t)

	mutual := entities.ShortProfile{ID: "mutual", Username: "juliet"}
	oneWay := entities.ShortProfile{ID: "one-way", Username: "rosaline"}

	m.rs.EXPECT().ListOutgoing(gomock.Any(), entities.EdgeLikes, "actor").
		Return([]entities.ShortProfile{mutual, oneWay}, nil)
	m.rs.EXPECT().EdgeExists(gomock.Any(), entities.EdgeLikes, "mutual", "actor").Return(true, nil)
	m.rs.EXPECT().EdgeExists(gomock.Any(), entities.EdgeLikes, "one-way", "actor").Return(false, nil)

	got, err := s.GetMatched(context.Background(), "actor")
	require.NoError(t, err)
	assert.Equal(t, []entities.ShortProfile{mutual}, got)
}

func TestService_ListNotifications(t *testing.T) {
	s, m := newTestService(t)

	expected := []*entities.Notification{{ID: "n-1", UserID: "actor"}}
	m.ns.EXPECT().List(gomock.Any(), "actor").Return(expected, nil)

	got, err := s.ListNotifications(context.Background(), "actor")
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestService_MarkNotificationRead_NotFound(t *testing.T) {
	s, m := newTestService(t)

	m.ns.EXPECT().MarkRead(gomock.Any(), "actor", "n-1").Return(storage.ErrNotFound)

	assert.ErrorIs(t, s.MarkNotificationRead(context.Background(), "actor", "n-1"), ErrNotFound)
}

func TestService_DeleteNotification(t *testing.T) {
	s, m := newTestService(t)

	m.ns.EXPECT().Delete(gomock.Any(), "actor", "n-1").Return(nil)

	require.NoError(t, s.DeleteNotification(context.Background(), "actor", "n-1"))
}
