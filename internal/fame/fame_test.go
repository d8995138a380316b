package fame

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amoredev/amore/internal/storage"
)

var ctx = context.Background()
var errTest = errors.New("test")

func TestEngine_Apply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := storage.NewMockRelationshipStorage(ctrl)
	e := New(st)

	st.EXPECT().GetFameRating(ctx, "juliet").Return(10, nil)
	st.EXPECT().SetFameRating(ctx, "juliet", 12).Return(nil)

	rating, err := e.Apply(ctx, "juliet", 2)
	require.NoError(t, err)
	assert.Equal(t, 12, rating)
}

func TestEngine_Apply_Negative(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := storage.NewMockRelationshipStorage(ctrl)
	e := New(st)

	st.EXPECT().GetFameRating(ctx, "juliet").Return(1, nil)
	st.EXPECT().SetFameRating(ctx, "juliet", -4).Return(nil)

	rating, err := e.Apply(ctx, "juliet", -5)
	require.NoError(t, err)
	assert.Equal(t, -4, rating)
}

func TestEngine_Apply_GetError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := storage.NewMockRelationshipStorage(ctrl)
	e := New(st)

	st.EXPECT().GetFameRating(ctx, "juliet").Return(0, errTest)

	_, err := e.Apply(ctx, "juliet", 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errTest))
}

func TestEngine_Apply_SetError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := storage.NewMockRelationshipStorage(ctrl)
	e := New(st)

	st.EXPECT().GetFameRating(ctx, "juliet").Return(0, nil)
	st.EXPECT().SetFameRating(ctx, "juliet", 2).Return(errTest)

	_, err := e.Apply(ctx, "juliet", 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errTest))
}

type memStore struct {
	mu      sync.Mutex
	ratings map[string]int
}

func (s *memStore) GetFameRating(_ context.Context, id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ratings[id], nil
}

func (s *memStore) SetFameRating(_ context.Context, id string, rating int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ratings[id] = rating
	return nil
}

func TestEngine_Apply_Concurrent(t *testing.T) {
	st := &memStore{ratings: map[string]int{}}
	e := New(st)

	const n = 100

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := e.Apply(ctx, "juliet", 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	rating, err := st.GetFameRating(ctx, "juliet")
	require.NoError(t, err)
	assert.Equal(t, n, rating)
}

func TestEngine_Apply_ConcurrentManyProfiles(t *testing.T) {
	st := &memStore{ratings: map[string]int{}}
	e := New(st)

	// more profiles than stripes, so colliding ids share a lock
	const profiles = lockStripes * 4
	const perProfile = 5

	var wg sync.WaitGroup
	wg.Add(profiles * perProfile)
	for i := 0; i < profiles; i++ {
		id := fmt.Sprintf("profile-%d", i)
		for j := 0; j < perProfile; j++ {
			go func() {
				defer wg.Done()
				_, err := e.Apply(ctx, id, 1)
				assert.NoError(t, err)
			}()
		}
	}
	wg.Wait()

	for i := 0; i < profiles; i++ {
		rating, err := st.GetFameRating(ctx, fmt.Sprintf("profile-%d", i))
		require.NoError(t, err)
		assert.Equal(t, perProfile, rating)
	}
}
