package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amoredev/amore/internal/entities"
)

func TestService_AddTag(t *testing.T) {
	s, m := newTestService(t)

	m.rs.EXPECT().GetTagCount(gomock.Any(), "actor").Return(testConfig.MaxTags-1, nil)
	m.rs.EXPECT().AddTag(gomock.Any(), "actor", "cinema").Return(nil)

	require.NoError(t, s.AddTag(context.Background(), "actor", "  cinema "))
}

func TestService_AddTag_Limit(t *testing.T) {
	s, m := newTestService(t)

	m.rs.EXPECT().GetTagCount(gomock.Any(), "actor").Return(testConfig.MaxTags, nil)

	assert.ErrorIs(t, s.AddTag(context.Background(), "actor", "cinema"), ErrTagLimit)
}

func TestService_AddTag_Empty(t *testing.T) {
	s, _ := newTestService(t)

	assert.ErrorIs(t, s.AddTag(context.Background(), "actor", "   "), ErrInvalidRequest)
}

func TestService_RemoveTag(t *testing.T) {
	s, m := newTestService(t)

	m.rs.EXPECT().RemoveTag(gomock.Any(), "actor", "cinema").Return(nil)

	require.NoError(t, s.RemoveTag(context.Background(), "actor", "cinema"))
}

func TestService_ListTags(t *testing.T) {
	s, m := newTestService(t)

	m.rs.EXPECT().ListTags(gomock.Any(), "actor").Return([]string{"cinema", "hiking"}, nil)

	got, err := s.ListTags(context.Background(), "actor")
	require.NoError(t, err)
	assert.Equal(t, []string{"cinema", "hiking"}, got)
}

func TestService_PopularTags(t *testing.T) {
	s, m := newTestService(t)

	expected := []entities.TagCount{
		{Name: "cinema", Count: 10},
		{Name: "hiking", Count: 7},
	}

	// the second call within the cache period must not hit the storage
	m.rs.EXPECT().ListPopularTags(gomock.Any(), 2).Return(expected, nil).Times(1)

	for i := 0; i < 2; i++ {
		got, err := s.PopularTags(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	}
}

func TestService_PopularTags_LimitOutOfRange(t *testing.T) {
	s, _ := newTestService(t)

	for _, limit := range []int{0, -1, testConfig.PopularTagsMaxLimit + 1} {
		_, err := s.PopularTags(context.Background(), limit)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRequest)
		assert.Contains(t, err.Error(), fmt.Sprintf("limit %d", limit))
	}
}
