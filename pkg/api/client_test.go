package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) Amore {
	s := httptest.NewServer(h)
	t.Cleanup(s.Close)

	return NewClient(s.URL, "token")
}

func TestClient_Like(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/profiles/target/like", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"liked"}`)) // nolint
	})

	require.NoError(t, c.Like(context.Background(), "target"))
}

func TestClient_Like_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	assert.ErrorIs(t, c.Like(context.Background(), "target"), ErrNotFound)
}

func TestClient_Like_EmptyTarget(t *testing.T) {
	c := NewClient("http://localhost", "token")

	assert.ErrorIs(t, c.Like(context.Background(), ""), ErrInvalidRequest)
}

func TestClient_View_Forbidden(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	assert.ErrorIs(t, c.View(context.Background(), "target"), ErrForbidden)
}

func TestClient_Matches(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/profiles/me/matches", r.URL.Path)

		w.Write([]byte(`[{"id":"p-1","username":"juliet","fameRating":12}]`)) // nolint
	})

	got, err := c.Matches(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, Profile{ID: "p-1", Username: "juliet", FameRating: 12}, got[0])
}

func TestClient_AddTag(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/profiles/me/tags", r.URL.Path)

		var req TagRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "cinema", req.Name)

		w.WriteHeader(http.StatusCreated)
	})

	require.NoError(t, c.AddTag(context.Background(), "cinema"))
}

func TestClient_AddTag_Empty(t *testing.T) {
	c := NewClient("http://localhost", "token")

	assert.ErrorIs(t, c.AddTag(context.Background(), "  "), ErrInvalidRequest)
}

func TestClient_PopularTags(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/tags/popular", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("limit"))

		w.Write([]byte(`[{"name":"cinema","count":10}]`)) // nolint
	})

	got, err := c.PopularTags(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []TagCount{{Name: "cinema", Count: 10}}, got)
}

func TestClient_ReorderPhotos_NotPermutation(t *testing.T) {
	c := NewClient("http://localhost", "token")

	assert.ErrorIs(t, c.ReorderPhotos(context.Background(), [PhotoSlotsCount]int{0, 0, 1, 2, 3}), ErrInvalidRequest)
}

func TestClient_UploadPhoto(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/profiles/me/photos/1", r.URL.Path)

		f, _, err := r.FormFile("photo")
		require.NoError(t, err)
		defer f.Close() // nolint

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"name":"abc.jpg"}`)) // nolint
	})

	name, err := c.UploadPhoto(context.Background(), 1, strings.NewReader("image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "abc.jpg", name)
}

func TestClient_DeleteNotification(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v1/profiles/me/notifications/n-1", r.URL.Path)

		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.DeleteNotification(context.Background(), "n-1"))
}
