package service

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amoredev/amore/internal/entities"
	"github.com/amoredev/amore/internal/storage"
)

func testPhotoBytes(t *testing.T, w, h int) io.Reader {
	t.Helper()

	buf := bytes.Buffer{}
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))

	return &buf
}

func TestService_ReorderPhotos(t *testing.T) {
	s, m := newTestService(t)

	m.rs.EXPECT().GetPhotos(gomock.Any(), "actor").
		Return(entities.PhotoSlots{"a.jpg", "b.jpg", "", "d.jpg", ""}, nil)
	m.rs.EXPECT().SetPhotos(gomock.Any(), "actor",
		entities.PhotoSlots{"", "d.jpg", "", "b.jpg", "a.jpg"}).Return(nil)

	require.NoError(t, s.ReorderPhotos(context.Background(), "actor", [entities.PhotoSlotsCount]int{4, 3, 2, 1, 0}))
}

func TestService_ReorderPhotos_NotPermutation(t *testing.T) {
	tt := []struct {
		name  string
		order [entities.PhotoSlotsCount]int
	}{
		{name: "duplicate index", order: [entities.PhotoSlotsCount]int{0, 0, 2, 3, 4}},
		{name: "out of range", order: [entities.PhotoSlotsCount]int{0, 1, 2, 3, 5}},
		{name: "negative", order: [entities.PhotoSlotsCount]int{-1, 1, 2, 3, 4}},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestService(t)

			assert.ErrorIs(t, s.ReorderPhotos(context.Background(), "actor", tc.order), ErrInvalidRequest)
		})
	}
}

func TestService_DeletePhoto(t *testing.T) {
	s, m := newTestService(t)

	gomock.InOrder(
		m.rs.EXPECT().GetPhotos(gomock.Any(), "actor").
			Return(entities.PhotoSlots{"a.jpg", "b.jpg", "", "", ""}, nil),
		m.fs.EXPECT().Delete(gomock.Any(), "photos/actor/b.jpg").Return(nil),
		m.rs.EXPECT().SetPhotoAt(gomock.Any(), "actor", 1, "").Return(nil),
	)

	require.NoError(t, s.DeletePhoto(context.Background(), "actor", 1))
}

func TestService_DeletePhoto_EmptySlot(t *testing.T) {
	s, m := newTestService(t)

	m.rs.EXPECT().GetPhotos(gomock.Any(), "actor").
		Return(entities.PhotoSlots{"a.jpg", "", "", "", ""}, nil)

	assert.ErrorIs(t, s.DeletePhoto(context.Background(), "actor", 1), ErrNoPhoto)
}

func TestService_DeletePhoto_IndexOutOfRange(t *testing.T) {
	s, _ := newTestService(t)

	assert.ErrorIs(t, s.DeletePhoto(context.Background(), "actor", entities.PhotoSlotsCount), ErrInvalidRequest)
	assert.ErrorIs(t, s.DeletePhoto(context.Background(), "actor", -1), ErrInvalidRequest)
}

func TestService_UploadPhoto(t *testing.T) {
	s, m := newTestService(t)

	m.rs.EXPECT().GetPhotos(gomock.Any(), "actor").Return(entities.PhotoSlots{}, nil)

	var written string
	m.fs.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "image/jpeg").DoAndReturn(
		func(_ context.Context, r io.Reader, size int64, path, _ string) (string, error) {
			b, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.EqualValues(t, len(b), size)

			assert.True(t, strings.HasPrefix(path, "photos/actor/"))
			assert.True(t, strings.HasSuffix(path, ".jpg"))
			written = strings.TrimPrefix(path, "photos/actor/")

			return path, nil
		})
	m.rs.EXPECT().SetPhotoAt(gomock.Any(), "actor", 0, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ int, name string) error {
			assert.Equal(t, written, name)
			return nil
		})

	name, err := s.UploadPhoto(context.Background(), "actor", 0, testPhotoBytes(t, 10, 10))
	require.NoError(t, err)
	assert.Equal(t, written, name)
}

func TestService_UploadPhoto_ReplacesOld(t *testing.T) {
	s, m := newTestService(t)

	m.rs.EXPECT().GetPhotos(gomock.Any(), "actor").
		Return(entities.PhotoSlots{"", "", "old.jpg", "", ""}, nil)
	m.fs.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "image/jpeg").Return("", nil)
	m.rs.EXPECT().SetPhotoAt(gomock.Any(), "actor", 2, gomock.Any()).Return(nil)
	m.fs.EXPECT().Delete(gomock.Any(), "photos/actor/old.jpg").Return(nil)

	_, err := s.UploadPhoto(context.Background(), "actor", 2, testPhotoBytes(t, 10, 10))
	require.NoError(t, err)
}

func TestService_UploadPhoto_Resizes(t *testing.T) {
	s, m := newTestService(t)

	m.rs.EXPECT().GetPhotos(gomock.Any(), "actor").Return(entities.PhotoSlots{}, nil)
	m.fs.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "image/jpeg").DoAndReturn(
		func(_ context.Context, r io.Reader, _ int64, path, _ string) (string, error) {
			img, err := jpeg.Decode(r)
			require.NoError(t, err)
			assert.LessOrEqual(t, img.Bounds().Dx(), photoMaxDimension)
			assert.LessOrEqual(t, img.Bounds().Dy(), photoMaxDimension)
			return path, nil
		})
	m.rs.EXPECT().SetPhotoAt(gomock.Any(), "actor", 0, gomock.Any()).Return(nil)

	_, err := s.UploadPhoto(context.Background(), "actor", 0, testPhotoBytes(t, 2000, 500))
	require.NoError(t, err)
}

func TestService_UploadPhoto_NotImage(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.UploadPhoto(context.Background(), "actor", 0, strings.NewReader("not an image"))
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestService_UploadPhoto_ProfileNotFound(t *testing.T) {
	s, m := newTestService(t)

	m.rs.EXPECT().GetPhotos(gomock.Any(), "actor").Return(entities.PhotoSlots{}, storage.ErrNotFound)

	_, err := s.UploadPhoto(context.Background(), "actor", 0, testPhotoBytes(t, 10, 10))
	assert.ErrorIs(t, err, ErrNotFound)
}
