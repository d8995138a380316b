package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/amoredev/amore/internal/entities"
	"github.com/amoredev/amore/internal/storage"
)

// photoMaxDimension caps the largest side of a stored photo.
const photoMaxDimension = 1280

// ReorderPhotos applies the permutation to the actor's photo slots.
func (s *service) ReorderPhotos(ctx context.Context, actorID string, order [entities.PhotoSlotsCount]int) error {
	var seen [entities.PhotoSlotsCount]bool
	for _, v := range order {
		if v < 0 || v >= entities.PhotoSlotsCount || seen[v] {
			return fmt.Errorf("%w: order must be a permutation of photo slots", ErrInvalidRequest)
		}
		seen[v] = true
	}

	photos, err := s.getPhotos(ctx, actorID)
	if err != nil {
		return err
	}

	var next entities.PhotoSlots
	for i, v := range order {
		next[i] = photos[v]
	}

	if err := s.rs.SetPhotos(ctx, actorID, next); err != nil {
		return fmt.Errorf("failed to set photos: %w", err)
	}

	return nil
}

// DeletePhoto removes the stored file and clears the slot.
func (s *service) DeletePhoto(ctx context.Context, actorID string, index int) error {
	if index < 0 || index >= entities.PhotoSlotsCount {
		return fmt.Errorf("%w: photo index %d is out of range [0, %d]", ErrInvalidRequest, index, entities.PhotoSlotsCount-1)
	}

	photos, err := s.getPhotos(ctx, actorID)
	if err != nil {
		return err
	}

	if photos[index] == "" {
		return ErrNoPhoto
	}

	if err := s.fs.Delete(ctx, photoPath(actorID, photos[index])); err != nil {
		return fmt.Errorf("failed to delete photo file: %w", err)
	}

	if err := s.rs.SetPhotoAt(ctx, actorID, index, ""); err != nil {
		return fmt.Errorf("failed to clear photo slot: %w", err)
	}

	return nil
}

// UploadPhoto normalizes the image, stores it and writes its name into the slot.
func (s *service) UploadPhoto(ctx context.Context, actorID string, index int, r io.Reader) (string, error) {
	if index < 0 || index >= entities.PhotoSlotsCount {
		return "", fmt.Errorf("%w: photo index %d is out of range [0, %d]", ErrInvalidRequest, index, entities.PhotoSlotsCount-1)
	}

	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("%w: failed to decode image", ErrInvalidRequest)
	}

	if img.Bounds().Dx() > photoMaxDimension || img.Bounds().Dy() > photoMaxDimension {
		img = imaging.Fit(img, photoMaxDimension, photoMaxDimension, imaging.Lanczos)
	}

	buf := bytes.Buffer{}
	if err := imaging.Encode(&buf, img, imaging.JPEG); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	photos, err := s.getPhotos(ctx, actorID)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s.jpg", uuid.New().String())

	if _, err := s.fs.Write(ctx, &buf, int64(buf.Len()), photoPath(actorID, name), "image/jpeg"); err != nil {
		return "", fmt.Errorf("failed to write photo file: %w", err)
	}

	if err := s.rs.SetPhotoAt(ctx, actorID, index, name); err != nil {
		return "", fmt.Errorf("failed to set photo slot: %w", err)
	}

	// the replaced file is already unreferenced, losing it is harmless
	if old := photos[index]; old != "" {
		if err := s.fs.Delete(ctx, photoPath(actorID, old)); err != nil {
			logrus.WithError(err).WithField("photo", old).Error("failed to delete replaced photo file")
		}
	}

	return name, nil
}

func (s *service) getPhotos(ctx context.Context, actorID string) (entities.PhotoSlots, error) {
	photos, err := s.rs.GetPhotos(ctx, actorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return entities.PhotoSlots{}, ErrNotFound
		}
		return entities.PhotoSlots{}, fmt.Errorf("failed to get photos: %w", err)
	}
	return photos, nil
}

func photoPath(owner, name string) string {
	return fmt.Sprintf("photos/%s/%s", owner, name)
}
