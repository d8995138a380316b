// Package s3 contains implementation of FileStorage interface with any s3-compatible storage.
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"

	"github.com/amoredev/amore/internal/storage"
)

type s3 struct {
	c *minio.Client
	b string
}

var _ storage.FileStorage = s3{}

// NewStorage returns s3 implementation of FileStorage interface.
func NewStorage(client *minio.Client, bucket string) (storage.FileStorage, error) {
	logrus.WithField("bucket", bucket).Debug("check bucket existence")
	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, err
	}

	if !exists {
		logrus.WithField("bucket", bucket).Info("create bucket in s3 storage")
		if err := client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return s3{
		c: client,
		b: bucket,
	}, nil
}

// Ping checks availability of s3 storage.
func (s s3) Ping(ctx context.Context) error {
	if _, err := s.c.ListBuckets(ctx); err != nil {
		return errors.New("connection with S3 seems broken") // nolint:goerr113
	}
	return nil
}

// Write puts photo into s3 storage and returns its public URL.
func (s s3) Write(ctx context.Context, r io.Reader, size int64, path, contentType string) (string, error) {
	i, err := s.c.PutObject(ctx, s.b, path, r, size, minio.PutObjectOptions{DisableMultipart: true, ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to put object: %w", err)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", i.Bucket, i.Key), nil
}

// Delete removes photo from s3 storage.
func (s s3) Delete(ctx context.Context, path string) error {
	if err := s.c.RemoveObject(ctx, s.b, path, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object: %w", err)
	}
	return nil
}
