// Package storage opens the object storage backend selected in the config.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/kurochkinivan/file_storage/internal/config"
	"github.com/kurochkinivan/file_storage/internal/storage/gcs"
	"github.com/kurochkinivan/file_storage/internal/storage/s3"
)

type Backend interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	Bucket() string
	Close() error
}

var (
	_ Backend = (*s3.Storage)(nil)
	_ Backend = (*gcs.Storage)(nil)
)

func Open(ctx context.Context, cfg config.Storage) (Backend, error) {
	switch cfg.Driver {
	case config.StorageDriverS3:
		backend, err := s3.New(ctx, cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("failed to open s3 storage: %w", err)
		}
		return backend, nil

	case config.StorageDriverGCS:
		backend, err := gcs.New(ctx, cfg.GCS)
		if err != nil {
			return nil, fmt.Errorf("failed to open gcs storage: %w", err)
		}
		return backend, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
