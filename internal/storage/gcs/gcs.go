// Package gcs stores objects in Google Cloud Storage.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
	"github.com/kurochkinivan/file_storage/internal/config"
	"google.golang.org/api/option"
)

type Storage struct {
	client *storage.Client
	bucket string
}

func New(ctx context.Context, cfg config.GCS, opts ...option.ClientOption) (*Storage, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("gcs bucket is required")
	}

	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gcs client: %w", err)
	}

	return &Storage{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

func (s *Storage) Bucket() string {
	return s.bucket
}

func (s *Storage) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	// cancelling the writer's context aborts the upload instead of committing a partial object
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, body); err != nil {
		cancel()
		_ = w.Close()
		return fmt.Errorf("failed to write object %q: %w", key, err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize object %q: %w", key, err)
	}

	return nil
}

// Delete removes the object. A missing object is not an error.
func (s *Storage) Delete(ctx context.Context, key string) error {
	err := s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete object %q: %w", key, err)
	}

	return nil
}

func (s *Storage) PresignedURL(_ context.Context, key string, ttl time.Duration) (string, error) {
	url, err := s.client.Bucket(s.bucket).SignedURL(key, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: time.Now().Add(ttl),
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign url for object %q: %w", key, err)
	}

	return url, nil
}

func (s *Storage) Close() error {
	return s.client.Close()
}
