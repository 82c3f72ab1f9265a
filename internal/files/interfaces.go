package files

import (
	"context"
	"time"

	"github.com/kurochkinivan/file_storage/internal/domain"
)

type FilesRepository interface {
	Files(ctx context.Context, limit, offset uint64) ([]*domain.File, int, error)
	FileByID(ctx context.Context, id string) (*domain.File, error)
	DeleteFile(ctx context.Context, id string) error
}

type ObjectStorage interface {
	Delete(ctx context.Context, key string) error
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
