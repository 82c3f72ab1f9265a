package upload

import (
	"context"
	"io"

	"github.com/kurochkinivan/file_storage/internal/domain"
)

type ProgressTracker interface {
	Start(filename string) string
	UpdateProgress(id string, percent int)
	Complete(id string)
	Fail(id, errorMessage string)
}

type ObjectStorage interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	Bucket() string
}

type FileSaver interface {
	SaveFile(ctx context.Context, file *domain.File) error
}
