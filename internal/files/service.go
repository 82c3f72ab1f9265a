package files

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kurochkinivan/file_storage/internal/domain"
)

const (
	DefaultDownloadURLTTL = time.Hour
	viewURLTTL            = 10 * time.Minute
)

type Service struct {
	log            *slog.Logger
	repo           FilesRepository
	storage        ObjectStorage
	transactor     Transactor
	downloadURLTTL time.Duration
}

func NewService(
	log *slog.Logger,
	repo FilesRepository,
	storage ObjectStorage,
	transactor Transactor,
	downloadURLTTL time.Duration,
) *Service {
	if downloadURLTTL <= 0 {
		downloadURLTTL = DefaultDownloadURLTTL
	}

	return &Service{
		log:            log,
		repo:           repo,
		storage:        storage,
		transactor:     transactor,
		downloadURLTTL: downloadURLTTL,
	}
}

// Page is a slice of the catalog ordered from newest to oldest.
type Page struct {
	Files []*domain.File
	Total int
}

func (s *Service) Files(ctx context.Context, page, limit uint64) (*Page, error) {
	offset := (page - 1) * limit

	files, total, err := s.repo.Files(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	return &Page{Files: files, Total: total}, nil
}

func (s *Service) File(ctx context.Context, id string) (*domain.File, error) {
	file, err := s.repo.FileByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get file %q: %w", id, err)
	}

	return file, nil
}

// FileDetails is a file with a short-lived link suitable for previews.
type FileDetails struct {
	*domain.File
	ViewURL string `json:"view_url,omitempty"`
}

// Details returns the file record. Images also get a view URL.
func (s *Service) Details(ctx context.Context, id string) (*FileDetails, error) {
	file, err := s.File(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &FileDetails{File: file}
	if !file.IsImage() {
		return details, nil
	}

	details.ViewURL, err = s.storage.PresignedURL(ctx, file.StorageKey, viewURLTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to presign view url: %w", domain.ErrStorage, err)
	}

	return details, nil
}

func (s *Service) DownloadURL(ctx context.Context, id string) (string, error) {
	file, err := s.File(ctx, id)
	if err != nil {
		return "", err
	}

	url, err := s.storage.PresignedURL(ctx, file.StorageKey, s.downloadURLTTL)
	if err != nil {
		return "", fmt.Errorf("%w: failed to presign download url: %w", domain.ErrStorage, err)
	}

	return url, nil
}

// Delete removes the metadata row, then the object once the row deletion
// has committed. A failed object delete leaves an orphaned object, which is
// logged with its key: the file is already gone from the catalog.
func (s *Service) Delete(ctx context.Context, id string) error {
	var file *domain.File

	err := s.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		f, err := s.repo.FileByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get file %q: %w", id, err)
		}

		if err := s.repo.DeleteFile(ctx, f.ID); err != nil {
			return fmt.Errorf("%w: failed to delete file %q: %w", domain.ErrPersistence, id, err)
		}

		file = f

		return nil
	})
	if err != nil {
		return err
	}

	log := s.log.With(
		slog.String("file_id", file.ID),
		slog.String("key", file.StorageKey),
	)

	if err := s.storage.Delete(ctx, file.StorageKey); err != nil {
		log.ErrorContext(ctx, "file deleted, object left orphaned", slog.String("err", err.Error()))
		return nil
	}

	log.InfoContext(ctx, "file deleted")

	return nil
}
