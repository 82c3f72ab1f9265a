package upload

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/kurochkinivan/file_storage/internal/domain"
)

// Progress reported once the object is stored and once its metadata is saved.
// The storage write is a single call, so there is nothing finer to report.
const (
	progressStored    = 50
	progressPersisted = 90
)

type Controller struct {
	log       *slog.Logger
	progress  ProgressTracker
	storage   ObjectStorage
	fileSaver FileSaver
	validator *Validator
}

func NewController(
	log *slog.Logger,
	progress ProgressTracker,
	storage ObjectStorage,
	fileSaver FileSaver,
	validator *Validator,
) *Controller {
	return &Controller{
		log:       log,
		progress:  progress,
		storage:   storage,
		fileSaver: fileSaver,
		validator: validator,
	}
}

// Begin starts tracking an upload the client is about to send.
func (c *Controller) Begin(filename string) (string, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return "", domain.NewValidationError("Filename is required")
	}

	id := c.progress.Start(filename)

	c.log.Debug("upload tracking initialized",
		slog.String("upload_id", id),
		slog.String("filename", filename),
	)

	return id, nil
}

// Upload stores the payload and records its metadata. uploadID is the id
// obtained from Begin; when empty a new one is allocated. Every failure is
// reflected in the progress record when an id is known.
//
// The upload is not cancelled when the client goes away: ctx only carries
// values from here on.
func (c *Controller) Upload(ctx context.Context, uploadID string, payload *domain.Payload) (*domain.File, error) {
	ctx = context.WithoutCancel(ctx)

	log := c.log.With(slog.String("upload_id", uploadID))

	if payload == nil || payload.Body == nil {
		return nil, c.reject(ctx, log, uploadID, domain.NewValidationError("No file uploaded"))
	}

	log = log.With(slog.String("filename", payload.Filename))

	contentType, body, err := c.validator.Validate(payload)
	if err != nil {
		return nil, c.reject(ctx, log, uploadID, err)
	}

	trackingID := uploadID
	if trackingID == "" {
		trackingID = c.progress.Start(payload.Filename)
		log = log.With(slog.String("upload_id", trackingID))
	}

	key := objectKey(payload.Filename)

	log.DebugContext(ctx, "putting object to storage", slog.String("key", key))

	if err := c.storage.Put(ctx, key, body, contentType); err != nil {
		return nil, c.reject(ctx, log, trackingID, fmt.Errorf("%w: failed to put object: %w", domain.ErrStorage, err))
	}

	c.progress.UpdateProgress(trackingID, progressStored)

	file := &domain.File{
		StorageKey:   key,
		Bucket:       c.storage.Bucket(),
		OriginalName: payload.Filename,
		MimeType:     contentType,
		Size:         payload.Size,
		UploadID:     trackingID,
	}

	if err := c.fileSaver.SaveFile(ctx, file); err != nil {
		c.removeOrphan(ctx, log, key)
		return nil, c.reject(ctx, log, trackingID, fmt.Errorf("%w: failed to save file: %w", domain.ErrPersistence, err))
	}

	c.progress.UpdateProgress(trackingID, progressPersisted)
	c.progress.Complete(trackingID)

	log.InfoContext(ctx, "file uploaded",
		slog.String("file_id", file.ID),
		slog.Int64("size", file.Size),
	)

	return file, nil
}

// Reject fails an upload whose request could not be read far enough to reach
// Upload, so a polling client still sees a terminal record.
func (c *Controller) Reject(ctx context.Context, uploadID string, err error) error {
	ctx = context.WithoutCancel(ctx)

	return c.reject(ctx, c.log.With(slog.String("upload_id", uploadID)), uploadID, err)
}

func (c *Controller) reject(ctx context.Context, log *slog.Logger, trackingID string, err error) error {
	log.ErrorContext(ctx, "upload failed", slog.String("err", err.Error()))

	if trackingID != "" {
		c.progress.Fail(trackingID, failureReason(err))
	}

	return err
}

// removeOrphan deletes an object whose metadata could not be saved.
// The upload has failed already, so errors are only logged.
func (c *Controller) removeOrphan(ctx context.Context, log *slog.Logger, key string) {
	if err := c.storage.Delete(ctx, key); err != nil {
		log.ErrorContext(ctx, "failed to delete orphaned object",
			slog.String("key", key),
			slog.String("err", err.Error()),
		)
		return
	}

	log.DebugContext(ctx, "orphaned object deleted", slog.String("key", key))
}

// failureReason is the cause a polling client sees. The wrapped chain with
// keys and driver messages stays in the log.
func failureReason(err error) string {
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Reason
	case errors.Is(err, domain.ErrStorage):
		return "Storage Error"
	case errors.Is(err, domain.ErrPersistence):
		return "Failed to save file metadata"
	default:
		return "Upload failed"
	}
}

func objectKey(filename string) string {
	return uuid.NewString() + filepath.Ext(filename)
}
