package v1

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	"github.com/kurochkinivan/file_storage/internal/domain"
)

const (
	uploadIDField = "upload_id"
	fileField     = "file"
	maxFieldSize  = 1 << 10
)

// uploadForm is a multipart upload read part by part. The file is spooled to
// a temporary file so that fields sent after it are still read.
type uploadForm struct {
	uploadID    string
	filename    string
	contentType string
	size        int64
	file        *os.File
}

// readUploadForm never returns a nil form: whatever upload id was read before
// a failure is kept so the caller can fail the tracked upload.
func readUploadForm(r *http.Request, maxFileSize int64) (*uploadForm, error) {
	form := &uploadForm{uploadID: r.URL.Query().Get(uploadIDField)}

	mr, err := r.MultipartReader()
	if err != nil {
		return form, domain.NewValidationError("Invalid multipart form")
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return form, nil
		}
		if err != nil {
			return form, formError(err)
		}

		err = form.readPart(part, maxFileSize)
		_ = part.Close()
		if err != nil {
			return form, err
		}
	}
}

func (f *uploadForm) readPart(part *multipart.Part, maxFileSize int64) error {
	switch {
	case part.FormName() == uploadIDField:
		value, err := io.ReadAll(io.LimitReader(part, maxFieldSize))
		if err != nil {
			return formError(err)
		}
		f.uploadID = strings.TrimSpace(string(value))
		return nil

	case part.FormName() == fileField && part.FileName() != "":
		if f.file != nil {
			return domain.NewValidationError("Only one file can be uploaded")
		}
		return f.spool(part, maxFileSize)

	default:
		// unknown fields and an empty file input
		if _, err := io.Copy(io.Discard, part); err != nil {
			return formError(err)
		}
		return nil
	}
}

// spool keeps at most maxFileSize+1 bytes of the file. The rest of an
// oversize file is drained, and the recorded size lets the validator reject it.
func (f *uploadForm) spool(part *multipart.Part, maxFileSize int64) error {
	tmp, err := os.CreateTemp("", "upload-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	f.file = tmp
	f.filename = part.FileName()
	f.contentType = part.Header.Get("Content-Type")

	f.size, err = io.Copy(tmp, io.LimitReader(part, maxFileSize+1))
	if err != nil {
		return formError(err)
	}

	if f.size > maxFileSize {
		if _, err := io.Copy(io.Discard, part); err != nil {
			return formError(err)
		}
	}

	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind temp file: %w", err)
	}

	return nil
}

func (f *uploadForm) payload() *domain.Payload {
	if f.file == nil {
		return nil
	}

	return &domain.Payload{
		Filename:    f.filename,
		ContentType: f.contentType,
		Size:        f.size,
		Body:        f.file,
	}
}

func (f *uploadForm) Close() error {
	if f.file == nil {
		return nil
	}

	return errors.Join(f.file.Close(), os.Remove(f.file.Name()))
}

func formError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return domain.NewValidationError("File too large")
	}

	return domain.NewValidationError("Invalid multipart form")
}
