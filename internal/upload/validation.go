package upload

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/kurochkinivan/file_storage/internal/domain"
)

const DefaultMaxFileSize int64 = 10 << 20

// sniffLen is how many leading bytes are inspected when the client did not
// send a usable content type.
const sniffLen = 3072

const octetStream = "application/octet-stream"

var allowedFileTypes = map[string][]string{
	"image/jpeg":       {".jpg", ".jpeg"},
	"image/png":        {".png"},
	"image/gif":        {".gif"},
	"application/pdf":  {".pdf"},
	"text/plain":       {".txt"},
	"application/json": {".json"},
	"application/zip":  {".zip"},
}

var extensionPattern = regexp.MustCompile(`^\.[0-9a-z]+$`)

type Validator struct {
	maxSize int64
}

func NewValidator(maxSize int64) *Validator {
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	return &Validator{maxSize: maxSize}
}

func (v *Validator) MaxSize() int64 {
	return v.maxSize
}

// Validate checks size, content type and extension of p. It returns the
// content type to store the object with and the body to read it from.
func (v *Validator) Validate(p *domain.Payload) (string, io.Reader, error) {
	if p.Size > v.maxSize {
		return "", nil, domain.NewValidationError("File too large")
	}

	body := p.Body
	contentType := baseMediaType(p.ContentType)

	if contentType == "" || contentType == octetStream {
		head := make([]byte, sniffLen)

		n, err := io.ReadFull(p.Body, head)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			return "", nil, domain.NewValidationError("Unable to read file content")
		}
		head = head[:n]

		contentType = detectContentType(head)
		body = io.MultiReader(bytes.NewReader(head), p.Body)
	}

	extensions, ok := allowedFileTypes[contentType]
	if !ok {
		return "", nil, domain.NewValidationError("File type not allowed")
	}

	ext := strings.ToLower(filepath.Ext(p.Filename))
	if !extensionPattern.MatchString(ext) {
		return "", nil, domain.NewValidationError("Invalid file name")
	}

	for _, allowed := range extensions {
		if ext == allowed {
			return contentType, body, nil
		}
	}

	return "", nil, domain.NewValidationError("File extension does not match content type")
}

// detectContentType walks from the most specific detected type to its
// parents and picks the first allowed one.
func detectContentType(head []byte) string {
	detected := mimetype.Detect(head)

	for m := detected; m != nil; m = m.Parent() {
		if _, ok := allowedFileTypes[baseMediaType(m.String())]; ok {
			return baseMediaType(m.String())
		}
	}

	return baseMediaType(detected.String())
}

func baseMediaType(contentType string) string {
	if contentType == "" {
		return ""
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}

	return mediaType
}
