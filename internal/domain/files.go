package domain

import (
	"io"
	"strings"
	"time"
)

type File struct {
	ID           string    `db:"id"            json:"id"          csv:"id"`
	StorageKey   string    `db:"storage_key"   json:"-"           csv:"storage_key"`
	Bucket       string    `db:"bucket"        json:"-"           csv:"bucket"`
	OriginalName string    `db:"original_name" json:"filename"    csv:"filename"`
	MimeType     string    `db:"mime_type"     json:"mime_type"   csv:"mime_type"`
	Size         int64     `db:"size"          json:"size"        csv:"size"`
	UploadID     string    `db:"upload_id"     json:"upload_id"   csv:"upload_id"`
	UploadedAt   time.Time `db:"uploaded_at"   json:"upload_date" csv:"upload_date"`
}

func (f *File) IsImage() bool {
	return strings.HasPrefix(f.MimeType, "image/")
}

// Payload is an uploaded file body as received from the client.
type Payload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}
