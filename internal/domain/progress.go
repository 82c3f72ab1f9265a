package domain

import "time"

// UploadProgress is a snapshot of an upload as seen by polling clients.
type UploadProgress struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Progress   int       `json:"progress"`
	Status     Status    `json:"status"`
	Error      string    `json:"error,omitempty"`
	StartTime  time.Time `json:"start_time"`
	LastUpdate time.Time `json:"last_update"`
}
