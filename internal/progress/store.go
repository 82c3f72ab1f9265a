// Package progress keeps the in-memory state of uploads that clients poll
// while a file travels to object storage.
package progress

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/file_storage/internal/domain"
)

// Store maps upload ids to their progress. Records are locked one by one,
// so updates of different uploads never wait on each other.
type Store struct {
	records sync.Map // id -> *record
	now     func() time.Time
}

type record struct {
	mu       sync.Mutex
	progress domain.UploadProgress
}

type Option func(*Store)

// WithClock overrides the time source used for start and update stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start registers a pending upload and returns its id.
func (s *Store) Start(filename string) string {
	now := s.now()
	id := uuid.NewString()

	s.records.Store(id, &record{
		progress: domain.UploadProgress{
			ID:         id,
			Filename:   filename,
			Progress:   0,
			Status:     domain.StatusPending,
			StartTime:  now,
			LastUpdate: now,
		},
	})

	return id
}

// UpdateProgress sets the percentage of an upload. Anything below 100 means
// the upload is still in flight, 100 means it is being processed.
// Unknown ids are ignored: the record may have been swept already.
func (s *Store) UpdateProgress(id string, percent int) {
	percent = min(max(percent, 0), 100)

	s.mutate(id, func(p *domain.UploadProgress) {
		p.Progress = percent
		if percent < 100 {
			p.Status = domain.StatusUploading
		} else {
			p.Status = domain.StatusProcessing
		}
	})
}

func (s *Store) Complete(id string) {
	s.mutate(id, func(p *domain.UploadProgress) {
		p.Progress = 100
		p.Status = domain.StatusCompleted
	})
}

func (s *Store) Fail(id, errorMessage string) {
	s.mutate(id, func(p *domain.UploadProgress) {
		p.Status = domain.StatusFailed
		p.Error = errorMessage
	})
}

// Progress returns a copy of the record. A missing record is a regular
// outcome for expired or made-up ids.
func (s *Store) Progress(id string) (domain.UploadProgress, bool) {
	v, ok := s.records.Load(id)
	if !ok {
		return domain.UploadProgress{}, false
	}

	r := v.(*record)
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.progress, true
}

// Sweep evicts every record not updated within retention, whatever its
// status, and reports how many were removed.
func (s *Store) Sweep(retention time.Duration) int {
	cutoff := s.now().Add(-retention)

	evicted := 0
	s.records.Range(func(id, v any) bool {
		r := v.(*record)

		r.mu.Lock()
		stale := r.progress.LastUpdate.Before(cutoff)
		r.mu.Unlock()

		if stale && s.records.CompareAndDelete(id, v) {
			evicted++
		}

		return true
	})

	return evicted
}

func (s *Store) Len() int {
	n := 0
	s.records.Range(func(_, _ any) bool {
		n++
		return true
	})

	return n
}

func (s *Store) mutate(id string, fn func(p *domain.UploadProgress)) {
	v, ok := s.records.Load(id)
	if !ok {
		return
	}

	r := v.(*record)
	r.mu.Lock()
	defer r.mu.Unlock()

	// completed and failed uploads are final
	if r.progress.Status.Terminal() {
		return
	}

	fn(&r.progress)
	r.progress.LastUpdate = s.now()
}
