package progress

import (
	"context"
	"log/slog"
	"time"
)

const (
	DefaultSweepInterval = time.Hour
	DefaultRetention     = 24 * time.Hour
)

type Sweeper struct {
	log       *slog.Logger
	store     *Store
	interval  time.Duration
	retention time.Duration
}

func NewSweeper(log *slog.Logger, store *Store, interval, retention time.Duration) *Sweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	if retention <= 0 {
		retention = DefaultRetention
	}

	return &Sweeper{
		log:       log,
		store:     store,
		interval:  interval,
		retention: retention,
	}
}

func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.log.DebugContext(ctx, "sweep cycle started")

			evicted := s.store.Sweep(s.retention)
			if evicted > 0 {
				s.log.InfoContext(ctx, "evicted stale upload records",
					slog.Int("evicted", evicted),
					slog.Int("remaining", s.store.Len()),
				)
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
