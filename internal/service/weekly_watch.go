package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/zeitrechner/internal/domain"
	"github.com/alexanderramin/zeitrechner/internal/repository"
	"github.com/alexanderramin/zeitrechner/internal/xslog"
)

// WeeklyWatcher reports changes to the stored weekly log made by other
// processes.
type WeeklyWatcher struct {
	weekly   repository.WeeklyRepo
	origin   string
	interval time.Duration
	logger   *slog.Logger

	last   domain.Revision
	primed bool
}

func NewWeeklyWatcher(weekly repository.WeeklyRepo, origin string, interval time.Duration, logger *slog.Logger) *WeeklyWatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &WeeklyWatcher{
		weekly:   weekly,
		origin:   origin,
		interval: interval,
		logger:   logger,
	}
}

// Poll reads the current revision and reports whether it differs from the
// previous poll and was written by another origin. The first poll only
// records the baseline.
func (w *WeeklyWatcher) Poll(ctx context.Context) (bool, error) {
	rev, err := w.weekly.Revision(ctx)
	if err != nil {
		return false, fmt.Errorf("polling weekly revision: %w", err)
	}
	if !w.primed {
		w.last, w.primed = rev, true
		return false, nil
	}
	if rev == w.last {
		return false, nil
	}
	w.last = rev
	return rev.Origin != w.origin, nil
}

// Run polls until ctx is done and calls notify for every foreign change.
// Poll failures are logged and retried on the next interval.
func (w *WeeklyWatcher) Run(ctx context.Context, notify func()) error {
	if _, err := w.Poll(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			changed, err := w.Poll(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				w.logger.WarnContext(ctx, "weekly watch failed", xslog.Error(err))
				continue
			}
			if changed {
				w.logger.DebugContext(ctx, "weekly log changed elsewhere",
					xslog.Revision(w.last.Number), xslog.Origin(w.last.Origin))
				notify()
			}
		}
	}
}
