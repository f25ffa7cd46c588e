package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/zeitrechner/internal/contract"
	"github.com/alexanderramin/zeitrechner/internal/db"
	"github.com/alexanderramin/zeitrechner/internal/domain"
	"github.com/alexanderramin/zeitrechner/internal/repository"
	"github.com/alexanderramin/zeitrechner/internal/timecalc"
	"github.com/alexanderramin/zeitrechner/internal/xslog"
)

type weeklyService struct {
	weekly   repository.WeeklyRepo
	uow      db.UnitOfWork
	origin   string
	logger   *slog.Logger
	now      Clock
	observer UseCaseObserver
}

// NewWeeklyService wires the weekly log. Writes inside transactions are
// stamped with origin.
func NewWeeklyService(
	weekly repository.WeeklyRepo,
	uow db.UnitOfWork,
	origin string,
	logger *slog.Logger,
	now Clock,
	observers ...UseCaseObserver,
) WeeklyService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &weeklyService{
		weekly:   weekly,
		uow:      uow,
		origin:   origin,
		logger:   logger,
		now:      clockOrNow(now),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *weeklyService) txWeekly(tx db.DBTX) repository.WeeklyRepo {
	return repository.NewSQLiteWeeklyRepo(repository.NewSQLiteKVRepo(tx, s.origin), s.logger)
}

func (s *weeklyService) Entries(ctx context.Context) (domain.WeeklyEntries, error) {
	entries, err := s.weekly.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading weekly entries: %w", err)
	}
	return entries, nil
}

// SaveToday records the snapshot's worked minutes under the snapshot's date,
// overwriting an earlier save of the same day. Invalid or empty snapshots are
// not saved.
func (s *weeklyService) SaveToday(ctx context.Context, state domain.SessionState) (*contract.SaveResult, error) {
	result := &contract.SaveResult{}
	if !state.Valid {
		return result, nil
	}
	minutes := timecalc.LiveMinutes(state)
	if minutes <= 0 {
		return result, nil
	}

	day := state.ComputedAt
	if day.IsZero() {
		day = s.now()
	}
	result.Date = domain.ISODate(day)
	result.Minutes = minutes

	fields := map[string]any{"date": result.Date, "minutes": minutes}
	err := observe(ctx, s.observer, "save-today", fields, func() error {
		return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			weekly := s.txWeekly(tx)
			entries, err := weekly.Load(ctx)
			if err != nil {
				return err
			}
			entries[result.Date] = minutes
			if err := weekly.Store(ctx, entries); err != nil {
				return fmt.Errorf("saving %s: %w", result.Date, err)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "saved today", xslog.Date(result.Date), xslog.Minutes(minutes))
	result.Saved = true
	return result, nil
}

// ClearCurrentWeek removes the seven entries of the current week and reports
// how many existed. Nothing is written when none did.
func (s *weeklyService) ClearCurrentWeek(ctx context.Context) (int, error) {
	now := s.now()
	removed := 0
	fields := map[string]any{"week_start": domain.ISODate(domain.WeekStart(now))}
	err := observe(ctx, s.observer, "clear-week", fields, func() error {
		return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			weekly := s.txWeekly(tx)
			entries, err := weekly.Load(ctx)
			if err != nil {
				return err
			}
			removed = entries.RemoveWeek(now)
			fields["removed"] = removed
			if removed == 0 {
				return nil
			}
			if err := weekly.Store(ctx, entries); err != nil {
				return fmt.Errorf("clearing week: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// Week renders the current week with the snapshot's live minutes on today's
// row.
func (s *weeklyService) Week(ctx context.Context, state domain.SessionState) (*contract.WeekView, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	now := state.ComputedAt
	if now.IsZero() {
		now = s.now()
	}
	view := timecalc.BuildWeek(entries, timecalc.LiveMinutes(state), now)
	return &view, nil
}
