package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/zeitrechner/internal/domain"
	"github.com/alexanderramin/zeitrechner/internal/repository"
	"github.com/alexanderramin/zeitrechner/internal/timecalc"
)

type sessionService struct {
	settings repository.SettingsRepo
	now      Clock
	observer UseCaseObserver
}

func NewSessionService(settings repository.SettingsRepo, now Clock, observers ...UseCaseObserver) SessionService {
	return &sessionService{
		settings: settings,
		now:      clockOrNow(now),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *sessionService) Inputs(ctx context.Context) (domain.SessionInput, error) {
	in, err := s.settings.Load(ctx)
	if err != nil {
		return domain.SessionInput{}, fmt.Errorf("loading inputs: %w", err)
	}
	return withDefaults(in), nil
}

func withDefaults(in domain.SessionInput) domain.SessionInput {
	if in.Break == "" {
		in.Break = domain.DefaultBreakDuration
	}
	if in.Target == "" {
		in.Target = domain.DefaultTargetDuration
	}
	return in
}

// UpdateInputs persists break and target unconditionally; an empty start
// keeps the stored one.
func (s *sessionService) UpdateInputs(ctx context.Context, in domain.SessionInput) error {
	fields := map[string]any{"start": in.Start, "break": in.Break, "target": in.Target}
	return observe(ctx, s.observer, "update-inputs", fields, func() error {
		if in.Start != "" {
			if err := s.settings.StoreStart(ctx, in.Start); err != nil {
				return fmt.Errorf("storing start time: %w", err)
			}
		}
		if err := s.settings.StoreBreak(ctx, in.Break); err != nil {
			return fmt.Errorf("storing break duration: %w", err)
		}
		if err := s.settings.StoreTarget(ctx, in.Target); err != nil {
			return fmt.Errorf("storing target duration: %w", err)
		}
		return nil
	})
}

func (s *sessionService) SetStartToNow(ctx context.Context) (domain.SessionInput, error) {
	start := domain.ClockOf(s.now()).String()
	err := observe(ctx, s.observer, "start-now", map[string]any{"start": start}, func() error {
		if err := s.settings.StoreStart(ctx, start); err != nil {
			return fmt.Errorf("storing start time: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.SessionInput{}, err
	}
	return s.Inputs(ctx)
}

func (s *sessionService) Snapshot(ctx context.Context) (domain.SessionInput, domain.SessionState, error) {
	in, err := s.Inputs(ctx)
	if err != nil {
		return domain.SessionInput{}, domain.SessionState{}, err
	}
	return in, timecalc.Compute(in, s.now()), nil
}
