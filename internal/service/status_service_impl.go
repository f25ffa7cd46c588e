package service

import (
	"context"

	"github.com/alexanderramin/zeitrechner/internal/app"
	"github.com/alexanderramin/zeitrechner/internal/timecalc"
)

type statusService struct {
	sessions SessionService
	weekly   WeeklyService
	now      Clock
}

func NewStatusService(sessions SessionService, weekly WeeklyService, now Clock) StatusService {
	return &statusService{
		sessions: sessions,
		weekly:   weekly,
		now:      clockOrNow(now),
	}
}

// GetStatus computes a fresh snapshot and the week it belongs to. A request
// time overrides the service clock.
func (s *statusService) GetStatus(ctx context.Context, req app.StatusRequest) (*app.StatusResponse, error) {
	now := s.now()
	if req.Now != nil {
		now = *req.Now
	}

	in, err := s.sessions.Inputs(ctx)
	if err != nil {
		return nil, err
	}
	state := timecalc.Compute(in, now)

	week, err := s.weekly.Week(ctx, state)
	if err != nil {
		return nil, err
	}

	return &app.StatusResponse{
		GeneratedAt: now,
		State:       state,
		Session:     timecalc.BuildSessionView(in, state),
		Week:        *week,
	}, nil
}
