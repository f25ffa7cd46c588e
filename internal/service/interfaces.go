package service

import (
	"context"
	"time"

	"github.com/alexanderramin/zeitrechner/internal/contract"
	"github.com/alexanderramin/zeitrechner/internal/domain"
)

// Clock returns the current wall-clock time.
type Clock func() time.Time

func clockOrNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}

type SessionService interface {
	// Inputs returns the stored inputs with break and target defaults applied.
	Inputs(ctx context.Context) (domain.SessionInput, error)
	UpdateInputs(ctx context.Context, in domain.SessionInput) error
	SetStartToNow(ctx context.Context) (domain.SessionInput, error)
	Snapshot(ctx context.Context) (domain.SessionInput, domain.SessionState, error)
}

type WeeklyService interface {
	Entries(ctx context.Context) (domain.WeeklyEntries, error)
	SaveToday(ctx context.Context, state domain.SessionState) (*contract.SaveResult, error)
	ClearCurrentWeek(ctx context.Context) (int, error)
	Week(ctx context.Context, state domain.SessionState) (*contract.WeekView, error)
}

type StatusService interface {
	GetStatus(ctx context.Context, req contract.StatusRequest) (*contract.StatusResponse, error)
}
