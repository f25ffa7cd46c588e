package app

import (
	"context"

	"github.com/alexanderramin/zeitrechner/internal/domain"
)

type StatusUseCase interface {
	GetStatus(ctx context.Context, req StatusRequest) (*StatusResponse, error)
}

// SaveResult reports what a save-today action persisted.
type SaveResult struct {
	Saved   bool
	Date    string
	Minutes int
}

type SaveTodayUseCase interface {
	SaveToday(ctx context.Context, state domain.SessionState) (*SaveResult, error)
}

type ClearWeekUseCase interface {
	ClearCurrentWeek(ctx context.Context) (int, error)
}
