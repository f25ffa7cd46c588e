package cli

import "github.com/alexanderramin/zeitrechner/internal/app"

func (a *App) statusUseCase() app.StatusUseCase {
	if a.StatusQuery != nil {
		return a.StatusQuery
	}
	return a.Status
}

func (a *App) saveTodayUseCase() app.SaveTodayUseCase {
	if a.SaveDay != nil {
		return a.SaveDay
	}
	return a.Weekly
}

func (a *App) clearWeekUseCase() app.ClearWeekUseCase {
	if a.ClearWeek != nil {
		return a.ClearWeek
	}
	return a.Weekly
}
