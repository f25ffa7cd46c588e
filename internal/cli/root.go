package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/zeitrechner/internal/app"
	"github.com/alexanderramin/zeitrechner/internal/service"
	"github.com/spf13/cobra"
)

// DefaultTickInterval is how often the dashboard recomputes on its own.
const DefaultTickInterval = 30 * time.Second

// WeeklyWatcher notifies about weekly log changes made by other processes.
type WeeklyWatcher interface {
	Run(ctx context.Context, notify func()) error
}

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Sessions service.SessionService
	Weekly   service.WeeklyService
	Status   service.StatusService

	// Optional use-case overrides; each falls back to the service above.
	StatusQuery app.StatusUseCase
	SaveDay     app.SaveTodayUseCase
	ClearWeek   app.ClearWeekUseCase

	// Watcher is optional; without it the dashboard never reloads on
	// foreign writes.
	Watcher      WeeklyWatcher
	TickInterval time.Duration

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

func (a *App) tickInterval() time.Duration {
	if a.TickInterval <= 0 {
		return DefaultTickInterval
	}
	return a.TickInterval
}

// NewRootCmd creates the top-level "zeitrechner" command. Without a
// subcommand it opens the dashboard on a terminal and prints the status
// otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "zeitrechner",
		Short:         "Work-time calculator with a weekly log",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(cmd.Context(), app)
			}
			return printStatus(cmd, app)
		},
	}

	root.AddCommand(
		newStatusCmd(app),
		newSetCmd(app),
		newSaveCmd(app),
		newWeekCmd(app),
		newTUICmd(app),
	)

	return root
}
