package cli

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the live dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), app)
		},
	}
}

// runTUI runs the dashboard next to the weekly watcher. The watcher talks to
// the program only through Send; quitting the program stops the watcher.
func runTUI(ctx context.Context, app *App) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen(), tea.WithContext(gctx))

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && gctx.Err() != nil {
			// Killed because the watcher failed; report the watcher's error.
			return nil
		}
		return err
	})

	if app.Watcher != nil {
		g.Go(func() error {
			return app.Watcher.Run(gctx, func() {
				p.Send(weeklyChangedMsg{})
			})
		})
	}

	return g.Wait()
}
