package cli

import (
	"fmt"

	"github.com/alexanderramin/zeitrechner/internal/cli/formatter"
	"github.com/spf13/cobra"
)

const (
	flashSaved   = "Gespeichert!"
	flashCleared = "Zurueckgesetzt!"
)

func newSaveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Save today's worked time to the weekly log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			_, state, err := app.Sessions.Snapshot(ctx)
			if err != nil {
				return err
			}
			result, err := app.saveTodayUseCase().SaveToday(ctx, state)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !result.Saved {
				fmt.Fprintln(out, formatter.Dim("Nichts zu speichern."))
				return nil
			}
			fmt.Fprintf(out, "%s %s: %s\n",
				formatter.StyleGreen.Render(flashSaved),
				result.Date,
				formatter.Bold(formatter.Duration(result.Minutes)))
			return nil
		},
	}
}
