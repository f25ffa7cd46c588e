package cli

import (
	"fmt"
	"io"

	"github.com/alexanderramin/zeitrechner/internal/cli/formatter"
	"github.com/alexanderramin/zeitrechner/internal/contract"
	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newWeekCmd(app *App) *cobra.Command {
	output := outputTable

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the weekly log of the current week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			_, state, err := app.Sessions.Snapshot(ctx)
			if err != nil {
				return err
			}
			week, err := app.Weekly.Week(ctx, state)
			if err != nil {
				return err
			}
			return writeWeek(cmd.OutOrStdout(), week, output)
		},
	}

	cmd.Flags().VarP(&output, "output", "o", "Output format: table, json or yaml")
	cmd.AddCommand(newWeekClearCmd(app))

	return cmd
}

func writeWeek(w io.Writer, week *contract.WeekView, output outputFormat) error {
	switch output {
	case outputJSON:
		data, err := go_json.MarshalIndent(week, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding week: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(week); err != nil {
			return fmt.Errorf("encoding week: %w", err)
		}
		return enc.Close()
	default:
		_, err := fmt.Fprint(w, formatter.FormatWeek(*week))
		return err
	}
}

func newWeekClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all entries of the current week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := app.clearWeekUseCase().ClearCurrentWeek(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				formatter.StyleYellow.Render(flashCleared),
				formatter.Dim(fmt.Sprintf("(%d Eintraege entfernt)", removed)))
			return nil
		},
	}
}
