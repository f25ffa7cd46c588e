package cli

import (
	"fmt"

	"github.com/alexanderramin/zeitrechner/internal/cli/formatter"
	"github.com/alexanderramin/zeitrechner/internal/contract"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show worked time, end times and the current week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printStatus(cmd, app)
		},
	}
}

func printStatus(cmd *cobra.Command, app *App) error {
	resp, err := app.statusUseCase().GetStatus(cmd.Context(), contract.NewStatusRequest())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStatus(resp))
	return nil
}
