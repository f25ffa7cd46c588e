package cli

import (
	"github.com/spf13/cobra"
)

func newSetCmd(app *App) *cobra.Command {
	var (
		start, brk, target clockFlag
		now                bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update start time, break or target duration",
		Example: `  zeitrechner set --start 07:45
  zeitrechner set --break 00:45 --target 07:42
  zeitrechner set --now`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			in, err := app.Sessions.Inputs(ctx)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("start") {
				in.Start = start.value
			}
			if flags.Changed("break") {
				in.Break = brk.value
			}
			if flags.Changed("target") {
				in.Target = target.value
			}

			if err := app.Sessions.UpdateInputs(ctx, in); err != nil {
				return err
			}
			if now {
				if _, err := app.Sessions.SetStartToNow(ctx); err != nil {
					return err
				}
			}
			return printStatus(cmd, app)
		},
	}

	cmd.Flags().Var(&start, "start", "Arrival time")
	cmd.Flags().Var(&brk, "break", "Break duration")
	cmd.Flags().Var(&target, "target", "Target work duration")
	cmd.Flags().BoolVar(&now, "now", false, "Set the start time to the current time")
	cmd.MarkFlagsMutuallyExclusive("start", "now")

	return cmd
}
