package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/trip/pkg/commands/options"
	"tableflip.dev/trip/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	to := &options.TripOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "print a trip with its activities, links and guests",
		Example: `
trip show --trip 0190c6e2-8c1b-7b7e-a3a8-5f0f3e1c2d4b
trip show --trip 0190c6e2-8c1b-7b7e-a3a8-5f0f3e1c2d4b -o yaml
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			format, err := oo.Format()
			if err != nil {
				return err
			}
			svc, log, closeLog, err := services()
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = closeLog() }()

			s := show.Show{
				Services: svc,
				Logger:   log,
				Out:      cmd.OutOrStdout(),
				TripID:   to.TripID,
				Format:   format,
				ShowID:   oo.ShowID,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddTripArg(cmd, to)
	options.AddOutputArgs(cmd, oo)
	topLevel.AddCommand(cmd)
}
