package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/trip/pkg/commands/options"
	"tableflip.dev/trip/pkg/runner/plan"
)

func addLinks(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "links",
		Short: "manage a trip's important links",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	to := &options.TripOptions{}
	add := &cobra.Command{
		Use:   "add [title] [url]",
		Short: "attach a link to the trip",
		Example: `
trip links add --trip 0190c6e2-8c1b-7b7e-a3a8-5f0f3e1c2d4b "Reserva do AirBnB" https://www.airbnb.com/rooms/104700011
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if to.TripID == "" {
				return errors.New("--trip is required")
			}
			svc, log, closeLog, err := services()
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			l := plan.AddLink{
				Services: svc,
				Logger:   log,
				Out:      cmd.OutOrStdout(),
				TripID:   to.TripID,
				Title:    args[0],
				URL:      args[1],
			}
			return l.Do(cmd.Context())
		},
	}
	options.AddTripArg(add, to)

	cmd.AddCommand(add)
	topLevel.AddCommand(cmd)
}
