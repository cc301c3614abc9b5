package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/trip/pkg/commands/options"
	"tableflip.dev/trip/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	to := &options.TripOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the trip screen",
		Example: `
trip ui --trip 0190c6e2-8c1b-7b7e-a3a8-5f0f3e1c2d4b
trip ui --trip 0190c6e2-8c1b-7b7e-a3a8-5f0f3e1c2d4b --participant 0190c6e2-9d21-7c11-b0a4-4bb1c3a0e9f2
trip ui --local --trip 0190c6e2-8c1b-7b7e-a3a8-5f0f3e1c2d4b
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, log, closeLog, err := services()
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			i := ui.UI{
				Services:      svc,
				Logger:        log,
				TripID:        to.TripID,
				ParticipantID: to.ParticipantID,
			}
			return i.Do(cmd.Context())
		},
	}

	options.AddTripArg(cmd, to)
	options.AddParticipantArg(cmd, to)
	topLevel.AddCommand(cmd)
}
