package commands

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/trip/pkg/commands/options"
	"tableflip.dev/trip/pkg/runner/plan"
)

func addActivities(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "activities",
		Short: "manage a trip's activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	to := &options.TripOptions{}
	var on, hour string
	add := &cobra.Command{
		Use:   "add [title]",
		Short: "schedule an activity on a day of the trip",
		Example: `
trip activities add --trip 0190c6e2-8c1b-7b7e-a3a8-5f0f3e1c2d4b --on 2024-01-12 --hour 14 "Praia da Joaquina"
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if to.TripID == "" {
				return errors.New("--trip is required")
			}
			day, err := options.ParseDay(on, time.Now())
			if err != nil {
				return err
			}
			svc, log, closeLog, err := services()
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			a := plan.AddActivity{
				Services: svc,
				Logger:   log,
				Out:      cmd.OutOrStdout(),
				TripID:   to.TripID,
				Title:    args[0],
				Date:     day,
				Hour:     hour,
			}
			return a.Do(cmd.Context())
		},
	}
	options.AddTripArg(add, to)
	add.Flags().StringVar(&on, "on", "", "Day of the activity, 2006-01-02.")
	add.Flags().StringVar(&hour, "hour", "", "Hour of the day, 0 to 23.")
	_ = add.MarkFlagRequired("on")
	_ = add.MarkFlagRequired("hour")

	cmd.AddCommand(add)
	topLevel.AddCommand(cmd)
}
