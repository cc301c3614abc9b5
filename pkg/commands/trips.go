package commands

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/trip/pkg/commands/options"
	"tableflip.dev/trip/pkg/runner/plan"
	"tableflip.dev/trip/pkg/trip"
)

func addTrips(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "trips",
		Short: "create and edit trips",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	addTripsCreate(cmd)
	addTripsUpdate(cmd)
	topLevel.AddCommand(cmd)
}

func addTripsCreate(parent *cobra.Command) {
	var (
		destination, from, to string
		ownerName, ownerEmail string
		invites               []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "create a trip and invite people",
		Long: base.Wrap80("Create a trip. The owner is added as a confirmed participant " +
			"and every --invite e-mail gets a pending invitation."),
		Example: `
trip trips create --destination "Florianópolis, Brasil" --from 2024-01-10 --to 2024-01-15 \
  --owner-name Ana --owner-email ana@example.com --invite bia@example.com
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			now := time.Now()
			start, err := options.ParseDay(from, now)
			if err != nil {
				return err
			}
			end, err := options.ParseDay(to, now)
			if err != nil {
				return err
			}
			svc, _, closeLog, err := services()
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			c := plan.CreateTrip{
				Services: svc,
				Out:      cmd.OutOrStdout(),
				Draft: trip.Draft{
					Destination: destination,
					StartsAt:    start.Time(time.Local),
					EndsAt:      end.Time(time.Local),
					OwnerName:   ownerName,
					OwnerEmail:  ownerEmail,
					Invites:     invites,
				},
			}
			return c.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&destination, "destination", "", "Where to.")
	cmd.Flags().StringVar(&from, "from", "", "First day, 2006-01-02.")
	cmd.Flags().StringVar(&to, "to", "", "Last day, 2006-01-02.")
	cmd.Flags().StringVar(&ownerName, "owner-name", "", "Owner's full name.")
	cmd.Flags().StringVar(&ownerEmail, "owner-email", "", "Owner's e-mail.")
	cmd.Flags().StringSliceVar(&invites, "invite", nil, "E-mail to invite; repeat or comma separate.")
	for _, f := range []string{"destination", "from", "to", "owner-name", "owner-email"} {
		_ = cmd.MarkFlagRequired(f)
	}
	parent.AddCommand(cmd)
}

func addTripsUpdate(parent *cobra.Command) {
	to := &options.TripOptions{}
	var destination, from, until string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "change a trip's destination and dates",
		Long:  base.Wrap80("Change a trip's destination and dates. Like the calendar of the trip screen, days before today are refused."),
		Example: `
trip trips update --trip 0190c6e2-8c1b-7b7e-a3a8-5f0f3e1c2d4b --from 2024-03-01 --to 2024-03-05
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if to.TripID == "" {
				return errors.New("--trip is required")
			}
			now := time.Now()
			start, err := options.ParseDay(from, now)
			if err != nil {
				return err
			}
			end, err := options.ParseDay(until, now)
			if err != nil {
				return err
			}
			svc, log, closeLog, err := services()
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			u := plan.UpdateTrip{
				Services:    svc,
				Logger:      log,
				Out:         cmd.OutOrStdout(),
				TripID:      to.TripID,
				Destination: destination,
				Start:       start,
				End:         end,
			}
			return u.Do(cmd.Context())
		},
	}

	options.AddTripArg(cmd, to)
	cmd.Flags().StringVar(&destination, "destination", "", "New destination; unchanged when empty.")
	cmd.Flags().StringVar(&from, "from", "", "First day, 2006-01-02.")
	cmd.Flags().StringVar(&until, "to", "", "Last day, 2006-01-02.")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	parent.AddCommand(cmd)
}
