package options

import (
	"github.com/spf13/cobra"
)

// TripOptions selects the trip a command works on.
type TripOptions struct {
	TripID        string
	ParticipantID string
}

func AddTripArg(cmd *cobra.Command, o *TripOptions) {
	cmd.Flags().StringVarP(&o.TripID, "trip", "t", "",
		"Trip id.")
}

func AddParticipantArg(cmd *cobra.Command, o *TripOptions) {
	cmd.Flags().StringVarP(&o.ParticipantID, "participant", "p", "",
		"Participant id of the invitee using the screen.")
}
