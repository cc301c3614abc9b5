// Package show prints a trip with its activities, links and guests.
package show

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/trip/pkg/daterange"
	"tableflip.dev/trip/pkg/printers"
	"tableflip.dev/trip/pkg/runner/headless"
	"tableflip.dev/trip/pkg/service"
)

type Show struct {
	Services service.Set
	Logger   *slog.Logger
	Out      io.Writer

	TripID string
	Format printers.Format
	ShowID bool
	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *Show) Do(ctx context.Context) error {
	sess, err := headless.Open(ctx, s.Services, s.Logger, s.TripID, "")
	if err != nil {
		return err
	}
	d, _ := sess.Trip()

	now := s.Now
	if now == nil {
		now = time.Now
	}
	w := s.Out
	if w == nil {
		w = color.Output
	}
	r := printers.Report{
		Trip:         d.Trip,
		When:         d.When,
		Activities:   sess.Activities.Activities,
		Links:        sess.Details.Links.Links,
		Participants: sess.Details.Participants,
	}
	pp := printers.PrettyPrint{ShowID: s.ShowID, Today: daterange.DayOf(now())}
	return printers.Write(w, s.Format, r, pp)
}
