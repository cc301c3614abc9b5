// Package plan changes a trip from the command line: create it, edit it, add
// activities and links, confirm attendance.
package plan

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/trip/pkg/daterange"
	"tableflip.dev/trip/pkg/runner/headless"
	"tableflip.dev/trip/pkg/service"
	"tableflip.dev/trip/pkg/trip"
)

func out(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}

func done(w io.Writer, format string, args ...any) {
	_, _ = color.New(color.FgGreen).Fprintf(out(w), format+"\n", args...)
}

// CreateTrip creates a trip and invites people to it.
type CreateTrip struct {
	Services service.Set
	Out      io.Writer

	Draft trip.Draft
}

// Do validates the draft and creates the trip, printing its id.
func (c *CreateTrip) Do(ctx context.Context) error {
	if err := c.Draft.Validate(); err != nil {
		return err
	}
	t, err := c.Services.Trips.Create(ctx, c.Draft)
	if err != nil {
		return fmt.Errorf("create trip: %w", err)
	}
	done(c.Out, "Viagem criada: %s", t.ID)
	return nil
}

// UpdateTrip changes destination and dates through the edit form.
type UpdateTrip struct {
	Services service.Set
	Logger   *slog.Logger
	Out      io.Writer

	TripID      string
	Destination string
	Start, End  daterange.Day
}

// Do opens the trip, fills the edit form and saves it. Days before today are
// refused like on the calendar.
func (u *UpdateTrip) Do(ctx context.Context) error {
	s, err := headless.Open(ctx, u.Services, u.Logger, u.TripID, "")
	if err != nil {
		return err
	}
	if !s.OpenEdit() {
		return fmt.Errorf("trip %q cannot be edited right now", u.TripID)
	}
	if u.Destination != "" {
		s.Destination = u.Destination
	}
	if !s.OpenTripCalendar() {
		return fmt.Errorf("trip %q: calendar unavailable", u.TripID)
	}
	for _, d := range []daterange.Day{u.Start, u.End} {
		if !s.TapTripDay(d) {
			return trip.Invalid("dates: %s is before today.", d)
		}
	}
	s.ConfirmTripCalendar()
	if err := s.Run(s.UpdateTrip()); err != nil {
		return err
	}
	d, _ := s.Trip()
	done(u.Out, "Viagem atualizada: %s", d.When)
	return nil
}

// AddActivity schedules an activity on a day of the trip.
type AddActivity struct {
	Services service.Set
	Logger   *slog.Logger
	Out      io.Writer

	TripID string
	Title  string
	Date   daterange.Day
	Hour   string
}

// Do fills the new-activity form the way the screen does and submits it.
func (a *AddActivity) Do(ctx context.Context) error {
	s, err := headless.Open(ctx, a.Services, a.Logger, a.TripID, "")
	if err != nil {
		return err
	}
	f := s.Activities
	f.Open()
	f.Title = a.Title
	if !f.OpenCalendar() {
		return fmt.Errorf("trip %q: calendar unavailable", a.TripID)
	}
	if !f.PickDate(a.Date) {
		w := f.Window()
		return trip.Invalid("date: %s is outside the trip (%s to %s).", a.Date, w.Min, w.Max)
	}
	f.ConfirmCalendar()
	f.SetHour(a.Hour)
	if err := s.Run(f.Submit()); err != nil {
		return err
	}
	done(a.Out, "Atividade cadastrada: %s", strings.TrimSpace(a.Title))
	return nil
}

// AddLink attaches a link to the trip.
type AddLink struct {
	Services service.Set
	Logger   *slog.Logger
	Out      io.Writer

	TripID string
	Title  string
	URL    string
}

// Do fills the new-link form and submits it.
func (l *AddLink) Do(ctx context.Context) error {
	s, err := headless.Open(ctx, l.Services, l.Logger, l.TripID, "")
	if err != nil {
		return err
	}
	f := s.Details.Links
	f.Open()
	f.Title = l.Title
	f.URL = l.URL
	if err := s.Run(f.Submit()); err != nil {
		return err
	}
	done(l.Out, "Link cadastrado: %s", strings.TrimSpace(l.URL))
	return nil
}

// Confirm confirms attendance for an invitee.
type Confirm struct {
	Services service.Set
	Logger   *slog.Logger
	Out      io.Writer

	ParticipantID string
	Name          string
	Email         string
}

// Do looks up the invitee's trip, then submits the attendance form.
func (c *Confirm) Do(ctx context.Context) error {
	p, err := c.Services.Participants.GetByID(ctx, c.ParticipantID)
	if err != nil {
		return fmt.Errorf("get participant %q: %w", c.ParticipantID, err)
	}
	s, err := headless.Open(ctx, c.Services, c.Logger, p.TripID, c.ParticipantID)
	if err != nil {
		return err
	}
	if !s.AttendanceVisible() {
		done(c.Out, "Presença já confirmada.")
		return nil
	}
	s.Attendance.Name = c.Name
	s.Attendance.Email = c.Email
	if err := s.Run(s.ConfirmAttendance()); err != nil {
		return err
	}
	d, _ := s.Trip()
	done(c.Out, "Presença confirmada na viagem para %s.", d.Destination)
	return nil
}
