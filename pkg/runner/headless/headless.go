// Package headless drives a trip session without a terminal, so the CLI shares
// the validation and reload rules of the interactive screen.
package headless

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/trip/pkg/service"
	"tableflip.dev/trip/pkg/session"
	"tableflip.dev/trip/pkg/trip"
)

// maxSteps bounds Drain; a session never chains more than a handful of commands.
const maxSteps = 1000

// ErrRunaway is returned when a command chain does not settle.
var ErrRunaway = errors.New("headless: command chain did not settle")

// Drain runs cmd and every command update returns for the messages it produces,
// one at a time. It returns the messages in the order they were delivered.
func Drain(cmd tea.Cmd, update func(tea.Msg) tea.Cmd) ([]tea.Msg, error) {
	var seen []tea.Msg
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > maxSteps {
			return seen, ErrRunaway
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case nil, tea.QuitMsg:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			seen = append(seen, msg)
			queue = append(queue, update(msg))
		}
	}
	return seen, nil
}

// Failure returns the first error carried by a session result message.
func Failure(msgs []tea.Msg) error {
	for _, m := range msgs {
		var err error
		switch m := m.(type) {
		case session.NavigateBackMsg:
			err = trip.ErrMissingIdentifier
		case session.TripLoadedMsg:
			err = m.Err
		case session.TripUpdatedMsg:
			err = m.Err
		case session.ActivitiesLoadedMsg:
			err = m.Err
		case session.ActivityCreatedMsg:
			err = m.Err
		case session.DetailsLoadedMsg:
			err = m.Err
		case session.LinkCreatedMsg:
			err = m.Err
		case session.AttendanceConfirmedMsg:
			err = m.Err
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Session is a loaded trip session.
type Session struct {
	*session.Controller
}

// Open builds a controller for tripID and waits for the trip, its activities,
// links and participants to load.
func Open(ctx context.Context, svc service.Set, log *slog.Logger, tripID, participantID string) (*Session, error) {
	ctrl := session.New(ctx, session.Options{
		TripID:        tripID,
		ParticipantID: participantID,
		Services:      svc,
		Logger:        log,
	})
	s := &Session{ctrl}
	if err := s.Run(ctrl.Init()); err != nil {
		return nil, fmt.Errorf("open trip %q: %w", tripID, err)
	}
	return s, nil
}

// Run drains cmd through the controller. A nil cmd means the controller refused
// the action; the alert it raised, if any, becomes a validation error.
func (s *Session) Run(cmd tea.Cmd) error {
	if cmd == nil {
		return s.refused()
	}
	msgs, err := Drain(cmd, s.Update)
	if err != nil {
		return err
	}
	return Failure(msgs)
}

// refused acknowledges every pending alert and reports the latest one.
func (s *Session) refused() error {
	var last *session.Alert
	for a, ok := s.Alerts.Current(); ok; a, ok = s.Alerts.Current() {
		last = &a
		s.Alerts.Dismiss()
	}
	if last == nil {
		return nil
	}
	return trip.Invalid("%s", last.Message)
}
