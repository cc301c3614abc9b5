// Package ui opens the interactive trip screen.
package ui

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"tableflip.dev/trip/pkg/service"
	"tableflip.dev/trip/pkg/session"
	"tableflip.dev/trip/pkg/tui"
)

// ErrNotTerminal is returned when stdout is not an interactive terminal.
var ErrNotTerminal = errors.New("ui: stdout is not a terminal, try `trip show`")

type UI struct {
	Services service.Set
	Logger   *slog.Logger

	TripID        string
	ParticipantID string
}

func (u *UI) Do(ctx context.Context) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ErrNotTerminal
	}
	ctrl := session.New(ctx, session.Options{
		TripID:        u.TripID,
		ParticipantID: u.ParticipantID,
		Services:      u.Services,
		Logger:        u.Logger,
	})
	return tui.Run(ctrl)
}
