package session

import (
	"context"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/trip/pkg/service"
	"tableflip.dev/trip/pkg/trip"
	"tableflip.dev/trip/pkg/validate"
)

const (
	titleAttendance     = "Confirmar presença"
	msgAttendanceFields = "Preencha nome e e-mail para confirmar a presença."
	msgAttendanceEmail  = "E-mail inválido."
	msgAttendanceDone   = "Presença confirmada com sucesso!"
)

// AttendanceForm collects the invitee's name and e-mail. Its overlay lives in the
// trip screen region, owned by the Controller.
type AttendanceForm struct {
	ctx    context.Context
	svc    service.Participants
	log    *slog.Logger
	alerts *Alerts
	tripID string

	Name  string
	Email string

	Confirming bool
}

func newAttendanceForm(ctx context.Context, svc service.Participants, log *slog.Logger, alerts *Alerts, tripID string) *AttendanceForm {
	return &AttendanceForm{ctx: ctx, svc: svc, log: log, alerts: alerts, tripID: tripID}
}

// Reset clears the fields.
func (f *AttendanceForm) Reset() {
	f.Name = ""
	f.Email = ""
}

// Validate checks the fields without calling the service.
func (f *AttendanceForm) Validate() error {
	if !validate.Required(f.Name) || !validate.Required(f.Email) {
		return trip.Invalid(msgAttendanceFields)
	}
	if !validate.Email(f.Email) {
		return trip.Invalid(msgAttendanceEmail)
	}
	return nil
}

// Submit confirms attendance for participantID and re-fetches the participants.
func (f *AttendanceForm) Submit(participantID string) tea.Cmd {
	if f.Confirming || participantID == "" {
		return nil
	}
	if err := f.Validate(); err != nil {
		f.alerts.Show(titleAttendance, trip.Message(err))
		return nil
	}
	f.Confirming = true

	c := trip.Confirmation{
		ParticipantID: participantID,
		Name:          strings.TrimSpace(f.Name),
		Email:         strings.TrimSpace(f.Email),
	}
	ctx, svc, tripID := f.ctx, f.svc, f.tripID
	return func() tea.Msg {
		var msg AttendanceConfirmedMsg
		msg.Err = settle(func() error { return svc.Confirm(ctx, c) })
		if msg.Err != nil {
			return msg
		}
		msg.ReloadErr = settle(func() error {
			ps, err := svc.ListByTrip(ctx, tripID)
			msg.Participants = ps
			return err
		})
		return msg
	}
}

// settled clears the in-flight flag and reports whether the confirmation went
// through.
func (f *AttendanceForm) settled(msg AttendanceConfirmedMsg) bool {
	f.Confirming = false
	if msg.Err != nil {
		f.log.Error("confirm attendance failed", slog.String("error", msg.Err.Error()))
		return false
	}
	f.Reset()
	f.alerts.Show(titleAttendance, msgAttendanceDone)
	if msg.ReloadErr != nil {
		f.log.Error("reload participants failed", slog.String("error", msg.ReloadErr.Error()))
	}
	return true
}
