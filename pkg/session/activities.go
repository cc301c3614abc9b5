package session

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/trip/pkg/daterange"
	"tableflip.dev/trip/pkg/overlay"
	"tableflip.dev/trip/pkg/service"
	"tableflip.dev/trip/pkg/trip"
	"tableflip.dev/trip/pkg/validate"
)

const (
	titleNewActivity   = "Cadastrar atividade"
	msgActivityFields  = "Preencha todos os campos!"
	msgActivityHour    = "Horário inválido."
	titleActivityDone  = "Nova atividade"
	msgActivityCreated = "Nova atividade cadastrada com sucesso!"
)

// HourMaxLength is how many characters the hour field accepts.
const HourMaxLength = 2

// SanitizeHour strips decimal separators from hour input. "14,5" and "14.5" both
// become "145"; fractional hours are not supported.
func SanitizeHour(text string) string {
	return strings.NewReplacer(".", "", ",", "").Replace(text)
}

// ComposeOccursAt returns midnight of day (local time) plus hour whole hours.
// The hour must be 0 to 23 so the activity stays on the picked day.
func ComposeOccursAt(day daterange.Day, hour string) (time.Time, error) {
	h, err := strconv.Atoi(strings.TrimSpace(SanitizeHour(hour)))
	if err != nil || h < 0 || h > 23 {
		return time.Time{}, trip.Invalid(msgActivityHour)
	}
	return day.Time(time.Local).Add(time.Duration(h) * time.Hour), nil
}

// ActivityForm is the activities sub-view: the list plus the new-activity form
// and its day picker.
type ActivityForm struct {
	ctx    context.Context
	svc    service.Activities
	log    *slog.Logger
	alerts *Alerts
	tripID string
	window daterange.Bounds

	Overlay overlay.Slot[ActivityOverlay]

	Title string
	Date  *daterange.Day
	Hour  string

	Creating   bool
	Loading    bool
	Activities []trip.Activity
}

func newActivityForm(ctx context.Context, svc service.Activities, log *slog.Logger, alerts *Alerts, tripID string) *ActivityForm {
	return &ActivityForm{ctx: ctx, svc: svc, log: log, alerts: alerts, tripID: tripID}
}

// SetWindow sets the days the picker offers.
func (f *ActivityForm) SetWindow(b daterange.Bounds) {
	f.window = b
}

// Window returns the days the picker offers.
func (f *ActivityForm) Window() daterange.Bounds {
	return f.window
}

// Open shows the new-activity form.
func (f *ActivityForm) Open() {
	if f.tripID == "" || f.Creating {
		return
	}
	f.Overlay.Open(NewActivity)
}

// OpenCalendar shows the day picker over the form, keeping the typed fields.
func (f *ActivityForm) OpenCalendar() bool {
	if !f.Overlay.Is(NewActivity) {
		return false
	}
	f.Overlay.Push(ActivityCalendar)
	return true
}

// PickDate sets the activity day when the picker is open and d is within the trip.
func (f *ActivityForm) PickDate(d daterange.Day) bool {
	if !f.Overlay.Is(ActivityCalendar) || !f.window.Contains(d) {
		return false
	}
	f.Date = &d
	return true
}

// ConfirmCalendar returns from the picker to the form.
func (f *ActivityForm) ConfirmCalendar() {
	if f.Overlay.Is(ActivityCalendar) {
		f.Overlay.Back()
	}
}

// SetHour stores sanitized hour input.
func (f *ActivityForm) SetHour(text string) {
	f.Hour = SanitizeHour(text)
}

// Close dismisses the top overlay. The picker returns to the form; the form drops
// its fields. The form stays while it is being saved.
func (f *ActivityForm) Close() {
	if f.Creating {
		return
	}
	switch f.Overlay.Active() {
	case ActivityNone:
	case ActivityCalendar:
		f.Overlay.Back()
	case NewActivity:
		f.Overlay.Close()
		f.Reset()
	}
}

// Reset clears the form fields.
func (f *ActivityForm) Reset() {
	f.Title = ""
	f.Date = nil
	f.Hour = ""
}

// Validate checks the fields and returns the activity that would be created.
func (f *ActivityForm) Validate() (trip.NewActivity, error) {
	if !validate.Required(f.Title) || f.Date == nil || !validate.Required(f.Hour) {
		return trip.NewActivity{}, trip.Invalid(msgActivityFields)
	}
	at, err := ComposeOccursAt(*f.Date, f.Hour)
	if err != nil {
		return trip.NewActivity{}, err
	}
	return trip.NewActivity{TripID: f.tripID, Title: strings.TrimSpace(f.Title), OccursAt: at}, nil
}

// Submit creates the activity and re-fetches the list.
func (f *ActivityForm) Submit() tea.Cmd {
	if f.Creating || f.tripID == "" {
		return nil
	}
	a, err := f.Validate()
	if err != nil {
		f.alerts.Show(titleNewActivity, trip.Message(err))
		return nil
	}
	f.Creating = true

	ctx, svc := f.ctx, f.svc
	return func() tea.Msg {
		var msg ActivityCreatedMsg
		msg.Err = settle(func() error { return svc.Create(ctx, a) })
		if msg.Err != nil {
			return msg
		}
		msg.ReloadErr = settle(func() error {
			list, err := svc.ListByTrip(ctx, a.TripID)
			msg.Activities = list
			return err
		})
		return msg
	}
}

// Reload re-fetches the activity list.
func (f *ActivityForm) Reload() tea.Cmd {
	if f.tripID == "" || f.Loading {
		return nil
	}
	f.Loading = true
	ctx, svc, id := f.ctx, f.svc, f.tripID
	return func() tea.Msg {
		var msg ActivitiesLoadedMsg
		msg.Err = settle(func() error {
			list, err := svc.ListByTrip(ctx, id)
			msg.Activities = list
			return err
		})
		return msg
	}
}

// Update applies activity result messages.
func (f *ActivityForm) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ActivitiesLoadedMsg:
		f.Loading = false
		if msg.Err != nil {
			f.log.Error("load activities failed", slog.String("error", msg.Err.Error()))
			return nil
		}
		f.Activities = msg.Activities
	case ActivityCreatedMsg:
		f.Creating = false
		if msg.Err != nil {
			f.log.Error("create activity failed", slog.String("error", msg.Err.Error()))
			return nil
		}
		if f.Overlay.IsOpen() {
			f.Overlay.Close()
			f.Reset()
		}
		f.alerts.Show(titleActivityDone, msgActivityCreated)
		if msg.ReloadErr != nil {
			f.log.Error("reload activities failed", slog.String("error", msg.ReloadErr.Error()))
			return nil
		}
		f.Activities = msg.Activities
	}
	return nil
}

// Days groups the loaded activities by day.
func (f *ActivityForm) Days() []trip.DayPlan {
	return trip.GroupByDay(f.Activities, f.window)
}
