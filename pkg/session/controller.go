package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"golang.org/x/sync/errgroup"

	"tableflip.dev/trip/pkg/daterange"
	"tableflip.dev/trip/pkg/overlay"
	"tableflip.dev/trip/pkg/service"
	"tableflip.dev/trip/pkg/trip"
	"tableflip.dev/trip/pkg/validate"
)

const (
	titleUpdateTrip = "Atualizar viagem"
	msgUpdateTrip   = "Lembre-se de, além de preencher o destino, selecionar as datas de inicio e fim."
	msgTripUpdated  = "Viagem atualizada com sucesso!"
)

// Options configures a Controller.
type Options struct {
	// TripID is the trip to open. Empty means the screen was entered without one.
	TripID string
	// ParticipantID identifies the invitee using the screen, if any.
	ParticipantID string
	Services      service.Set
	Logger        *slog.Logger
	// URLValid checks link URLs; validate.URL when nil.
	URLValid func(string) bool
	// Now returns the current time; time.Now when nil.
	Now func() time.Time
}

// Controller coordinates the trip screen: it owns the trip, the edit form, the
// trip-level overlays and the two sub-views.
type Controller struct {
	ctx context.Context
	svc service.Set
	log *slog.Logger
	now func() time.Time

	tripID        string
	participantID string

	trip        *trip.Display
	participant *trip.Participant
	loadedOnce  bool

	// Destination and Selection are the edit form fields.
	Destination string
	Selection   daterange.Selection

	Overlay overlay.Slot[TripOverlay]
	Mode    ViewMode

	LoadingTrip  bool
	UpdatingTrip bool

	Activities *ActivityForm
	Details    *Details
	Attendance *AttendanceForm
	Alerts     *Alerts
}

// New builds a Controller. ctx bounds every data service call it makes.
func New(ctx context.Context, opts Options) *Controller {
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = discardLogger()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	urlValid := opts.URLValid
	if urlValid == nil {
		urlValid = validate.URL
	}
	log = log.With(slog.String("trip", opts.TripID))
	alerts := &Alerts{}

	return &Controller{
		ctx:           ctx,
		svc:           opts.Services,
		log:           log,
		now:           now,
		tripID:        opts.TripID,
		participantID: opts.ParticipantID,
		Mode:          ModeActivities,
		Activities:    newActivityForm(ctx, opts.Services.Activities, log, alerts, opts.TripID),
		Details:       newDetails(ctx, opts.Services, log, alerts, opts.TripID, urlValid),
		Attendance:    newAttendanceForm(ctx, opts.Services.Participants, log, alerts, opts.TripID),
		Alerts:        alerts,
	}
}

// Init starts the initial load.
func (c *Controller) Init() tea.Cmd {
	return c.LoadTrip()
}

// TripID returns the id of the trip being shown.
func (c *Controller) TripID() string {
	return c.tripID
}

// Trip returns the derived display model, or false until the first load succeeds.
func (c *Controller) Trip() (trip.Display, bool) {
	if c.trip == nil {
		return trip.Display{}, false
	}
	return *c.trip, true
}

// Participant returns the invitee using the screen, when known.
func (c *Controller) Participant() (trip.Participant, bool) {
	if c.participant == nil {
		return trip.Participant{}, false
	}
	return *c.participant, true
}

// LoadTrip fetches the trip (and the invitee, when one was supplied). Without a
// trip id it navigates back instead.
func (c *Controller) LoadTrip() tea.Cmd {
	if c.tripID == "" {
		return func() tea.Msg { return NavigateBackMsg{} }
	}
	if c.LoadingTrip {
		return nil
	}
	c.LoadingTrip = true

	ctx, svc, id, pid := c.ctx, c.svc, c.tripID, c.participantID
	return func() tea.Msg {
		var msg TripLoadedMsg
		msg.Err = settle(func() error {
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return settle(func() error {
					t, err := svc.Trips.GetByID(gctx, id)
					if err != nil {
						return fmt.Errorf("get trip %s: %w", id, err)
					}
					msg.Trip = t
					return nil
				})
			})
			if pid != "" {
				g.Go(func() error {
					msg.ParticipantErr = settle(func() error {
						p, err := svc.Participants.GetByID(gctx, pid)
						if err != nil {
							return fmt.Errorf("get participant %s: %w", pid, err)
						}
						msg.Participant = &p
						return nil
					})
					return nil
				})
			}
			return g.Wait()
		})
		return msg
	}
}

// Update applies a result message and returns any follow-up work.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case TripLoadedMsg:
		return c.handleLoaded(msg)
	case TripUpdatedMsg:
		c.handleUpdated(msg)
	case AttendanceConfirmedMsg:
		c.handleConfirmed(msg)
	case ActivitiesLoadedMsg, ActivityCreatedMsg:
		return c.Activities.Update(msg)
	case DetailsLoadedMsg, LinkCreatedMsg:
		return c.Details.Update(msg)
	}
	return nil
}

func (c *Controller) handleLoaded(msg TripLoadedMsg) tea.Cmd {
	c.LoadingTrip = false
	if msg.Err != nil {
		c.log.Error("load trip failed", slog.String("error", msg.Err.Error()))
		return nil
	}
	c.apply(msg.Trip)

	if msg.ParticipantErr != nil {
		c.log.Error("load participant failed",
			slog.String("participant", c.participantID),
			slog.String("error", msg.ParticipantErr.Error()))
	} else if msg.Participant != nil {
		p := *msg.Participant
		c.participant = &p
	}
	if c.AttendancePending() && !c.Overlay.IsOpen() {
		c.Overlay.Open(AttendanceConfirm)
	}

	if c.loadedOnce {
		return nil
	}
	c.loadedOnce = true
	return tea.Batch(c.Activities.Reload(), c.Details.Reload())
}

func (c *Controller) apply(t trip.Trip) {
	d := trip.Derive(t)
	c.trip = &d
	if !c.Overlay.IsOpen() || c.Overlay.Is(AttendanceConfirm) {
		c.Destination = t.Destination
	}
	c.Activities.SetWindow(t.Window())
}

// SetMode switches the sub-view. Each sub-view keeps its own overlay state.
func (c *Controller) SetMode(m ViewMode) {
	c.Mode = m
}

// ToggleMode switches to the other sub-view.
func (c *Controller) ToggleMode() {
	c.Mode = c.Mode.Toggle()
}

// OpenEdit shows the edit-trip overlay with a fresh form.
func (c *Controller) OpenEdit() bool {
	if c.trip == nil || c.LoadingTrip || c.saving() {
		return false
	}
	c.Overlay.Open(EditTrip)
	c.resetEdit()
	return true
}

// OpenTripCalendar shows the date picker on top of the edit form.
func (c *Controller) OpenTripCalendar() bool {
	if !c.Overlay.Is(EditTrip) {
		return false
	}
	c.Overlay.Push(TripCalendar)
	return true
}

// TripCalendarBounds is the window of days the trip picker offers: today onwards.
func (c *Controller) TripCalendarBounds() daterange.Bounds {
	return daterange.Bounds{Min: daterange.DayOf(c.now())}
}

// TapTripDay feeds a calendar tap into the date range selection.
func (c *Controller) TapTripDay(d daterange.Day) bool {
	if !c.Overlay.Is(TripCalendar) || !c.TripCalendarBounds().Contains(d) {
		return false
	}
	c.Selection = daterange.Select(c.Selection, d)
	return true
}

// ConfirmTripCalendar returns from the picker to the edit form, keeping the
// selection.
func (c *Controller) ConfirmTripCalendar() {
	if c.Overlay.Is(TripCalendar) {
		c.Overlay.Back()
	}
}

// OpenAttendance shows the attendance overlay when the invitee still has to
// confirm.
func (c *Controller) OpenAttendance() bool {
	if !c.AttendancePending() || c.LoadingTrip || c.saving() {
		return false
	}
	c.Overlay.Open(AttendanceConfirm)
	return true
}

// AttendancePending reports whether the screen was opened by an invitee that has
// not confirmed yet.
func (c *Controller) AttendancePending() bool {
	return c.participantID != "" && c.participant != nil && !c.participant.IsConfirmed
}

// AttendanceVisible gates rendering of the attendance overlay on loaded data.
func (c *Controller) AttendanceVisible() bool {
	return c.Overlay.Is(AttendanceConfirm) && !c.LoadingTrip && c.trip != nil
}

// saving reports whether a trip-region form is waiting on the service. The region
// stays as it is until the result arrives.
func (c *Controller) saving() bool {
	return c.UpdatingTrip || c.Attendance.Confirming
}

// CloseOverlay dismisses the top trip-level overlay. The picker returns to its
// form; forms close and drop their fields. Nothing closes while a save is in
// flight.
func (c *Controller) CloseOverlay() {
	if c.saving() {
		return
	}
	switch c.Overlay.Active() {
	case TripNone:
	case TripCalendar:
		c.Overlay.Back()
	case EditTrip:
		c.Overlay.Close()
		c.resetEdit()
	case AttendanceConfirm:
		c.Overlay.Close()
		c.Attendance.Reset()
	}
}

func (c *Controller) resetEdit() {
	c.Selection = daterange.Selection{}
	c.Destination = ""
	if c.trip != nil {
		c.Destination = c.trip.Destination
	}
}

// UpdateTrip validates the edit form and sends the change, then re-fetches the
// trip so the header reflects what the service stored.
func (c *Controller) UpdateTrip() tea.Cmd {
	if c.UpdatingTrip || c.tripID == "" {
		return nil
	}
	dest := strings.TrimSpace(c.Destination)
	start, end, complete := c.Selection.Range()
	if !validate.Required(dest) || !complete {
		c.Alerts.Show(titleUpdateTrip, msgUpdateTrip)
		return nil
	}
	c.UpdatingTrip = true

	u := trip.Update{
		ID:          c.tripID,
		Destination: dest,
		StartsAt:    start.Time(time.Local),
		EndsAt:      end.Time(time.Local),
	}
	ctx, trips := c.ctx, c.svc.Trips
	return func() tea.Msg {
		var msg TripUpdatedMsg
		msg.Err = settle(func() error { return trips.Update(ctx, u) })
		if msg.Err != nil {
			return msg
		}
		msg.ReloadErr = settle(func() error {
			t, err := trips.GetByID(ctx, u.ID)
			msg.Trip = t
			return err
		})
		return msg
	}
}

func (c *Controller) handleUpdated(msg TripUpdatedMsg) {
	c.UpdatingTrip = false
	if msg.Err != nil {
		c.log.Error("update trip failed", slog.String("error", msg.Err.Error()))
		return
	}
	if c.Overlay.Is(EditTrip) || c.Overlay.Is(TripCalendar) {
		c.Overlay.Close()
		c.resetEdit()
	}
	c.Alerts.Show(titleUpdateTrip, msgTripUpdated)
	if msg.ReloadErr != nil {
		c.log.Error("reload trip failed", slog.String("error", msg.ReloadErr.Error()))
		return
	}
	c.apply(msg.Trip)
}

// ConfirmAttendance submits the attendance form for the current invitee.
func (c *Controller) ConfirmAttendance() tea.Cmd {
	if !c.AttendanceVisible() {
		return nil
	}
	return c.Attendance.Submit(c.participantID)
}

func (c *Controller) handleConfirmed(msg AttendanceConfirmedMsg) {
	if !c.Attendance.settled(msg) {
		return
	}
	if c.participant != nil {
		c.participant.IsConfirmed = true
	}
	if c.Overlay.Is(AttendanceConfirm) {
		c.Overlay.Close()
	}
	if msg.ReloadErr == nil {
		c.Details.Participants = msg.Participants
	}
}
