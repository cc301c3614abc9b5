package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/trip/pkg/daterange"
)

func TestLoadTripWithoutIdentifierNavigatesBack(t *testing.T) {
	api := newFakeAPI()
	c := New(context.Background(), Options{Services: api.set()})

	cmd := c.Init()
	require.NotNil(t, cmd)
	assert.IsType(t, NavigateBackMsg{}, cmd())
	assert.False(t, c.LoadingTrip)
	assert.Zero(t, api.count("trips.get"))
}

func TestLoadTripDerivesDisplay(t *testing.T) {
	api := newFakeAPI()
	c := newLoaded(t, api, "")

	d, ok := c.Trip()
	require.True(t, ok)
	assert.Contains(t, d.When, "Florianópolis,...")
	assert.Equal(t, "Florianópolis, Brasil", c.Destination)
	assert.False(t, c.LoadingTrip)

	assert.Equal(t, 1, api.count("trips.get"))
	assert.Equal(t, 1, api.count("activities.list"))
	assert.Equal(t, 1, api.count("links.list"))
	assert.Equal(t, 1, api.count("participants.list"))
	assert.Zero(t, api.count("participants.get"))

	assert.Equal(t, daterange.NewDay(2024, time.January, 10), c.Activities.Window().Min)
	assert.Equal(t, daterange.NewDay(2024, time.January, 15), c.Activities.Window().Max)
}

func TestLoadTripFailureClearsFlag(t *testing.T) {
	api := newFakeAPI()
	api.fail["trips.get"] = errRemote
	c := newLoaded(t, api, "")

	assert.False(t, c.LoadingTrip)
	_, ok := c.Trip()
	assert.False(t, ok)
	assert.Zero(t, api.count("activities.list"))

	api.fail["trips.get"] = nil
	drain(t, c, c.LoadTrip())
	_, ok = c.Trip()
	assert.True(t, ok)
}

func TestLoadTripPanicClearsFlag(t *testing.T) {
	api := newFakeAPI()
	api.explode["trips.get"] = true
	c := newLoaded(t, api, "")

	assert.False(t, c.LoadingTrip)
	_, ok := c.Trip()
	assert.False(t, ok)
}

func TestLoadTripIgnoresSecondTrigger(t *testing.T) {
	api := newFakeAPI()
	c := New(context.Background(), Options{TripID: "t1", Services: api.set()})

	first := c.LoadTrip()
	require.NotNil(t, first)
	assert.True(t, c.LoadingTrip)
	assert.Nil(t, c.LoadTrip())

	drain(t, c, first)
	assert.Equal(t, 1, api.count("trips.get"))
}

func TestUpdateTripValidationMakesNoCall(t *testing.T) {
	api := newFakeAPI()
	c := newLoaded(t, api, "")
	require.True(t, c.OpenEdit())

	c.Destination = "   "
	require.True(t, c.OpenTripCalendar())
	c.TapTripDay(daterange.NewDay(2024, time.March, 1))
	c.TapTripDay(daterange.NewDay(2024, time.March, 5))
	c.ConfirmTripCalendar()

	assert.Nil(t, c.UpdateTrip())
	alert, ok := c.Alerts.Current()
	require.True(t, ok)
	assert.Equal(t, "Atualizar viagem", alert.Title)
	assert.Equal(t, msgUpdateTrip, alert.Message)
	c.Alerts.Dismiss()

	c.Destination = "Paris"
	c.Selection = daterange.Select(daterange.Selection{}, daterange.NewDay(2024, time.March, 1))
	assert.Nil(t, c.UpdateTrip())
	assert.Equal(t, 1, c.Alerts.Len())

	assert.Zero(t, api.count("trips.update"))
	assert.False(t, c.UpdatingTrip)
	assert.True(t, c.Overlay.Is(EditTrip))
}

func TestUpdateTripUpdatesOnceAndReloadsOnce(t *testing.T) {
	api := newFakeAPI()
	c := newLoaded(t, api, "")
	require.True(t, c.OpenEdit())

	c.Destination = "Paris"
	require.True(t, c.OpenTripCalendar())
	require.True(t, c.TapTripDay(daterange.NewDay(2024, time.March, 5)))
	require.True(t, c.TapTripDay(daterange.NewDay(2024, time.March, 1)))
	c.ConfirmTripCalendar()
	require.True(t, c.Overlay.Is(EditTrip))
	assert.True(t, c.Selection.IsComplete())

	cmd := c.UpdateTrip()
	require.NotNil(t, cmd)
	assert.True(t, c.UpdatingTrip)
	assert.Nil(t, c.UpdateTrip())

	drain(t, c, cmd)

	assert.Equal(t, 1, api.count("trips.update"))
	assert.Equal(t, 2, api.count("trips.get"))
	assert.False(t, c.UpdatingTrip)
	assert.False(t, c.Overlay.IsOpen())
	assert.True(t, c.Selection.IsEmpty())

	d, ok := c.Trip()
	require.True(t, ok)
	assert.Equal(t, "Paris", d.Destination)
	assert.Equal(t, daterange.NewDay(2024, time.March, 1), daterange.DayOf(d.StartsAt))
	assert.Equal(t, daterange.NewDay(2024, time.March, 5), daterange.DayOf(d.EndsAt))
	assert.Equal(t, daterange.NewDay(2024, time.March, 5), c.Activities.Window().Max)

	alert, ok := c.Alerts.Current()
	require.True(t, ok)
	assert.Equal(t, "Viagem atualizada com sucesso!", alert.Message)
}

func TestUpdateTripFailureKeepsForm(t *testing.T) {
	api := newFakeAPI()
	api.fail["trips.update"] = errRemote
	c := newLoaded(t, api, "")
	require.True(t, c.OpenEdit())

	c.Destination = "Paris"
	c.Selection = daterange.Between(daterange.NewDay(2024, time.March, 1), daterange.NewDay(2024, time.March, 5))
	drain(t, c, c.UpdateTrip())

	assert.False(t, c.UpdatingTrip)
	assert.True(t, c.Overlay.Is(EditTrip))
	assert.Equal(t, "Paris", c.Destination)
	assert.True(t, c.Selection.IsComplete())
	assert.Equal(t, 1, api.count("trips.get"))
	assert.Zero(t, c.Alerts.Len())

	d, _ := c.Trip()
	assert.Equal(t, "Florianópolis, Brasil", d.Destination)
}

func TestUpdateTripPanicClearsFlag(t *testing.T) {
	api := newFakeAPI()
	c := newLoaded(t, api, "")
	api.explode["trips.update"] = true
	require.True(t, c.OpenEdit())

	c.Destination = "Paris"
	c.Selection = daterange.Between(daterange.NewDay(2024, time.March, 1), daterange.NewDay(2024, time.March, 5))
	drain(t, c, c.UpdateTrip())

	assert.False(t, c.UpdatingTrip)
	assert.True(t, c.Overlay.Is(EditTrip))
}

func TestTripCalendarStartsToday(t *testing.T) {
	c := newLoaded(t, newFakeAPI(), "")
	require.True(t, c.OpenEdit())
	require.True(t, c.OpenTripCalendar())

	assert.False(t, c.TapTripDay(daterange.NewDay(2023, time.December, 31)))
	assert.True(t, c.TapTripDay(daterange.NewDay(2024, time.January, 1)))
}

func TestTapTripDayNeedsCalendar(t *testing.T) {
	c := newLoaded(t, newFakeAPI(), "")
	assert.False(t, c.OpenTripCalendar())
	assert.False(t, c.TapTripDay(daterange.NewDay(2024, time.March, 1)))
	assert.True(t, c.Selection.IsEmpty())
}

func TestCloseOverlayWalksBackThroughCalendar(t *testing.T) {
	c := newLoaded(t, newFakeAPI(), "")
	require.True(t, c.OpenEdit())
	c.Destination = "Paris"
	require.True(t, c.OpenTripCalendar())
	c.TapTripDay(daterange.NewDay(2024, time.March, 1))

	c.CloseOverlay()
	assert.True(t, c.Overlay.Is(EditTrip))
	assert.Equal(t, "Paris", c.Destination)
	assert.False(t, c.Selection.IsEmpty())

	c.CloseOverlay()
	assert.False(t, c.Overlay.IsOpen())
	assert.True(t, c.Selection.IsEmpty())
	assert.Equal(t, "Florianópolis, Brasil", c.Destination)
}

func TestSwitchingViewsKeepsEachOverlay(t *testing.T) {
	c := newLoaded(t, newFakeAPI(), "")

	c.Activities.Open()
	c.Activities.Title = "Museu"
	c.ToggleMode()
	assert.Equal(t, ModeDetails, c.Mode)

	c.Details.Links.Open()
	c.SetMode(ModeActivities)

	assert.True(t, c.Activities.Overlay.Is(NewActivity))
	assert.Equal(t, "Museu", c.Activities.Title)
	assert.True(t, c.Details.Links.Overlay.Is(NewLink))
	assert.False(t, c.Overlay.IsOpen())
}

func TestAttendanceOpensForPendingInvitee(t *testing.T) {
	api := newFakeAPI()
	c := newLoaded(t, api, "p2")

	assert.Equal(t, 1, api.count("participants.get"))
	assert.True(t, c.AttendancePending())
	assert.True(t, c.Overlay.Is(AttendanceConfirm))
	assert.True(t, c.AttendanceVisible())

	c.LoadingTrip = true
	assert.False(t, c.AttendanceVisible())
	assert.Nil(t, c.ConfirmAttendance())
}

func TestAttendanceStaysClosedForConfirmedParticipant(t *testing.T) {
	c := newLoaded(t, newFakeAPI(), "p1")

	assert.False(t, c.AttendancePending())
	assert.False(t, c.Overlay.IsOpen())
	assert.False(t, c.OpenAttendance())
}

func TestAttendanceParticipantFailureIsNotFatal(t *testing.T) {
	api := newFakeAPI()
	api.fail["participants.get"] = errRemote
	c := newLoaded(t, api, "p2")

	_, ok := c.Trip()
	assert.True(t, ok)
	assert.False(t, c.Overlay.IsOpen())
}

func TestConfirmAttendance(t *testing.T) {
	api := newFakeAPI()
	c := newLoaded(t, api, "p2")

	c.Attendance.Name = "Bia"
	c.Attendance.Email = "not-an-email"
	assert.Nil(t, c.ConfirmAttendance())
	alert, ok := c.Alerts.Current()
	require.True(t, ok)
	assert.Equal(t, "E-mail inválido.", alert.Message)
	c.Alerts.Dismiss()

	c.Attendance.Email = "bia@example.com"
	cmd := c.ConfirmAttendance()
	require.NotNil(t, cmd)
	assert.True(t, c.Attendance.Confirming)
	assert.Nil(t, c.ConfirmAttendance())

	drain(t, c, cmd)

	assert.Equal(t, 1, api.count("participants.confirm"))
	assert.Equal(t, 2, api.count("participants.list"))
	assert.False(t, c.Attendance.Confirming)
	assert.False(t, c.Overlay.IsOpen())
	assert.False(t, c.AttendancePending())
	assert.Empty(t, c.Attendance.Name)
	assert.Equal(t, 2, c.Details.Confirmed())
}

func TestConfirmAttendanceFailureKeepsForm(t *testing.T) {
	api := newFakeAPI()
	api.fail["participants.confirm"] = errRemote
	c := newLoaded(t, api, "p2")

	c.Attendance.Name = "Bia"
	c.Attendance.Email = "bia@example.com"
	drain(t, c, c.ConfirmAttendance())

	assert.False(t, c.Attendance.Confirming)
	assert.True(t, c.Overlay.Is(AttendanceConfirm))
	assert.Equal(t, "Bia", c.Attendance.Name)
	assert.True(t, c.AttendancePending())
}

func TestCloseAttendanceResetsFields(t *testing.T) {
	c := newLoaded(t, newFakeAPI(), "p2")
	c.Attendance.Name = "Bia"

	c.CloseOverlay()
	assert.False(t, c.Overlay.IsOpen())
	assert.Empty(t, c.Attendance.Name)

	assert.True(t, c.OpenAttendance())
}

func TestTripRegionWaitsForSaveToSettle(t *testing.T) {
	api := newFakeAPI()
	c := newLoaded(t, api, "p2")
	c.CloseOverlay()
	require.True(t, c.OpenEdit())
	c.Destination = "Paris"
	c.Selection = daterange.Between(daterange.NewDay(2024, time.March, 1), daterange.NewDay(2024, time.March, 5))

	cmd := c.UpdateTrip()
	require.NotNil(t, cmd)

	c.CloseOverlay()
	assert.True(t, c.Overlay.Is(EditTrip))
	assert.Equal(t, "Paris", c.Destination)
	assert.False(t, c.OpenAttendance())
	assert.False(t, c.OpenEdit())

	drain(t, c, cmd)
	assert.False(t, c.Overlay.IsOpen())
	assert.True(t, c.OpenAttendance())
}

func TestUpdateTripSuccessLeavesOtherOverlays(t *testing.T) {
	api := newFakeAPI()
	c := newLoaded(t, api, "p2")
	c.CloseOverlay()
	require.True(t, c.OpenEdit())
	c.Destination = "Paris"
	c.Selection = daterange.Between(daterange.NewDay(2024, time.March, 1), daterange.NewDay(2024, time.March, 5))
	cmd := c.UpdateTrip()
	require.NotNil(t, cmd)

	c.Overlay.Open(AttendanceConfirm)
	c.Attendance.Name = "Bia"
	drain(t, c, cmd)

	assert.True(t, c.Overlay.Is(AttendanceConfirm))
	assert.Equal(t, "Bia", c.Attendance.Name)
	assert.Equal(t, 1, api.count("trips.update"))
}

func TestAttendanceStaysOpenWhileConfirming(t *testing.T) {
	api := newFakeAPI()
	c := newLoaded(t, api, "p2")
	c.Attendance.Name = "Bia"
	c.Attendance.Email = "bia@example.com"

	cmd := c.ConfirmAttendance()
	require.NotNil(t, cmd)
	c.CloseOverlay()
	assert.True(t, c.Overlay.Is(AttendanceConfirm))
	assert.False(t, c.OpenEdit())

	drain(t, c, cmd)
	assert.False(t, c.Overlay.IsOpen())
	assert.Empty(t, c.Attendance.Name)
}
