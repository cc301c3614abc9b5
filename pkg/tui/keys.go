package tui

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/trip/pkg/daterange"
	"tableflip.dev/trip/pkg/session"
	"tableflip.dev/trip/pkg/tui/components/calendar"
	"tableflip.dev/trip/pkg/tui/components/help"
)

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return tea.Quit
	}
	c := m.ctrl
	if _, ok := c.Alerts.Current(); ok {
		switch key {
		case "enter", "esc", "space", " ":
			c.Alerts.Dismiss()
		}
		return nil
	}
	if m.help != nil {
		switch key {
		case "esc", "q", "?":
			m.help = nil
			return nil
		}
		return m.help.Update(msg)
	}

	switch {
	case c.Overlay.IsOpen():
		return m.tripKey(msg)
	case c.Mode == session.ModeActivities && c.Activities.Overlay.IsOpen():
		return m.activityKey(msg)
	case c.Mode == session.ModeDetails && c.Details.Links.Overlay.IsOpen():
		return m.linkKey(msg)
	}
	return m.baseKey(key)
}

func (m *Model) baseKey(key string) tea.Cmd {
	c := m.ctrl
	switch key {
	case "q":
		return tea.Quit
	case "?":
		w, h := m.helpSize()
		m.help = help.New(w, h, m.theme.Modal.Frame)
	case "a":
		c.SetMode(session.ModeActivities)
	case "d":
		c.SetMode(session.ModeDetails)
	case "tab":
		c.ToggleMode()
	case "e":
		if c.OpenEdit() {
			m.focus[formEdit] = 0
		}
	case "i":
		if c.OpenAttendance() {
			m.focus[formAttendance] = 0
		}
	case "n":
		if c.Mode == session.ModeActivities {
			c.Activities.Open()
			m.focus[formActivity] = 0
		} else {
			c.Details.Links.Open()
			m.focus[formLink] = 0
		}
	case "r":
		if _, ok := c.Trip(); !ok {
			return c.LoadTrip()
		}
		return tea.Batch(c.LoadTrip(), c.Activities.Reload(), c.Details.Reload())
	}
	return nil
}

func (m *Model) tripKey(msg tea.KeyMsg) tea.Cmd {
	c := m.ctrl
	switch c.Overlay.Active() {
	case session.TripNone:
	case session.TripCalendar:
		m.calendarKey(msg.String(), c.TapTripDay, c.ConfirmTripCalendar, c.CloseOverlay)
	case session.EditTrip:
		return m.formKey(msg, formEdit, c.UpdateTrip, m.openTripCalendar, c.CloseOverlay)
	case session.AttendanceConfirm:
		if !c.AttendanceVisible() {
			return nil
		}
		return m.formKey(msg, formAttendance, c.ConfirmAttendance, nil, c.CloseOverlay)
	}
	return nil
}

func (m *Model) activityKey(msg tea.KeyMsg) tea.Cmd {
	f := m.ctrl.Activities
	switch f.Overlay.Active() {
	case session.ActivityNone:
	case session.ActivityCalendar:
		m.calendarKey(msg.String(), f.PickDate, f.ConfirmCalendar, f.Close)
	case session.NewActivity:
		return m.formKey(msg, formActivity, f.Submit, m.openActivityCalendar, f.Close)
	}
	return nil
}

func (m *Model) linkKey(msg tea.KeyMsg) tea.Cmd {
	f := m.ctrl.Details.Links
	switch f.Overlay.Active() {
	case session.LinkNone:
	case session.NewLink:
		return m.formKey(msg, formLink, f.Submit, nil, f.Close)
	}
	return nil
}

// formKey drives a form: tab cycles fields, enter submits or opens the picker on
// the date field, esc closes. Everything else is typed into the focused input.
func (m *Model) formKey(msg tea.KeyMsg, kind formKind, submit func() tea.Cmd, openCalendar func() bool, closeForm func()) tea.Cmd {
	fs := m.fields(kind)
	if len(fs) == 0 {
		return nil
	}
	at := min(m.focus[kind], len(fs)-1)
	onDate := fs[at].input == nil

	switch msg.String() {
	case "esc":
		closeForm()
		m.focus[kind] = 0
		return nil
	case "tab":
		m.focus[kind] = (at + 1) % len(fs)
		return nil
	case "shift+tab":
		m.focus[kind] = (at + len(fs) - 1) % len(fs)
		return nil
	case "enter":
		if onDate && openCalendar != nil {
			openCalendar()
			return nil
		}
		return submit()
	case "c", "space", " ":
		if onDate && openCalendar != nil {
			openCalendar()
			return nil
		}
	}
	if onDate {
		return nil
	}

	in := fs[at].input
	model, _ := in.Update(msg)
	*in = model
	fs[at].set(in.Value())
	return nil
}

func (m *Model) calendarKey(key string, tap func(daterange.Day) bool, confirm, back func()) {
	if m.picker.Move(key) {
		return
	}
	switch key {
	case "enter", "space", " ":
		tap(m.picker.Cursor)
	case "y":
		confirm()
	case "esc":
		back()
	}
}

func (m *Model) openTripCalendar() bool {
	c := m.ctrl
	if !c.OpenTripCalendar() {
		return false
	}
	start := m.today()
	if c.Selection.Start != nil {
		start = *c.Selection.Start
	} else if t, ok := c.Trip(); ok && !t.StartsAt.IsZero() {
		start = daterange.DayOf(t.StartsAt.Local())
	}
	m.picker = calendar.NewPicker(start, c.TripCalendarBounds())
	return true
}

func (m *Model) openActivityCalendar() bool {
	f := m.ctrl.Activities
	if !f.OpenCalendar() {
		return false
	}
	start := m.today()
	if f.Date != nil {
		start = *f.Date
	}
	m.picker = calendar.NewPicker(start, f.Window())
	return true
}
