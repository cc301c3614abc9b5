// Package tui renders the trip screen and routes keys to the session controller.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/trip/pkg/daterange"
	"tableflip.dev/trip/pkg/session"
	"tableflip.dev/trip/pkg/tui/components/calendar"
	"tableflip.dev/trip/pkg/tui/components/help"
	"tableflip.dev/trip/pkg/tui/theme"
	"tableflip.dev/trip/pkg/trip"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	modalWidth    = 48
)

type formKind int

const (
	formNone formKind = iota
	formEdit
	formAttendance
	formActivity
	formLink
	formCount
)

// field is one focusable row of a form. A nil input is the date field.
type field struct {
	label string
	input *textinput.Model
	set   func(string)
}

// Model is the root Bubble Tea model of the trip screen.
type Model struct {
	ctrl  *session.Controller
	theme theme.Theme
	now   func() time.Time
	err   error

	width  int
	height int

	destination textinput.Model
	actTitle    textinput.Model
	actHour     textinput.Model
	linkTitle   textinput.Model
	linkURL     textinput.Model
	name        textinput.Model
	email       textinput.Model

	focus  [formCount]int
	picker calendar.Picker
	help   *help.Pane
}

// New builds the screen around ctrl.
func New(ctrl *session.Controller) *Model {
	return &Model{
		ctrl:        ctrl,
		theme:       theme.Default(),
		now:         time.Now,
		destination: newInput("Para onde?", 256),
		actTitle:    newInput("Qual a atividade?", 256),
		actHour:     newInput("Horário", session.HourMaxLength),
		linkTitle:   newInput("Título do link", 256),
		linkURL:     newInput("URL", 2048),
		name:        newInput("Seu nome completo", 256),
		email:       newInput("E-mail de confirmação", 256),
	}
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.CharLimit = limit
	return ti
}

// Err reports why the screen quit on its own, e.g. trip.ErrMissingIdentifier.
func (m *Model) Err() error {
	return m.err
}

// Init starts loading the trip.
func (m *Model) Init() tea.Cmd {
	return m.ctrl.Init()
}

// Update routes keys to the focused region and result messages to the controller.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.help != nil {
			m.help.Resize(m.helpSize())
		}
		return m, nil
	case session.NavigateBackMsg:
		m.err = trip.ErrMissingIdentifier
		return m, tea.Quit
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	default:
		cmd = m.ctrl.Update(msg)
	}
	m.sync()
	return m, cmd
}

// Run launches the interactive trip screen.
func Run(ctrl *session.Controller) error {
	m := New(ctrl)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return m.Err()
}

func (m *Model) helpSize() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return min(width-4, 72), height - 4
}

func (m *Model) today() daterange.Day {
	return daterange.DayOf(m.now())
}

// activeForm returns the form whose fields receive keys. A picker open on top of
// a form reports formNone.
func (m *Model) activeForm() formKind {
	c := m.ctrl
	switch {
	case c.Overlay.Is(session.EditTrip):
		return formEdit
	case c.Overlay.Is(session.AttendanceConfirm):
		return formAttendance
	case c.Overlay.IsOpen():
		return formNone
	case c.Mode == session.ModeActivities && c.Activities.Overlay.Is(session.NewActivity):
		return formActivity
	case c.Mode == session.ModeDetails && c.Details.Links.Overlay.Is(session.NewLink):
		return formLink
	}
	return formNone
}

func (m *Model) fields(kind formKind) []field {
	c := m.ctrl
	switch kind {
	case formNone, formCount:
	case formEdit:
		return []field{
			{label: "Destino", input: &m.destination, set: func(s string) { c.Destination = s }},
			{label: "Quando?"},
		}
	case formAttendance:
		return []field{
			{label: "Nome", input: &m.name, set: func(s string) { c.Attendance.Name = s }},
			{label: "E-mail", input: &m.email, set: func(s string) { c.Attendance.Email = s }},
		}
	case formActivity:
		return []field{
			{label: "Atividade", input: &m.actTitle, set: func(s string) { c.Activities.Title = s }},
			{label: "Data"},
			{label: "Horário", input: &m.actHour, set: c.Activities.SetHour},
		}
	case formLink:
		return []field{
			{label: "Título", input: &m.linkTitle, set: func(s string) { c.Details.Links.Title = s }},
			{label: "URL", input: &m.linkURL, set: func(s string) { c.Details.Links.URL = s }},
		}
	}
	return nil
}

// sync copies controller fields into the inputs and moves the cursor to the
// focused field. Textinput commands are dropped, so the cursor does not blink.
func (m *Model) sync() {
	c := m.ctrl
	setValue(&m.destination, c.Destination)
	setValue(&m.name, c.Attendance.Name)
	setValue(&m.email, c.Attendance.Email)
	setValue(&m.actTitle, c.Activities.Title)
	setValue(&m.actHour, c.Activities.Hour)
	setValue(&m.linkTitle, c.Details.Links.Title)
	setValue(&m.linkURL, c.Details.Links.URL)

	for _, in := range []*textinput.Model{
		&m.destination, &m.name, &m.email, &m.actTitle, &m.actHour, &m.linkTitle, &m.linkURL,
	} {
		in.Blur()
	}
	kind := m.activeForm()
	fs := m.fields(kind)
	if len(fs) == 0 {
		return
	}
	m.focus[kind] = min(m.focus[kind], len(fs)-1)
	if in := fs[m.focus[kind]].input; in != nil {
		_ = in.Focus()
	}
}

func setValue(in *textinput.Model, v string) {
	if in.Value() != v {
		in.SetValue(v)
	}
}
