package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/trip/pkg/daterange"
	"tableflip.dev/trip/pkg/locale"
	"tableflip.dev/trip/pkg/overlay"
	"tableflip.dev/trip/pkg/session"
	"tableflip.dev/trip/pkg/tui/components/calendar"
)

// View renders the screen with the visible overlay and any alert on top.
func (m *Model) View() string {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	base := lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(width),
		m.tabsView(),
		"",
		m.bodyView(width),
	)
	base = m.placeFooter(base, height)

	fg := m.overlayView()
	if m.help != nil {
		fg = m.help.View()
	}
	if a, ok := m.ctrl.Alerts.Current(); ok {
		fg = m.alertView(a)
	}
	return overlay.Compose(base, width, height, fg)
}

func (m *Model) placeFooter(base string, height int) string {
	lines := strings.Split(base, "\n")
	for len(lines) < height-1 {
		lines = append(lines, "")
	}
	if len(lines) > height-1 {
		lines = lines[:max(height-1, 0)]
	}
	return strings.Join(append(lines, m.footerView()), "\n")
}

func (m *Model) headerView(width int) string {
	th := m.theme.Header
	c := m.ctrl
	var line string
	d, ok := c.Trip()
	switch {
	case ok:
		line = th.Title.Render(d.When)
		if c.LoadingTrip {
			line += m.theme.Panel.Muted.Render("  atualizando...")
		}
	case c.LoadingTrip:
		line = m.theme.Panel.Muted.Render("Carregando viagem...")
	default:
		line = m.theme.Panel.Muted.Render("Viagem indisponível. Pressione r para tentar novamente.")
	}
	return th.Frame.Width(max(width-2, 10)).Render(line)
}

func (m *Model) tabsView() string {
	th := m.theme.Header
	tab := func(mode session.ViewMode, title string) string {
		if m.ctrl.Mode == mode {
			return th.ActiveTab.Render(title)
		}
		return th.Tab.Render(title)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		tab(session.ModeActivities, "Atividades"),
		" ",
		tab(session.ModeDetails, "Detalhes"),
	)
}

func (m *Model) bodyView(width int) string {
	switch m.ctrl.Mode {
	case session.ModeActivities:
		return m.activitiesView()
	case session.ModeDetails:
		return m.detailsView(width)
	}
	return ""
}

func (m *Model) activitiesView() string {
	p := m.theme.Panel
	f := m.ctrl.Activities
	lines := []string{p.Title.Render("Atividades")}
	if f.Loading {
		return strings.Join(append(lines, p.Muted.Render("Carregando atividades...")), "\n")
	}

	days := f.Days()
	if len(days) == 0 {
		return strings.Join(append(lines, p.Muted.Render("Nenhuma atividade cadastrada.")), "\n")
	}
	today := m.today()
	for _, plan := range days {
		style := p.Body
		if plan.Past(today) {
			style = p.Past
		}
		t := plan.Day.Time(time.Local)
		lines = append(lines, "", style.Bold(true).Render(fmt.Sprintf("Dia %d", t.Day()))+" "+p.Muted.Render(locale.Weekday(t)))
		if len(plan.Activities) == 0 {
			lines = append(lines, p.Muted.Render("  Nenhuma atividade cadastrada nessa data."))
			continue
		}
		for _, a := range plan.Activities {
			at := a.OccursAt.In(time.Local)
			mark := p.Check.Render("●")
			if plan.Past(today) {
				mark = p.Muted.Render("✓")
			}
			lines = append(lines, fmt.Sprintf("  %s %s  %s", mark, style.Render(a.Title), p.Muted.Render(at.Format("15:04")+"h")))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) detailsView(width int) string {
	p := m.theme.Panel
	d := m.ctrl.Details
	lines := []string{p.Title.Render("Links importantes")}
	if d.Loading {
		return strings.Join(append(lines, p.Muted.Render("Carregando detalhes...")), "\n")
	}

	if len(d.Links.Links) == 0 {
		lines = append(lines, p.Muted.Render("Nenhum link adicionado."))
	}
	for _, l := range d.Links.Links {
		lines = append(lines, "  "+p.Body.Render(l.Title), "    "+p.Muted.MaxWidth(max(width-4, 10)).Render(l.URL))
	}

	lines = append(lines, "", p.Title.Render("Convidados")+" "+
		p.Muted.Render(fmt.Sprintf("(%d de %d confirmados)", d.Confirmed(), len(d.Participants))))
	if len(d.Participants) == 0 {
		lines = append(lines, p.Muted.Render("Nenhum convidado."))
	}
	for i, person := range d.Participants {
		name := person.Name
		if name == "" {
			name = fmt.Sprintf("Convidado %d", i)
		}
		mark := p.Muted.Render("○")
		if person.IsConfirmed {
			mark = p.Check.Render("✓")
		}
		lines = append(lines, fmt.Sprintf("  %s %s  %s", mark, p.Body.Render(name), p.Muted.Render(person.Email)))
	}

	lines = append(lines, "", p.Muted.Render("Viagem "+m.ctrl.TripID()))
	return strings.Join(lines, "\n")
}

func (m *Model) footerView() string {
	help := "a atividades · d detalhes · e editar · n novo · r recarregar · ? ajuda · q sair"
	c := m.ctrl
	switch {
	case c.Alerts.Len() > 0:
		help = "enter continuar"
	case m.help != nil:
		help = "setas rolar · esc fechar"
	case c.Overlay.Is(session.TripCalendar), c.Activities.Overlay.Is(session.ActivityCalendar):
		help = "setas/hjkl mover · espaço marcar · y confirmar · esc voltar"
	case m.activeForm() != formNone:
		help = "tab próximo campo · enter salvar · c calendário · esc fechar"
	case c.AttendancePending():
		help += " · i confirmar presença"
	}
	return m.theme.Footer.Help.Render(help)
}

// overlayView renders the visible overlay of the trip region, or of the current
// sub-view when the trip region is clear.
func (m *Model) overlayView() string {
	c := m.ctrl
	switch c.Overlay.Active() {
	case session.TripNone:
	case session.EditTrip:
		return m.editView()
	case session.TripCalendar:
		return m.tripCalendarView()
	case session.AttendanceConfirm:
		if c.AttendanceVisible() {
			return m.attendanceView()
		}
		return ""
	}

	switch c.Mode {
	case session.ModeActivities:
		switch c.Activities.Overlay.Active() {
		case session.ActivityNone:
		case session.NewActivity:
			return m.activityFormView()
		case session.ActivityCalendar:
			return m.activityCalendarView()
		}
	case session.ModeDetails:
		switch c.Details.Links.Overlay.Active() {
		case session.LinkNone:
		case session.NewLink:
			return m.linkFormView()
		}
	}
	return ""
}

func (m *Model) modal(title string, body ...string) string {
	th := m.theme.Modal
	parts := append([]string{th.Title.Render(title), ""}, body...)
	return th.Frame.Width(modalWidth).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) formRows(kind formKind, date string) []string {
	ft := m.theme.Form
	var rows []string
	for i, f := range m.fields(kind) {
		label := ft.Label.Render(f.label)
		if i == m.focus[kind] {
			label = ft.FocusedLabel.Render(f.label)
		}
		value := date
		if f.input != nil {
			value = f.input.View()
		}
		rows = append(rows, label, value, "")
	}
	return rows
}

func (m *Model) editView() string {
	c := m.ctrl
	date := m.theme.Form.Placeholder.Render("> Quando?")
	if label := c.Selection.Label; label != "" {
		date = "> " + m.theme.Form.Value.Render(label)
	}
	rows := m.formRows(formEdit, date)
	rows = append(rows, busy(m.theme, c.UpdatingTrip, "Atualizar viagem", "Atualizando..."))
	return m.modal("Atualizar viagem", rows...)
}

func (m *Model) tripCalendarView() string {
	c := m.ctrl
	cal := m.picker.View(c.Selection.Marker, m.today(), calendar.DefaultOptions())
	label := c.Selection.Label
	if label == "" {
		label = "Selecione o início e o fim da viagem."
	}
	return m.modal("Selecionar datas", cal, "", m.theme.Modal.Body.Render(label),
		"", Button(m.theme, Secondary, "y confirmar"))
}

func (m *Model) attendanceView() string {
	c := m.ctrl
	d, _ := c.Trip()
	invite := fmt.Sprintf("Você foi convidado(a) para participar de uma viagem para %s nas datas de %s.",
		d.Destination, d.Span)
	body := []string{
		m.theme.Modal.Body.Render(wordwrap.String(invite, modalWidth-6)),
		"",
		m.theme.Modal.Body.Render(wordwrap.String("Para confirmar sua presença na viagem, preencha os dados abaixo:", modalWidth-6)),
		"",
	}
	body = append(body, m.formRows(formAttendance, "")...)
	body = append(body, busy(m.theme, c.Attendance.Confirming, "Confirmar presença", "Confirmando..."))
	return m.modal("Confirmar presença", body...)
}

func (m *Model) activityFormView() string {
	f := m.ctrl.Activities
	date := m.theme.Form.Placeholder.Render("> Data")
	if f.Date != nil {
		date = "> " + m.theme.Form.Value.Render(locale.DayMonth(f.Date.Time(time.Local)))
	}
	rows := m.formRows(formActivity, date)
	rows = append(rows, busy(m.theme, f.Creating, "Salvar atividade", "Salvando..."))
	return m.modal("Cadastrar atividade", rows...)
}

func (m *Model) activityCalendarView() string {
	f := m.ctrl.Activities
	marks := func(d daterange.Day) (daterange.Marker, bool) {
		if f.Date == nil || *f.Date != d {
			return daterange.Marker{}, false
		}
		return daterange.Marker{Selected: true, StartingDay: true, EndingDay: true}, true
	}
	cal := m.picker.View(marks, m.today(), calendar.DefaultOptions())
	return m.modal("Data da atividade", cal, "", Button(m.theme, Secondary, "y confirmar"))
}

func (m *Model) linkFormView() string {
	f := m.ctrl.Details.Links
	rows := m.formRows(formLink, "")
	rows = append(rows, busy(m.theme, f.Creating, "Salvar link", "Salvando..."))
	return m.modal("Cadastrar link", rows...)
}

func (m *Model) alertView(a session.Alert) string {
	th := m.theme.Alert
	body := lipgloss.JoinVertical(lipgloss.Left,
		th.Title.Render(a.Title),
		"",
		th.Body.Render(wordwrap.String(a.Message, modalWidth-6)),
		"",
		Button(m.theme, Primary, "OK"),
	)
	return th.Frame.Width(modalWidth).Render(body)
}
