package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/trip/pkg/daterange"
	"tableflip.dev/trip/pkg/locale"
	"tableflip.dev/trip/pkg/trip"
)

// PrettyPrint renders a trip for humans.
type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
	// Today dims the days before it.
	Today daterange.Day
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d %s\n", count, noun)
}

// Trip prints the header, the day by day plan, the links and the guests.
func (pp *PrettyPrint) Trip(r Report) {
	d := trip.Derive(r.Trip)
	pp.Title(d.When)
	if pp.ShowID {
		_, _ = color.New(color.FgHiYellow, color.Faint).Fprintln(pp.out(), r.Trip.ID)
	}
	pp.NewLine()

	pp.TitleWithCount("Atividades", len(r.Activities), "cadastradas")
	pp.Activities(trip.GroupByDay(r.Activities, r.Trip.Window()))
	pp.NewLine()

	pp.TitleWithCount("Links importantes", len(r.Links), "links")
	pp.Links(r.Links)
	pp.NewLine()

	confirmed := 0
	for _, p := range r.Participants {
		if p.IsConfirmed {
			confirmed++
		}
	}
	pp.TitleWithCount("Convidados", confirmed, fmt.Sprintf("de %d confirmados", len(r.Participants)))
	pp.Participants(r.Participants)
}

func (pp *PrettyPrint) Activities(days []trip.DayPlan) {
	if len(days) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, plan := range days {
		day := plan.Day.Time(time.Local)
		style := bold
		if !pp.Today.IsZero() && plan.Past(pp.Today) {
			style = faint
		}
		tbl.AddRow(style.Sprintf("Dia %d", day.Day()), faint.Sprint(locale.Weekday(day)), "")
		if len(plan.Activities) == 0 {
			tbl.AddRow("", faint.Sprint("nenhuma atividade"), "")
		}
		for _, a := range plan.Activities {
			tbl.AddRow("", a.OccursAt.In(time.Local).Format("15:04")+"h", a.Title)
		}
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func (pp *PrettyPrint) Links(links []trip.Link) {
	if len(links) == 0 {
		pp.none()
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	for _, l := range links {
		row := []any{l.Title, l.URL}
		if pp.ShowID {
			row = append([]any{y.Sprint(l.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func (pp *PrettyPrint) Participants(people []trip.Participant) {
	if len(people) == 0 {
		pp.none()
		return
	}
	green := color.New(color.FgGreen)
	faint := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for i, p := range people {
		mark := faint.Sprint("○")
		if p.IsConfirmed {
			mark = green.Sprint("✓")
		}
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("Convidado %d", i)
		}
		if p.IsOwner {
			name += faint.Sprint(" (organizador)")
		}
		row := []any{mark, name, faint.Sprint(p.Email)}
		if pp.ShowID {
			row = append(row, y.Sprint(p.ID))
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), strings.Repeat(" ", 2)+"none\n")
}
