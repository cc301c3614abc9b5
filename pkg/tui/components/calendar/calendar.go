// Package calendar renders month grids and moves a day cursor through them.
package calendar

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/trip/pkg/daterange"
	"tableflip.dev/trip/pkg/locale"
)

// Day describes a single day rendered in the calendar.
type Day struct {
	Day      int
	Disabled bool
	InRange  bool
	Edge     bool
	IsToday  bool
	IsCursor bool
}

// Options controls calendar styling.
type Options struct {
	TitleStyle    lipgloss.Style
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	DayStyle      lipgloss.Style
	DisabledStyle lipgloss.Style
	TodayStyle    lipgloss.Style
	RangeStyle    lipgloss.Style
	EdgeStyle     lipgloss.Style
	CursorStyle   lipgloss.Style
	ShowHeader    bool
}

// Render produces a multi-line calendar string for the given month.
func Render(month time.Time, days []Day, opts Options) string {
	if month.IsZero() {
		return ""
	}

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysInMonth := DaysIn(month)

	byDay := make(map[int]Day, len(days))
	for _, d := range days {
		if d.Day >= 1 && d.Day <= daysInMonth {
			byDay[d.Day] = d
		}
	}

	var lines []string
	if opts.ShowHeader {
		lines = append(lines,
			opts.TitleStyle.Render(locale.Format(first, "January 2006")),
			opts.HeaderStyle.Render(weekdayHeader(first)))
	}

	startOffset := int(first.Weekday())
	totalCells := startOffset + daysInMonth
	rows := (totalCells + 6) / 7

	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			cellIdx := row*7 + col
			day := cellIdx - startOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, opts.EmptyStyle.Render("  "))
				continue
			}
			cells = append(cells, renderDay(byDay[day], day, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(info Day, day int, opts Options) string {
	text := fmt.Sprintf("%2d", day)

	style := opts.DayStyle
	switch {
	case info.Disabled:
		style = opts.DisabledStyle
	case info.Edge:
		style = opts.EdgeStyle
	case info.InRange:
		style = opts.RangeStyle
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsCursor {
		style = opts.CursorStyle.Inherit(style)
	}
	return style.Render(text)
}

// weekdayHeader renders one localized initial per weekday, Sunday first.
func weekdayHeader(first time.Time) string {
	sunday := first.AddDate(0, 0, -int(first.Weekday()))
	cells := make([]string, 7)
	for i := range cells {
		name := locale.Weekday(sunday.AddDate(0, 0, i))
		r, _ := utf8.DecodeRuneInString(name)
		cells[i] = fmt.Sprintf("%2s", string(unicode.ToUpper(r)))
	}
	return strings.Join(cells, " ")
}

// DaysIn returns the number of days in a month.
func DaysIn(month time.Time) int {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	return first.AddDate(0, 1, -1).Day()
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	return Options{
		TitleStyle:    lipgloss.NewStyle().Bold(true),
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		EmptyStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		DayStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		DisabledStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		TodayStyle:    lipgloss.NewStyle().Underline(true),
		RangeStyle:    lipgloss.NewStyle().Background(lipgloss.Color("22")).Foreground(lipgloss.Color("15")),
		EdgeStyle:     lipgloss.NewStyle().Background(lipgloss.Color("149")).Foreground(lipgloss.Color("0")).Bold(true),
		CursorStyle:   lipgloss.NewStyle().Reverse(true),
		ShowHeader:    true,
	}
}

// Marks reports how a day is highlighted, e.g. daterange.Selection.Marker.
type Marks func(daterange.Day) (daterange.Marker, bool)

// Picker is a day cursor confined to a window of selectable days.
type Picker struct {
	Cursor daterange.Day
	Bounds daterange.Bounds
}

// NewPicker places the cursor on start, moved inside bounds.
func NewPicker(start daterange.Day, bounds daterange.Bounds) Picker {
	return Picker{Cursor: bounds.Clamp(start), Bounds: bounds}
}

// Move handles navigation keys (hjkl, arrow keys, pgup/pgdown for months). It
// reports whether the key was a movement key. The cursor never leaves Bounds.
func (p *Picker) Move(key string) bool {
	var next daterange.Day
	switch key {
	case "left", "h":
		next = p.Cursor.AddDays(-1)
	case "right", "l":
		next = p.Cursor.AddDays(1)
	case "up", "k":
		next = p.Cursor.AddDays(-7)
	case "down", "j":
		next = p.Cursor.AddDays(7)
	case "pgup", "[":
		next = addMonths(p.Cursor, -1)
	case "pgdown", "]":
		next = addMonths(p.Cursor, 1)
	default:
		return false
	}
	p.Cursor = p.Bounds.Clamp(next)
	return true
}

// View renders the cursor's month with marks, today and disabled days.
func (p Picker) View(marks Marks, today daterange.Day, opts Options) string {
	month := p.Cursor.Time(time.UTC)
	n := DaysIn(month)
	days := make([]Day, 0, n)
	for i := 1; i <= n; i++ {
		d := daterange.NewDay(p.Cursor.Year, p.Cursor.Month, i)
		info := Day{
			Day:      i,
			Disabled: !p.Bounds.Contains(d),
			IsToday:  d == today,
			IsCursor: d == p.Cursor,
		}
		if marks != nil {
			if m, ok := marks(d); ok {
				info.InRange = m.Selected
				info.Edge = m.StartingDay || m.EndingDay
			}
		}
		days = append(days, info)
	}
	return Render(month, days, opts)
}

func addMonths(d daterange.Day, n int) daterange.Day {
	target := daterange.NewDay(d.Year, d.Month+time.Month(n), 1)
	last := DaysIn(target.Time(time.UTC))
	return daterange.NewDay(target.Year, target.Month, min(d.Day, last))
}
