package daterange

import (
	"time"

	"tableflip.dev/trip/pkg/locale"
)

// Marker styles a day in the calendar.
type Marker struct {
	Selected    bool
	StartingDay bool
	EndingDay   bool
}

// Selection is the state of a start/end pick on a calendar.
type Selection struct {
	Start  *Day
	End    *Day
	Marked map[Day]Marker
	Label  string
}

// IsEmpty reports whether nothing has been picked yet.
func (s Selection) IsEmpty() bool {
	return s.Start == nil && s.End == nil
}

// IsComplete reports whether both ends are set.
func (s Selection) IsComplete() bool {
	return s.Start != nil && s.End != nil
}

// Range returns both days of a complete selection.
func (s Selection) Range() (Day, Day, bool) {
	if !s.IsComplete() {
		return Day{}, Day{}, false
	}
	return *s.Start, *s.End, true
}

// Marker returns how d should be drawn.
func (s Selection) Marker(d Day) (Marker, bool) {
	m, ok := s.Marked[d]
	return m, ok
}

// Select applies a tap on day to the current selection and returns the new one.
// current is never modified.
func Select(current Selection, tapped Day) Selection {
	// A lone end without a start cannot come out of Select; treat it as empty.
	if current.Start == nil || current.End != nil {
		return startAt(tapped)
	}

	start, end := *current.Start, tapped
	if tapped.Before(start) {
		start, end = tapped, *current.Start
	}
	return between(start, end)
}

// Between builds a complete selection covering start..end, swapping them if
// they are out of order.
func Between(start, end Day) Selection {
	if end.Before(start) {
		start, end = end, start
	}
	return between(start, end)
}

func startAt(d Day) Selection {
	return Selection{
		Start:  &d,
		Marked: map[Day]Marker{d: {Selected: true, StartingDay: true, EndingDay: true}},
	}
}

func between(start, end Day) Selection {
	marked := make(map[Day]Marker)
	for d := start; !d.After(end); d = d.AddDays(1) {
		marked[d] = Marker{
			Selected:    true,
			StartingDay: d == start,
			EndingDay:   d == end,
		}
	}
	return Selection{
		Start:  &start,
		End:    &end,
		Marked: marked,
		Label:  FormatRange(start, end),
	}
}

// FormatRange renders "<start> a <end>" using the day/month display format.
func FormatRange(start, end Day) string {
	return locale.DayMonth(start.Time(time.UTC)) + " a " + locale.DayMonth(end.Time(time.UTC))
}
