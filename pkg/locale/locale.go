// Package locale formats dates for display in the trip screens.
package locale

import (
	"time"

	"github.com/goodsign/monday"
)

// Default is the locale every label is rendered in.
const Default = monday.LocalePtBR

const (
	layoutDayMonth = "02 de January"
	layoutDay      = "02"
	layoutMonth    = "January"
	layoutShort    = "Jan"
	layoutWeekday  = "Monday"
)

// Format renders t with a Go layout, translating month and weekday names.
func Format(t time.Time, layout string) string {
	return monday.Format(t, layout, Default)
}

// DayMonth renders "10 de janeiro".
func DayMonth(t time.Time) string {
	return Format(t, layoutDayMonth)
}

// Day renders the zero padded day of month.
func Day(t time.Time) string {
	return t.Format(layoutDay)
}

// Month renders the full month name.
func Month(t time.Time) string {
	return Format(t, layoutMonth)
}

// ShortMonth renders the abbreviated month name.
func ShortMonth(t time.Time) string {
	return Format(t, layoutShort)
}

// Weekday renders the weekday name.
func Weekday(t time.Time) string {
	return Format(t, layoutWeekday)
}
