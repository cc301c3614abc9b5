package options

import (
	"fmt"
	"time"

	"tableflip.dev/trip/pkg/daterange"
)

// ParseDay accepts "2006-01-02", "today" or "tomorrow".
func ParseDay(s string, now time.Time) (daterange.Day, error) {
	switch s {
	case "today":
		return daterange.DayOf(now), nil
	case "tomorrow":
		return daterange.DayOf(now).AddDays(1), nil
	}
	d, err := daterange.ParseDay(s)
	if err != nil {
		return daterange.Day{}, fmt.Errorf("expected a date like 2006-01-02: %w", err)
	}
	return d, nil
}
