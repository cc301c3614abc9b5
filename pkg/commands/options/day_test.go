package options

import (
	"testing"
	"time"

	"tableflip.dev/trip/pkg/daterange"
)

func TestParseDay(t *testing.T) {
	now := time.Date(2024, time.January, 31, 22, 0, 0, 0, time.Local)
	tests := map[string]daterange.Day{
		"today":      daterange.NewDay(2024, time.January, 31),
		"tomorrow":   daterange.NewDay(2024, time.February, 1),
		"2024-03-05": daterange.NewDay(2024, time.March, 5),
	}
	for in, want := range tests {
		got, err := ParseDay(in, now)
		if err != nil || got != want {
			t.Fatalf("ParseDay(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseDay("05/03/2024", now); err == nil {
		t.Fatalf("expected an error for a non ISO date")
	}
}
