package trip

import (
	"time"

	"tableflip.dev/trip/pkg/locale"
)

// MaxDestinationLength is how many runes of the destination fit in the header.
const MaxDestinationLength = 14

// Ellipsis marks a truncated destination.
const Ellipsis = "..."

// Display is a Trip plus the labels the trip screen renders. It is never sent back
// to a data service.
type Display struct {
	Trip

	// When is the header label, e.g. "Florianópolis,... de 10 à 15 de jan.".
	When string
	// Span is the day range used in the invitation text, e.g. "10 a 15 de janeiro".
	Span string
}

// Derive computes the display labels for t.
func Derive(t Trip) Display {
	return Display{
		Trip: t,
		When: whenLabel(t),
		Span: spanLabel(t),
	}
}

// Truncate shortens s to MaxDestinationLength runes followed by Ellipsis.
func Truncate(s string) string {
	r := []rune(s)
	if len(r) <= MaxDestinationLength {
		return s
	}
	return string(r[:MaxDestinationLength]) + Ellipsis
}

func whenLabel(t Trip) string {
	dest := Truncate(t.Destination)
	if t.StartsAt.IsZero() || t.EndsAt.IsZero() {
		return dest
	}
	start, end := local(t.StartsAt), local(t.EndsAt)
	return dest + " de " + locale.Day(start) + " à " + locale.Day(end) + " de " + locale.ShortMonth(end) + "."
}

func spanLabel(t Trip) string {
	if t.StartsAt.IsZero() || t.EndsAt.IsZero() {
		return ""
	}
	start, end := local(t.StartsAt), local(t.EndsAt)
	return start.Format("2") + " a " + end.Format("2") + " de " + locale.Month(end)
}

func local(t time.Time) time.Time {
	return t.In(time.Local)
}
