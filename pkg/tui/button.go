package tui

import (
	"fmt"

	"tableflip.dev/trip/pkg/tui/theme"
)

// Variant selects a button look.
type Variant int

const (
	Primary Variant = iota
	Secondary
	Disabled
)

func (v Variant) String() string {
	switch v {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	case Disabled:
		return "disabled"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Button renders title with the style of the given variant.
func Button(t theme.Theme, v Variant, title string) string {
	switch v {
	case Primary:
		return t.Button.Primary.Render(title)
	case Secondary:
		return t.Button.Secondary.Render(title)
	case Disabled:
		return t.Button.Disabled.Render(title)
	}
	return title
}

// busy renders the primary action, or a disabled placeholder while it runs.
func busy(t theme.Theme, running bool, title, pending string) string {
	if running {
		return Button(t, Disabled, pending)
	}
	return Button(t, Primary, title)
}
