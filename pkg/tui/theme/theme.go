package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the trip screen.
type Theme struct {
	Header HeaderTheme
	Footer FooterTheme
	Panel  PanelTheme
	Modal  ModalTheme
	Alert  ModalTheme
	Button ButtonTheme
	Form   FormTheme
}

// HeaderTheme styles the trip summary bar and the view tabs.
type HeaderTheme struct {
	Frame     lipgloss.Style
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
}

// FooterTheme groups styles used by the bottom key help line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// PanelTheme styles the sub-view content.
type PanelTheme struct {
	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Past  lipgloss.Style
	Check lipgloss.Style
}

// ModalTheme styles centered modal overlays.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// ButtonTheme holds one style per button variant.
type ButtonTheme struct {
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Disabled  lipgloss.Style
}

// FormTheme styles form labels.
type FormTheme struct {
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Value        lipgloss.Style
	Placeholder  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("149")
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	tab := lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("250"))

	return Theme{
		Header: HeaderTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("238")).
				Padding(0, 1),
			Title:     lipgloss.NewStyle().Bold(true),
			Tab:       tab,
			ActiveTab: tab.Background(accent).Foreground(lipgloss.Color("0")).Bold(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: muted,
		},
		Panel: PanelTheme{
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
			Muted: muted,
			Past:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
			Check: lipgloss.NewStyle().Foreground(accent),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("212")).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  muted,
		},
		Alert: ModalTheme{
			Frame: lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
		Button: ButtonTheme{
			Primary:   lipgloss.NewStyle().Padding(0, 2).Background(accent).Foreground(lipgloss.Color("0")).Bold(true),
			Secondary: lipgloss.NewStyle().Padding(0, 2).Background(lipgloss.Color("238")).Foreground(lipgloss.Color("252")),
			Disabled:  lipgloss.NewStyle().Padding(0, 2).Background(lipgloss.Color("236")).Foreground(lipgloss.Color("242")),
		},
		Form: FormTheme{
			Label:        muted,
			FocusedLabel: lipgloss.NewStyle().Foreground(accent).Bold(true),
			Value:        lipgloss.NewStyle(),
			Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},
	}
}
