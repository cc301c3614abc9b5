// Package help shows the trip screen's key reference in a scrollable box.
package help

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss/v2"
)

//go:embed help.md
var keysMarkdown string

// Smallest box the reference is laid out in.
const (
	MinWidth  = 32
	MinHeight = 8
)

// Pane is the key reference box opened with "?".
type Pane struct {
	box    lipgloss.Style
	scroll viewport.Model

	width, height int
}

// New lays the reference out in a width x height box drawn with box.
func New(width, height int, box lipgloss.Style) *Pane {
	p := &Pane{box: box, scroll: viewport.New()}
	p.Resize(width, height)
	return p
}

// Resize re-wraps the reference for a new box size.
func (p *Pane) Resize(width, height int) {
	width, height = max(width, MinWidth), max(height, MinHeight)
	if width == p.width && height == p.height {
		return
	}
	p.width, p.height = width, height

	textWidth := max(width-p.box.GetHorizontalFrameSize(), 1)
	p.scroll.SetWidth(textWidth)
	p.scroll.SetHeight(max(height-p.box.GetVerticalFrameSize(), 1))
	p.scroll.SetContent(Render(textWidth))
	p.scroll.GotoTop()
}

// Update scrolls on arrows, pgup and pgdown.
func (p *Pane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.scroll, cmd = p.scroll.Update(msg)
	return cmd
}

// AtTop reports whether the first line of the reference is showing.
func (p *Pane) AtTop() bool {
	return p.scroll.AtTop()
}

// Size is the box size after the minimums are applied.
func (p *Pane) Size() (int, int) {
	return p.width, p.height
}

func (p *Pane) View() string {
	return p.box.Width(p.width).Height(p.height).Render(p.scroll.View())
}

// Render returns the key reference as plain text wrapped to width columns.
func Render(width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(max(width-2, 10)),
	)
	if err != nil {
		return "ajuda indisponível: " + err.Error()
	}
	out, err := r.Render(strings.TrimSpace(keysMarkdown))
	if err != nil {
		return "ajuda indisponível: " + err.Error()
	}
	return strings.Trim(out, "\n")
}
