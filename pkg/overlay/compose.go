package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"
)

// Compose paints foreground centered over background, keeping the background
// visible around it. The result is exactly height lines of width cells.
func Compose(background string, width, height int, foreground string) string {
	bg := fit(background, width, height)
	if foreground == "" || width <= 0 || height <= 0 {
		return strings.Join(bg, "\n")
	}

	fg := strings.Split(foreground, "\n")
	fgWidth := 0
	for _, line := range fg {
		fgWidth = max(fgWidth, lipgloss.Width(line))
	}
	fgWidth = min(fgWidth, width)
	if len(fg) > height {
		fg = fg[:height]
	}

	top := (height - len(fg)) / 2
	left := (width - fgWidth) / 2
	for i, line := range fg {
		row := top + i
		base := bg[row]
		bg[row] = cut(base, 0, left) + pad(line, fgWidth) + cut(base, left+fgWidth, width)
	}
	return strings.Join(bg, "\n")
}

func fit(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = pad(lines[i], width)
	}
	return lines
}

func pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := lipgloss.Width(s)
	if w >= width {
		return lipgloss.NewStyle().MaxWidth(width).Render(s)
	}
	return s + strings.Repeat(" ", width-w)
}

// cut returns the cells [start, end) of a plain line. Styled background runs are
// dropped at the seam, which is fine for the dimmed base view.
func cut(s string, start, end int) string {
	if start >= end {
		return ""
	}
	var b strings.Builder
	seen := 0
	for _, r := range stripped(s) {
		rw := lipgloss.Width(string(r))
		if seen >= start && seen+rw <= end {
			b.WriteRune(r)
		}
		seen += rw
		if seen >= end {
			break
		}
	}
	return b.String()
}

func stripped(s string) string {
	if !strings.ContainsRune(s, ansi.Marker) {
		return s
	}
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == ansi.Marker:
			inEsc = true
		case inEsc:
			inEsc = !ansi.IsTerminator(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
