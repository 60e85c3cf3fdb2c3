package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AvailabilityBar renders how much of the shelf is on loan.
func AvailabilityBar(borrowed, total, width int) string {
	t := current
	if width < 5 {
		width = 5
	}
	filled := 0
	if total > 0 {
		filled = borrowed * width / total
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled)
	return fmt.Sprintf("%s %d/%d on loan", bar, borrowed, total)
}

// Checkbox is the borrow marker shown in front of a title.
func Checkbox(borrowed bool) string {
	if borrowed {
		return current.Success.Render(current.BoxBorrowed)
	}
	return current.Muted.Render(current.BoxAvailable)
}

// Panel frames lines with the current theme's border.
func Panel(lines []string) string {
	return PanelStyle().Render(strings.Join(lines, "\n"))
}

func PanelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, 1)
}

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Success.Render(current.SymOK+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Error.Render(current.SymFail+" "+msg))
}
