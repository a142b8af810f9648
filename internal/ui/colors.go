package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kenken729/daily-todo-tracker/pkg/task/due"
)

const (
	Background = lipgloss.Color("#000")

	Primary   = lipgloss.Color("#fff")
	Secondary = lipgloss.Color("#888")
	Faded     = lipgloss.Color("#555")

	Blue   = lipgloss.Color("#4db7ff")
	Green  = lipgloss.Color("#00a352")
	Red    = lipgloss.Color("#c42912")
	Yellow = lipgloss.Color("#c4b810")
)

// UrgencyColor maps a due classification to its board color: today yellow,
// overdue red, within the week green. Same palette as the original board.
func UrgencyColor(u due.Urgency) lipgloss.Color {
	switch u {
	case due.DueToday:
		return Yellow
	case due.Overdue:
		return Red
	case due.DueSoon:
		return Green
	}
	return Secondary
}
