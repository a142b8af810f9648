package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/kenken729/daily-todo-tracker/pkg/task"
	"github.com/kenken729/daily-todo-tracker/pkg/task/due"
)

var (
	PersonHeader = lipgloss.NewStyle().Bold(true).Foreground(Primary)

	taskIcon = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	undone   = taskIcon.Copy().Foreground(Secondary).Render("•")
	done     = taskIcon.Copy().Foreground(Green).Render("✓")

	TaskTitle = lipgloss.NewStyle()
	TitleDone = lipgloss.NewStyle().Foreground(Secondary).Strikethrough(true)

	TaskDivider = lipgloss.NewStyle().Foreground(Faded).Padding(0, 1).Render("∙")

	ErrText = lipgloss.NewStyle().Foreground(Red)
)

// Icon renders the completion marker for a task.
func Icon(t task.Task) string {
	if t.Completed {
		return done
	}
	return undone
}

// Title returns the content style for a task.
func Title(t task.Task) lipgloss.Style {
	if t.Completed {
		return TitleDone
	}
	return TaskTitle
}

var (
	createdDate = lipgloss.NewStyle().Foreground(Faded)
	dueWarning  = lipgloss.NewStyle().Foreground(Red)
)

// RenderDates renders a task's date info: the due date in its urgency color,
// the created date, and the inline 今日截止/已逾期 warning on pending tasks.
// Completed tasks are shown faded, with no urgency.
func RenderDates(t task.Task, now time.Time) string {
	if t.Due.IsZero() {
		return ""
	}
	u := due.Classify(t.Due, now)
	color := Secondary
	if !t.Completed {
		color = UrgencyColor(u)
	}
	s := TaskDivider + lipgloss.NewStyle().Foreground(color).Render("截止日："+t.Due.Format("2006-01-02"))
	if !t.CreatedAt.IsZero() {
		s += TaskDivider + createdDate.Render("建立日："+t.CreatedAt.Format("2006-01-02"))
	}
	if !t.Completed {
		switch u {
		case due.DueToday:
			s += dueWarning.Render(" ⚠️ 今日截止")
		case due.Overdue:
			s += dueWarning.Render(" ⚠️ 已逾期")
		}
	}
	return s
}
