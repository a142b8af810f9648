package task

import (
	"errors"
	"strings"
	"time"

	"github.com/kenken729/daily-todo-tracker/pkg/roster"
	"github.com/kenken729/daily-todo-tracker/pkg/task/due"
)

var (
	ErrEmptyContent = errors.New("task content is empty")
	ErrNoOwners     = errors.New("no owners selected")
)

// PartDelimiter splits one draft's content into independent sub-items.
// It is the full-width comma, matching how drafts are typed on the board.
const PartDelimiter = "、"

// Draft is unvalidated input for a creation batch. Owners may mix person
// names and group names; groups are resolved here and never stored.
type Draft struct {
	Title   string
	Content string
	Due     time.Time
	Owners  []string
}

// Materialize validates the draft and builds its task records: owners are
// expanded through the roster, content is split on PartDelimiter, and every
// (content part, person) pair becomes its own task. A missing due date
// defaults to now's calendar day.
func (d Draft) Materialize(r roster.Roster, now time.Time) ([]Task, error) {
	people := r.Expand(trimmed(d.Owners))
	if len(people) == 0 {
		return nil, ErrNoOwners
	}
	parts := splitContent(d.Content)
	if len(parts) == 0 {
		return nil, ErrEmptyContent
	}

	dueAt := d.Due
	if dueAt.IsZero() {
		dueAt = due.DayOf(now)
	}
	title := strings.TrimSpace(d.Title)

	tasks := make([]Task, 0, len(parts)*len(people))
	for _, p := range people {
		for _, part := range parts {
			content := part
			if title != "" {
				content = "《" + title + "》" + part
			}
			tasks = append(tasks, Task{
				ID:        NewID(),
				Content:   content,
				Due:       dueAt,
				Owners:    []roster.Person{p},
				CreatedAt: now,
			})
		}
	}
	return tasks, nil
}

func splitContent(content string) []string {
	parts := []string{}
	for _, p := range strings.Split(content, PartDelimiter) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func trimmed(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
