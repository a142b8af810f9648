// Package export renders the pending board as a shareable plain-text digest.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kenken729/daily-todo-tracker/pkg/roster"
	"github.com/kenken729/daily-todo-tracker/pkg/task"
	"github.com/kenken729/daily-todo-tracker/pkg/task/due"
)

// labels is one language variant of the per-line due wording.
type labels struct {
	due      string
	dueToday string
	overdue  string
	colon    string
}

var (
	chinese = labels{due: "截止日", dueToday: "今日截止", overdue: "已逾期", colon: "："}
	english = labels{due: "Due", dueToday: "Due Today", overdue: "Overdue", colon: ": "}
)

// Digest renders every person's pending tasks, in roster order, as a block of
//
//	👤 name
//	- content｜⏰ 截止日：2006-01-02｜⚠️ 已逾期
//
// lines. The warning suffix appears only for tasks due today or overdue, and
// people with nothing pending are omitted entirely.
func Digest(r roster.Roster, tasks []task.Task, now time.Time) string {
	var b strings.Builder
	board := task.PendingByPerson(tasks, r.People)
	for _, p := range r.People {
		writePerson(&b, r, p, board[p], now)
	}
	return strings.TrimSpace(b.String())
}

func writePerson(w io.Writer, r roster.Roster, p roster.Person, pending []task.Task, now time.Time) {
	if len(pending) == 0 {
		return
	}
	l := chinese
	if r.EnglishLabels(p) {
		l = english
	}
	fmt.Fprintf(w, "\n👤 %s\n", p)
	for _, t := range pending {
		fmt.Fprintf(w, "- %s｜⏰ %s%s%s%s\n",
			t.Content, l.due, l.colon, t.Due.Format("2006-01-02"), warning(t, now, l))
	}
}

func warning(t task.Task, now time.Time, l labels) string {
	switch due.Classify(t.Due, now) {
	case due.DueToday:
		return "｜⚠️ " + l.dueToday
	case due.Overdue:
		return "｜⚠️ " + l.overdue
	}
	return ""
}
