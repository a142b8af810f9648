package task

import (
	"sort"

	"github.com/kenken729/daily-todo-tracker/pkg/roster"
)

// Board maps each person to their slice of the task collection.
type Board map[roster.Person][]Task

// PendingByPerson groups the not-yet-completed tasks by owner, each person's
// list ascending by due date. The sort is stable, so equal dates keep
// insertion order.
func PendingByPerson(tasks []Task, people []roster.Person) Board {
	return project(tasks, people, false, func(a, b Task) bool {
		return a.Due.Before(b.Due)
	})
}

// CompletedByPerson groups the completed tasks by owner, each person's list
// descending by due date (most recently due first).
func CompletedByPerson(tasks []Task, people []roster.Person) Board {
	return project(tasks, people, true, func(a, b Task) bool {
		return b.Due.Before(a.Due)
	})
}

func project(tasks []Task, people []roster.Person, completed bool, less func(a, b Task) bool) Board {
	board := Board{}
	for _, p := range people {
		list := []Task{}
		for _, t := range tasks {
			if t.Completed == completed && t.OwnedBy(p) {
				list = append(list, t)
			}
		}
		sort.SliceStable(list, func(i, j int) bool { return less(list[i], list[j]) })
		board[p] = list
	}
	return board
}
