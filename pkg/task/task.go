package task

import (
	"time"

	"github.com/google/uuid"

	"github.com/kenken729/daily-todo-tracker/pkg/roster"
)

type ID string

// NewID returns a fresh task id. Ids are never reused.
func NewID() ID {
	return ID(uuid.NewString())
}

// Task is one unit of work on the board. A creation batch with several
// owners or several content parts materializes one Task per (part, owner)
// pair, so Owners holds exactly one person on anything the factory built
// and each person completes or removes their copy independently.
type Task struct {
	ID        ID
	Content   string
	Due       time.Time
	Owners    []roster.Person
	CreatedAt time.Time
	Completed bool
}

// OwnedBy reports whether the task belongs to the given person.
func (t Task) OwnedBy(p roster.Person) bool {
	for _, o := range t.Owners {
		if o == p {
			return true
		}
	}
	return false
}
