package task

import (
	"time"

	"github.com/kenken729/daily-todo-tracker/pkg/roster"
)

// Persistor is the durable storage the store mirrors itself into.
// Implemented by persist.JSON.
type Persistor interface {
	Save([]Task) error
	Load() ([]Task, error)
}

// StoreManager is everything the board can do to the task collection.
type StoreManager interface {
	Load() error
	Empty() bool
	All() []Task
	Get(ID) (Task, bool)

	Add(...Task) error
	ToggleComplete(ID) error
	SetContent(ID, string) error
	SetDue(ID, time.Time) error
	Remove(ID) error
	RemoveCompletedFor(roster.Person) error
}

var _ StoreManager = &Store{}

// Store owns the task collection. Every effective mutation synchronously
// writes the whole collection back through the persistor. Mutations naming
// an unknown id are no-ops, not errors: the board may hold stale ids.
type Store struct {
	tasks   []Task
	persist Persistor
}

// NewStore creates an empty store backed by p. A nil persistor keeps the
// collection in memory only.
func NewStore(p Persistor) *Store {
	return &Store{persist: p}
}

// Load replaces the collection with the persisted one. Call once at startup,
// before any mutation.
func (s *Store) Load() error {
	if s.persist == nil {
		return nil
	}
	tasks, err := s.persist.Load()
	if err != nil {
		return err
	}
	s.tasks = tasks
	return nil
}

func (s *Store) Empty() bool {
	return len(s.tasks) == 0
}

// All returns a copy of the collection; callers cannot mutate store state.
func (s *Store) All() []Task {
	return append([]Task{}, s.tasks...)
}

func (s *Store) Get(id ID) (Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Add appends a creation batch and persists.
func (s *Store) Add(tasks ...Task) error {
	if len(tasks) == 0 {
		return nil
	}
	s.tasks = append(s.tasks, tasks...)
	return s.save()
}

// ToggleComplete flips the completed flag on the matching task.
func (s *Store) ToggleComplete(id ID) error {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks[i].Completed = !t.Completed
			return s.save()
		}
	}
	return nil
}

// SetContent replaces the matching task's content.
func (s *Store) SetContent(id ID, content string) error {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks[i].Content = content
			return s.save()
		}
	}
	return nil
}

// SetDue replaces the matching task's due date.
func (s *Store) SetDue(id ID, due time.Time) error {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks[i].Due = due
			return s.save()
		}
	}
	return nil
}

// Remove deletes the matching task.
func (s *Store) Remove(id ID) error {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return s.save()
		}
	}
	return nil
}

// RemoveCompletedFor deletes every completed task owned by the person.
// Other people's completed copies of the same content are untouched, since
// each person has their own task record.
func (s *Store) RemoveCompletedFor(p roster.Person) error {
	kept := s.tasks[:0]
	removed := false
	for _, t := range s.tasks {
		if t.Completed && t.OwnedBy(p) {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	if !removed {
		return nil
	}
	return s.save()
}

func (s *Store) save() error {
	if s.persist == nil {
		return nil
	}
	return s.persist.Save(s.tasks)
}
