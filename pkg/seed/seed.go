// Package seed loads the default-task records the board bootstraps from
// when it starts with an empty store.
package seed

import (
	"encoding/json"
	"os"
	"time"

	"github.com/kenken729/daily-todo-tracker/pkg/roster"
	"github.com/kenken729/daily-todo-tracker/pkg/task"
)

// Record is one entry of the seed file. Owners may name groups; they expand
// exactly like a draft's owners do.
type Record struct {
	Title   string   `json:"title,omitempty"`
	Content string   `json:"content"`
	Due     string   `json:"due,omitempty"` // 2006-01-02
	Owners  []string `json:"owners"`
}

// Store is the part of the task store seeding touches.
type Store interface {
	Empty() bool
	Add(...task.Task) error
}

// Populate materializes the seed file into the store. It only ever fills an
// empty store: an existing collection is never seeded over. A missing or
// unparseable seed file leaves the store alone and the board starts empty.
func Populate(s Store, r roster.Roster, now time.Time, file string) error {
	if !s.Empty() {
		return nil
	}
	records, err := Load(file)
	if err != nil {
		return nil
	}
	return s.Add(Materialize(records, r, now)...)
}

// Load reads seed records from a json file.
func Load(file string) ([]Record, error) {
	bs, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var records []Record
	if err := json.Unmarshal(bs, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Materialize turns seed records into task records through the same draft
// path the board uses, so the two creation paths cannot diverge. Records
// that fail validation are skipped.
func Materialize(records []Record, r roster.Roster, now time.Time) []task.Task {
	tasks := []task.Task{}
	for _, rec := range records {
		d := task.Draft{
			Title:   rec.Title,
			Content: rec.Content,
			Owners:  rec.Owners,
		}
		if rec.Due != "" {
			if due, err := time.ParseInLocation("2006-01-02", rec.Due, now.Location()); err == nil {
				d.Due = due
			}
		}
		ts, err := d.Materialize(r, now)
		if err != nil {
			continue
		}
		tasks = append(tasks, ts...)
	}
	return tasks
}
