package persist

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/kenken729/daily-todo-tracker/pkg/task"
)

type Persistor interface {
	Save([]task.Task) error
	Load() ([]task.Task, error)
}

type JSON struct {
	file string
}

func InJSON(file string) *JSON {
	return &JSON{file}
}

// Save writes the full task collection to the json file.
func (j JSON) Save(ts []task.Task) error {
	bs, err := json.MarshalIndent(ts, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(j.file, bs, 0660)
}

// Load reads the task collection from the json file. A missing or corrupt
// file yields an empty collection: the board then starts fresh (and may be
// seeded) rather than refusing to run.
func (j JSON) Load() ([]task.Task, error) {
	bs, err := os.ReadFile(j.file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ts []task.Task
	if err := json.Unmarshal(bs, &ts); err != nil {
		return nil, nil
	}
	return ts, nil
}
