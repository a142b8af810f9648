package seed

import (
	"os"
	"path"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/kenken729/daily-todo-tracker/pkg/roster"
	"github.com/kenken729/daily-todo-tracker/pkg/task"
)

func testRoster() roster.Roster {
	return roster.New(
		[]roster.Person{"P1", "P2", "P3"},
		[]roster.Person{"P1", "P2"},
		[]roster.Person{"P3"},
		[]roster.Person{"P3"},
	)
}

func TestLoad(t *testing.T) {
	is := is.New(t)
	file := path.Join(t.TempDir(), "seed.json")
	data := `[
		{"content": "週會準備", "due": "2024-01-10", "owners": ["國內組"]},
		{"title": "月報", "content": "A、B", "owners": ["P3"]}
	]`
	is.NoErr(os.WriteFile(file, []byte(data), 0660))

	records, err := Load(file)
	is.NoErr(err)
	is.Equal(len(records), 2)
	is.Equal(records[0].Due, "2024-01-10")
	is.Equal(records[1].Title, "月報")
}

func TestMaterialize(t *testing.T) {
	is := is.New(t)
	now := time.Date(2024, 1, 5, 9, 0, 0, 0, time.Local)
	records := []Record{
		{Content: "週會準備", Due: "2024-01-10", Owners: []string{string(roster.Domestic)}},
		{Title: "月報", Content: "A、B", Owners: []string{"P3"}},
		{Content: "", Owners: []string{"P1"}}, // invalid, skipped
		{Content: "孤兒任務", Owners: []string{}}, // invalid, skipped
	}

	tasks := Materialize(records, testRoster(), now)
	is.Equal(len(tasks), 4) // 2 domestic people + 2 titled parts

	// group expansion matches the draft path
	is.Equal(tasks[0].Owners, []roster.Person{"P1"})
	is.Equal(tasks[1].Owners, []roster.Person{"P2"})
	is.True(tasks[0].Due.Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local)))

	is.Equal(tasks[2].Content, "《月報》A")
	is.Equal(tasks[3].Content, "《月報》B")
	// missing due falls back to today
	is.True(tasks[2].Due.Equal(time.Date(2024, 1, 5, 0, 0, 0, 0, time.Local)))
}

func TestPopulate(t *testing.T) {
	r := testRoster()
	now := time.Date(2024, 1, 5, 9, 0, 0, 0, time.Local)

	writeSeed := func(t *testing.T) string {
		t.Helper()
		file := path.Join(t.TempDir(), "seed.json")
		data := `[{"content": "週會準備", "due": "2024-01-10", "owners": ["P1"]}]`
		if err := os.WriteFile(file, []byte(data), 0660); err != nil {
			t.Fatal(err)
		}
		return file
	}

	t.Run("fills an empty store", func(t *testing.T) {
		is := is.New(t)
		store := task.NewStore(nil)
		is.NoErr(Populate(store, r, now, writeSeed(t)))
		is.Equal(len(store.All()), 1)
		is.Equal(store.All()[0].Content, "週會準備")
	})

	t.Run("never seeds a non-empty store", func(t *testing.T) {
		is := is.New(t)
		store := task.NewStore(nil)
		existing := task.Task{ID: task.NewID(), Content: "手動建立", Owners: []roster.Person{"P2"}}
		is.NoErr(store.Add(existing))

		is.NoErr(Populate(store, r, now, writeSeed(t)))
		is.Equal(len(store.All()), 1)
		is.Equal(store.All()[0].ID, existing.ID)
	})

	t.Run("missing file leaves the store empty", func(t *testing.T) {
		is := is.New(t)
		store := task.NewStore(nil)
		is.NoErr(Populate(store, r, now, path.Join(t.TempDir(), "nope.json")))
		is.True(store.Empty())
	})
}

func TestLoad_MissingFile(t *testing.T) {
	is := is.New(t)
	_, err := Load(path.Join(t.TempDir(), "nope.json"))
	is.True(err != nil)
}
