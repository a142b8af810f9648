package roster

import (
	"testing"

	"github.com/matryer/is"
)

func testRoster() Roster {
	return New(
		[]Person{"P1", "P2", "P3", "P4"},
		[]Person{"P1", "P2"},
		[]Person{"P3", "P4"},
		[]Person{"P3"},
	)
}

func TestExpand(t *testing.T) {
	r := testRoster()

	t.Run("person passes through", func(t *testing.T) {
		is := is.New(t)
		is.Equal(r.Expand([]string{"P2"}), []Person{"P2"})
	})

	t.Run("all expands to the full roster", func(t *testing.T) {
		is := is.New(t)
		is.Equal(r.Expand([]string{string(All)}), []Person{"P1", "P2", "P3", "P4"})
	})

	t.Run("all alongside others never duplicates", func(t *testing.T) {
		is := is.New(t)
		is.Equal(r.Expand([]string{"P3", string(All), string(Domestic)}), []Person{"P3", "P1", "P2", "P4"})
	})

	t.Run("groups expand to their members", func(t *testing.T) {
		is := is.New(t)
		is.Equal(r.Expand([]string{string(Domestic)}), []Person{"P1", "P2"})
		is.Equal(r.Expand([]string{string(Overseas)}), []Person{"P3", "P4"})
	})

	t.Run("overlapping selections collapse", func(t *testing.T) {
		is := is.New(t)
		is.Equal(r.Expand([]string{string(Domestic), "P1", string(Domestic)}), []Person{"P1", "P2"})
	})

	t.Run("empty names are dropped", func(t *testing.T) {
		is := is.New(t)
		is.Equal(r.Expand([]string{"", "P1"}), []Person{"P1"})
		is.Equal(len(r.Expand(nil)), 0)
	})
}

func TestDefault(t *testing.T) {
	is := is.New(t)
	r := Default()

	// groups partition the roster
	is.Equal(len(r.Members(All)), len(r.People))
	is.Equal(len(r.Members(Domestic))+len(r.Members(Overseas)), len(r.People))
	for _, p := range r.Members(Domestic) {
		for _, o := range r.Members(Overseas) {
			is.True(p != o)
		}
	}
}

func TestEnglishLabels(t *testing.T) {
	is := is.New(t)
	r := testRoster()
	is.True(r.EnglishLabels("P3"))
	is.True(!r.EnglishLabels("P1"))
}
