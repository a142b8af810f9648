package roster

// Person is the name of someone on the roster.
type Person string

// Group is an alias that expands to a subset of the roster.
// Groups only exist at task-creation time; they are never stored on a task.
type Group string

const (
	All      Group = "所有人"
	Domestic Group = "國內組"
	Overseas Group = "海外組"
)

// Roster holds the fixed set of people, the group memberships, and the
// per-person label language for the text export. All of it is configuration
// data: it is set once at startup and never changes.
type Roster struct {
	People  []Person
	groups  map[Group][]Person
	english map[Person]bool
}

// Default returns the roster the board ships with. The overseas members use
// English export labels; everyone else gets the Chinese set.
func Default() Roster {
	people := []Person{
		"佳平", "潘霆", "彥銘", "姿穎", "育全", "佳宇", "琪珊",
		"雄欽", "達那", "韋燕", "妍麗", "小希", "張琪", "志賢",
	}
	overseas := []Person{"達那", "妍麗", "小希"}
	domestic := without(people, overseas)
	return New(people, domestic, overseas, overseas)
}

func without(people, excluded []Person) []Person {
	out := []Person{}
	for _, p := range people {
		skip := false
		for _, e := range excluded {
			if p == e {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, p)
		}
	}
	return out
}

// New builds a roster from explicit member lists.
// The english list names the people whose export labels are in English.
func New(people, domestic, overseas, english []Person) Roster {
	r := Roster{
		People: people,
		groups: map[Group][]Person{
			All:      people,
			Domestic: domestic,
			Overseas: overseas,
		},
		english: map[Person]bool{},
	}
	for _, p := range english {
		r.english[p] = true
	}
	return r
}

// EnglishLabels reports whether the person's export labels are in English.
func (r Roster) EnglishLabels(p Person) bool {
	return r.english[p]
}

// Members returns the people a group expands to.
func (r Roster) Members(g Group) []Person {
	return r.groups[g]
}

// Expand resolves a mix of person and group names into concrete people.
// Groups expand to their members, plain names pass through, and duplicates
// across overlapping selections collapse. First-seen order is kept.
func (r Roster) Expand(selected []string) []Person {
	seen := map[Person]bool{}
	out := []Person{}
	add := func(p Person) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, s := range selected {
		if s == "" {
			continue
		}
		if members, ok := r.groups[Group(s)]; ok {
			for _, p := range members {
				add(p)
			}
			continue
		}
		add(Person(s))
	}
	return out
}
