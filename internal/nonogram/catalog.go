package nonogram

import "strconv"

// Shade is the concrete fill value the service plays with: a color index.
// Classic black-and-white puzzles use the single shade [Black]; multi-color
// puzzles use further indices.
type Shade uint8

// Black is the only shade of a classic single-color puzzle.
const Black Shade = 1

func (s Shade) String() string {
	return strconv.Itoa(int(s))
}

// CatalogEntry is one built-in puzzle selectable at game creation.
type CatalogEntry struct {
	ID      string                 `json:"id"`
	Name    string                 `json:"name"`
	Rows    ConstraintGroup[Shade] `json:"rows"`
	Columns ConstraintGroup[Shade] `json:"columns"`
}

func runs(sizes ...int) Constraint[Shade] {
	c := make(Constraint[Shade], 0, len(sizes))
	for _, size := range sizes {
		c = append(c, Run[Shade]{Value: Black, Size: size})
	}
	return c
}

// Catalog lists the built-in puzzles.
var Catalog = []CatalogEntry{
	{
		ID:   "smiley",
		Name: "Smiley (5x5)",
		Rows: ConstraintGroup[Shade]{
			runs(1, 1),
			runs(1, 1),
			runs(),
			runs(1, 1),
			runs(3),
		},
		Columns: ConstraintGroup[Shade]{
			runs(1),
			runs(2, 1),
			runs(1),
			runs(2, 1),
			runs(1),
		},
	},
	{
		ID:   "staircase",
		Name: "Staircase (5x3)",
		Rows: ConstraintGroup[Shade]{
			runs(2),
			runs(1, 1),
			runs(2),
		},
		Columns: ConstraintGroup[Shade]{
			runs(1),
			runs(1, 1),
			runs(1, 1),
			runs(1),
			runs(),
		},
	},
}

// CatalogPuzzle builds the puzzle for a catalog id, or reports that the id
// is unknown.
func CatalogPuzzle(id string) (*Puzzle[Shade], bool) {
	for _, entry := range Catalog {
		if entry.ID == id {
			p, err := NewPuzzle(entry.Rows, entry.Columns)
			if err != nil {
				// Catalog entries are static and validated by tests.
				panic(err)
			}
			return p, true
		}
	}
	return nil, false
}
