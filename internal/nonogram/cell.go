// Package nonogram implements the rules of nonogram (picross) puzzles:
// boards of tri-state cells, ordered run constraints per row and column, and
// incremental completion tracking with auto-annotation of finished lines.
package nonogram

// CellKind discriminates the three states a board cell can be in.
type CellKind int8

const (
	// CellEmpty is an untouched cell.
	CellEmpty CellKind = iota
	// CellCrossedOut marks a cell as confirmed not-filled.
	CellCrossedOut
	// CellFilled is a cell holding a player-placed value.
	CellFilled
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellCrossedOut:
		return "crossed-out"
	case CellFilled:
		return "filled"
	default:
		return "invalid"
	}
}

// Cell is one position on a board. Exactly one state is active at a time:
// Value is meaningful only when Kind is [CellFilled]. The zero value is an
// empty cell.
//
// Fields are exported so game state survives a gob round trip; callers must
// treat cells as read-only and mutate the board through [Game] only.
type Cell[V comparable] struct {
	Kind  CellKind
	Value V
}

// Empty returns an untouched cell.
func Empty[V comparable]() Cell[V] {
	return Cell[V]{}
}

// Crossed returns a crossed-out cell.
func Crossed[V comparable]() Cell[V] {
	return Cell[V]{Kind: CellCrossedOut}
}

// Filled returns a cell holding value.
func Filled[V comparable](value V) Cell[V] {
	return Cell[V]{Kind: CellFilled, Value: value}
}

// IsIgnored reports whether constraint matching skips this cell. Empty and
// crossed-out cells never participate in run detection.
func (c Cell[V]) IsIgnored() bool {
	return c.Kind != CellFilled
}
