package nonogram

import "fmt"

// Run is one entry in a line constraint: Size contiguous cells filled with
// Value. Runs listed in a constraint must appear on the line in order.
type Run[V comparable] struct {
	Value V   `json:"value"`
	Size  int `json:"size"`
}

// Constraint fully describes one line (row or column) as an ordered run list.
// An empty constraint means the line must hold no filled cells at all.
type Constraint[V comparable] []Run[V]

// ConstraintGroup holds one constraint per line: one per row for the row
// group, one per column for the column group.
type ConstraintGroup[V comparable] []Constraint[V]

// Puzzle is the immutable pair of constraint groups a game is played against.
// Board dimensions derive from the group lengths.
type Puzzle[V comparable] struct {
	Rows    ConstraintGroup[V]
	Columns ConstraintGroup[V]
}

// NewPuzzle validates the constraint groups and builds a puzzle. Both groups
// must be non-empty and every run must have size at least 1; violations are
// configuration errors, not play-time errors.
func NewPuzzle[V comparable](rows, columns ConstraintGroup[V]) (*Puzzle[V], error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("puzzle has no row constraints")
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("puzzle has no column constraints")
	}
	for i, constraint := range rows {
		for j, run := range constraint {
			if run.Size < 1 {
				return nil, fmt.Errorf(
					"row %d run %d has invalid size %d", i, j, run.Size,
				)
			}
		}
	}
	for i, constraint := range columns {
		for j, run := range constraint {
			if run.Size < 1 {
				return nil, fmt.Errorf(
					"column %d run %d has invalid size %d", i, j, run.Size,
				)
			}
		}
	}
	return &Puzzle[V]{Rows: rows, Columns: columns}, nil
}

// Width returns the board width this puzzle describes.
func (p *Puzzle[V]) Width() int {
	return len(p.Columns)
}

// Height returns the board height this puzzle describes.
func (p *Puzzle[V]) Height() int {
	return len(p.Rows)
}

// RowSolved reports whether the row of board at index satisfies its
// constraint.
func (p *Puzzle[V]) RowSolved(board *Board[V], index int) bool {
	return lineSolved(p.Rows[index], rowSeq(board.Row(index)))
}

// ColumnSolved reports whether the column of board at index satisfies its
// constraint.
func (p *Puzzle[V]) ColumnSolved(board *Board[V], index int) bool {
	return lineSolved(p.Columns[index], board.Column(index))
}

// SolvedBy reports whether board is a solution for this puzzle. The board
// must have this puzzle's dimensions.
func (p *Puzzle[V]) SolvedBy(board *Board[V]) bool {
	for i := range p.Rows {
		if !p.RowSolved(board, i) {
			return false
		}
	}
	for i := range p.Columns {
		if !p.ColumnSolved(board, i) {
			return false
		}
	}
	return true
}
