package nonogram

import (
	"bytes"
	"encoding/gob"
	"iter"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Game tracks one nonogram play-through: the immutable puzzle, the live
// board, and a cached solved-bit per row and per column. The caches always
// reflect the latest board state; they are recomputed, never guessed,
// whenever a line changes.
//
// A game is not safe for concurrent use; callers serialize access.
type Game[V comparable] struct {
	Puzzle  *Puzzle[V]
	Board   *Board[V]
	RowDone []bool
	ColDone []bool

	// AutoCross enables the annotation policy: blanks in a completed line
	// are crossed out, and stale auto-crosses are reverted when the line
	// breaks again. On by default.
	AutoCross bool
}

// NewGame starts a game of puzzle on a fresh all-empty board with
// auto-annotation enabled. Every row and column is checked immediately, so
// lines with empty constraints start out solved (and annotated).
func NewGame[V comparable](puzzle *Puzzle[V]) *Game[V] {
	return NewGameWith(puzzle, true)
}

// NewGameWith starts a game with the auto-annotation option set explicitly.
func NewGameWith[V comparable](puzzle *Puzzle[V], autoCross bool) *Game[V] {
	g := &Game[V]{
		Puzzle:    puzzle,
		Board:     NewBoard[V](puzzle.Width(), puzzle.Height()),
		RowDone:   make([]bool, puzzle.Height()),
		ColDone:   make([]bool, puzzle.Width()),
		AutoCross: autoCross,
	}
	for r := range g.RowDone {
		g.RowDone[r] = puzzle.RowSolved(g.Board, r)
	}
	for c := range g.ColDone {
		g.ColDone[c] = puzzle.ColumnSolved(g.Board, c)
	}
	for r := range g.RowDone {
		g.annotateRow(r)
	}
	for c := range g.ColDone {
		g.annotateColumn(c)
	}
	return g
}

// DecodeGame restores a game from the output of [Game.Bytes].
func DecodeGame[V comparable](buf []byte) (*Game[V], error) {
	var game Game[V]
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// Bytes serializes the full game state.
func (g *Game[V]) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Place fills the cell at row and col with value and reports whether the
// puzzle is solved afterwards.
func (g *Game[V]) Place(value V, row, col int) bool {
	g.Board.SetAt(row, col, Filled(value))
	g.recheck(row, col)
	return g.Solved()
}

// CrossOut marks the cell at row and col as confirmed not-filled and reports
// whether the puzzle is solved afterwards.
func (g *Game[V]) CrossOut(row, col int) bool {
	g.Board.SetAt(row, col, Crossed[V]())
	g.recheck(row, col)
	return g.Solved()
}

// Clear empties the cell at row and col and reports whether the puzzle is
// solved afterwards.
func (g *Game[V]) Clear(row, col int) bool {
	g.Board.SetAt(row, col, Empty[V]())
	g.recheck(row, col)
	return g.Solved()
}

// recheck refreshes the solved-bits of the edited row and column, then runs
// both annotation passes. Both bits are computed before either pass so the
// cross-out revert never consults a stale orthogonal status.
func (g *Game[V]) recheck(row, col int) {
	g.RowDone[row] = g.Puzzle.RowSolved(g.Board, row)
	g.ColDone[col] = g.Puzzle.ColumnSolved(g.Board, col)

	Log.WithFields(logrus.Fields{
		"row": row, "col": col,
		"rowDone": g.RowDone[row], "colDone": g.ColDone[col],
	}).Debug("recheck")

	g.annotateRow(row)
	g.annotateColumn(col)
}

// annotateRow applies the auto-annotation policy to one row: cross out the
// blanks of a solved row, or revert crosses in a broken row unless the
// crossed cell's column independently confirms it.
func (g *Game[V]) annotateRow(row int) {
	if !g.AutoCross {
		return
	}
	if g.RowDone[row] {
		for c := range g.Board.Width {
			if g.Board.At(row, c).Kind == CellEmpty {
				g.Board.SetAt(row, c, Crossed[V]())
			}
		}
	} else {
		for c := range g.Board.Width {
			if g.Board.At(row, c).Kind == CellCrossedOut && !g.ColDone[c] {
				g.Board.SetAt(row, c, Empty[V]())
			}
		}
	}
}

// annotateColumn mirrors annotateRow for a column.
func (g *Game[V]) annotateColumn(col int) {
	if !g.AutoCross {
		return
	}
	if g.ColDone[col] {
		for r := range g.Board.Height {
			if g.Board.At(r, col).Kind == CellEmpty {
				g.Board.SetAt(r, col, Crossed[V]())
			}
		}
	} else {
		for r := range g.Board.Height {
			if g.Board.At(r, col).Kind == CellCrossedOut && !g.RowDone[r] {
				g.Board.SetAt(r, col, Empty[V]())
			}
		}
	}
}

// Solved reports whether every row and every column currently satisfies its
// constraint.
func (g *Game[V]) Solved() bool {
	for _, done := range g.RowDone {
		if !done {
			return false
		}
	}
	for _, done := range g.ColDone {
		if !done {
			return false
		}
	}
	return true
}

// At returns the cell at row and col.
func (g *Game[V]) At(row, col int) Cell[V] {
	return g.Board.At(row, col)
}

// InBounds reports whether row and col address a cell on the board.
func (g *Game[V]) InBounds(row, col int) bool {
	return g.Board.InBounds(row, col)
}

// Cells iterates over every cell with its position, for rendering.
func (g *Game[V]) Cells() iter.Seq2[Point, Cell[V]] {
	return g.Board.All()
}

// RowStatus returns the per-row solved-bits. Callers must not modify the
// returned slice.
func (g *Game[V]) RowStatus() []bool {
	return g.RowDone
}

// ColumnStatus returns the per-column solved-bits. Callers must not modify
// the returned slice.
func (g *Game[V]) ColumnStatus() []bool {
	return g.ColDone
}

// RowConstraints returns the puzzle's row constraint group.
func (g *Game[V]) RowConstraints() ConstraintGroup[V] {
	return g.Puzzle.Rows
}

// ColumnConstraints returns the puzzle's column constraint group.
func (g *Game[V]) ColumnConstraints() ConstraintGroup[V] {
	return g.Puzzle.Columns
}

// Width returns the board width.
func (g *Game[V]) Width() int {
	return g.Board.Width
}

// Height returns the board height.
func (g *Game[V]) Height() int {
	return g.Board.Height
}
