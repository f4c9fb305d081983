package nonogram

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staircasePuzzle is the 5x3 reference puzzle; its unique solution is
//
//	.##..
//	#..#.
//	.##..
func staircasePuzzle(t *testing.T) *Puzzle[Shade] {
	t.Helper()
	p, err := NewPuzzle(
		ConstraintGroup[Shade]{
			runs(2),
			runs(1, 1),
			runs(2),
		},
		ConstraintGroup[Shade]{
			runs(1),
			runs(1, 1),
			runs(1, 1),
			runs(1),
			runs(),
		},
	)
	require.NoError(t, err)
	return p
}

func TestNewPuzzleValidation(t *testing.T) {
	_, err := NewPuzzle(ConstraintGroup[Shade]{}, ConstraintGroup[Shade]{runs(1)})
	assert.Error(t, err)

	_, err = NewPuzzle(ConstraintGroup[Shade]{runs(1)}, ConstraintGroup[Shade]{})
	assert.Error(t, err)

	_, err = NewPuzzle(
		ConstraintGroup[Shade]{{Run[Shade]{Value: Black, Size: 0}}},
		ConstraintGroup[Shade]{runs(1)},
	)
	assert.Error(t, err)

	_, err = NewPuzzle(
		ConstraintGroup[Shade]{runs(1)},
		ConstraintGroup[Shade]{{Run[Shade]{Value: Black, Size: -2}}},
	)
	assert.Error(t, err)
}

func TestPuzzleSolvedBy(t *testing.T) {
	p := staircasePuzzle(t)
	b := testBoard() // holds the staircase solution
	assert.True(t, p.SolvedBy(b))

	for i := range p.Rows {
		assert.True(t, p.RowSolved(b, i), "row %d", i)
	}
	for i := range p.Columns {
		assert.True(t, p.ColumnSolved(b, i), "column %d", i)
	}

	b.SetAt(0, 0, Filled(Black))
	assert.False(t, p.SolvedBy(b))
	assert.False(t, p.RowSolved(b, 0))
}

func TestNewGameInitialStatus(t *testing.T) {
	g := NewGame(staircasePuzzle(t))

	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, []bool{false, false, false}, g.RowStatus())

	// Column 4 has an empty constraint: solved on the fresh board and
	// auto-crossed immediately.
	assert.Equal(t, []bool{false, false, false, false, true}, g.ColumnStatus())
	for r := range g.Height() {
		assert.Equal(t, Crossed[Shade](), g.At(r, 4))
	}
	assert.False(t, g.Solved())
}

func TestGameSolveScenario(t *testing.T) {
	g := NewGame(staircasePuzzle(t))

	moves := []Point{
		{0, 1}, {0, 2},
		{1, 0}, {1, 3},
		{2, 1}, {2, 2},
	}
	for i, p := range moves {
		solved := g.Place(Black, p.Row, p.Col)
		if i < len(moves)-1 {
			assert.False(t, solved, "solved after move %d\n%s", i, g.Board)
		} else {
			assert.True(t, solved, "not solved after final move\n%s", g.Board)
		}
	}

	assert.Equal(t, []bool{true, true, true}, g.RowStatus())
	assert.Equal(t, []bool{true, true, true, true, true}, g.ColumnStatus())

	// Every blank of the solved board is auto-crossed.
	for p, cell := range g.Cells() {
		assert.NotEqual(t, CellEmpty, cell.Kind, "cell %s left empty", p)
	}
}

func TestGameBreakSolvedRow(t *testing.T) {
	g := NewGame(staircasePuzzle(t))
	for _, p := range []Point{{0, 1}, {0, 2}, {1, 0}, {1, 3}, {2, 1}, {2, 2}} {
		g.Place(Black, p.Row, p.Col)
	}
	require.True(t, g.Solved())

	solved := g.Place(Black, 0, 4)
	assert.False(t, solved)
	assert.False(t, g.RowStatus()[0])

	// The stray mark breaks column 4 too, but columns 0 and 3 remain solved
	// and confirm the crosses of row 0, so they survive the break.
	assert.False(t, g.ColumnStatus()[4])
	assert.True(t, g.ColumnStatus()[0])
	assert.True(t, g.ColumnStatus()[3])
	assert.Equal(t, Crossed[Shade](), g.At(0, 0))
	assert.Equal(t, Crossed[Shade](), g.At(0, 3))
}

func TestGameRevertsStaleCrosses(t *testing.T) {
	g := NewGame(staircasePuzzle(t))

	g.Place(Black, 0, 1)
	g.Place(Black, 0, 2)
	assert.True(t, g.RowStatus()[0])
	assert.Equal(t, Crossed[Shade](), g.At(0, 0))
	assert.Equal(t, Crossed[Shade](), g.At(0, 3))

	g.Clear(0, 2)
	assert.False(t, g.RowStatus()[0])

	// Columns 0 and 3 cannot confirm the crosses; column 4 can.
	assert.Equal(t, Empty[Shade](), g.At(0, 0))
	assert.Equal(t, Empty[Shade](), g.At(0, 3))
	assert.Equal(t, Crossed[Shade](), g.At(0, 4))
}

func TestGameClearIsIdempotent(t *testing.T) {
	g := NewGame(staircasePuzzle(t))
	g.Place(Black, 0, 1)

	before := slices.Clone(g.Board.Cells)
	rowsBefore := slices.Clone(g.RowStatus())
	colsBefore := slices.Clone(g.ColumnStatus())

	g.Clear(1, 1) // already empty

	assert.Equal(t, before, g.Board.Cells)
	assert.Equal(t, rowsBefore, g.RowStatus())
	assert.Equal(t, colsBefore, g.ColumnStatus())
}

func TestGameRecheckConverges(t *testing.T) {
	g := NewGame(staircasePuzzle(t))
	g.Place(Black, 0, 1)
	g.Place(Black, 0, 2)
	g.CrossOut(1, 1)

	before := slices.Clone(g.Board.Cells)
	for range 3 {
		g.recheck(0, 1)
		g.recheck(1, 1)
	}
	assert.Equal(t, before, g.Board.Cells)
}

func TestGameWithoutAutoCross(t *testing.T) {
	g := NewGameWith(staircasePuzzle(t), false)

	// Column 4 starts solved but nothing is crossed out for it.
	assert.True(t, g.ColumnStatus()[4])
	for r := range g.Height() {
		assert.Equal(t, Empty[Shade](), g.At(r, 4))
	}

	g.Place(Black, 0, 1)
	g.Place(Black, 0, 2)
	assert.True(t, g.RowStatus()[0])
	assert.Equal(t, Empty[Shade](), g.At(0, 0))
	assert.Equal(t, Empty[Shade](), g.At(0, 3))
}

func TestGameGobRoundTrip(t *testing.T) {
	g := NewGame(staircasePuzzle(t))
	g.Place(Black, 0, 1)
	g.CrossOut(2, 0)

	buf, err := g.Bytes()
	require.NoError(t, err)

	restored, err := DecodeGame[Shade](buf)
	require.NoError(t, err)

	assert.Equal(t, g.Board.Cells, restored.Board.Cells)
	assert.Equal(t, g.RowStatus(), restored.RowStatus())
	assert.Equal(t, g.ColumnStatus(), restored.ColumnStatus())
	assert.Equal(t, g.Puzzle.Rows, restored.Puzzle.Rows)
	assert.True(t, restored.AutoCross)

	// The restored game keeps playing.
	restored.Place(Black, 0, 2)
	assert.True(t, restored.RowStatus()[0])
}

func TestCatalog(t *testing.T) {
	for _, entry := range Catalog {
		t.Run(entry.ID, func(t *testing.T) {
			p, ok := CatalogPuzzle(entry.ID)
			require.True(t, ok)
			g := NewGame(p)
			assert.Equal(t, len(entry.Columns), g.Width())
			assert.Equal(t, len(entry.Rows), g.Height())
		})
	}

	_, ok := CatalogPuzzle("no-such-puzzle")
	assert.False(t, ok)
}
