package nonogram

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Point addresses one cell on a board.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Board is a fixed-size rectangular grid of cells stored in row-major order
// (index = row*Width + col). Width and Height never change after creation.
type Board[V comparable] struct {
	Cells  []Cell[V]
	Width  int
	Height int
}

// NewBoard creates an all-empty board with the given dimensions.
func NewBoard[V comparable](width, height int) *Board[V] {
	return &Board[V]{
		Cells:  make([]Cell[V], width*height),
		Width:  width,
		Height: height,
	}
}

// InBounds reports whether row and col address a cell on this board.
func (b *Board[V]) InBounds(row, col int) bool {
	return 0 <= row && row < b.Height && 0 <= col && col < b.Width
}

func (b *Board[V]) index(row, col int) int {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("nonogram: cell %d:%d out of bounds on %dx%d board",
			row, col, b.Width, b.Height))
	}
	return row*b.Width + col
}

// At returns the cell at row and col.
func (b *Board[V]) At(row, col int) Cell[V] {
	return b.Cells[b.index(row, col)]
}

// SetAt overwrites the cell at row and col.
func (b *Board[V]) SetAt(row, col int, c Cell[V]) {
	b.Cells[b.index(row, col)] = c
}

// Row returns the row at index as a subslice of the board's storage.
func (b *Board[V]) Row(index int) []Cell[V] {
	start := b.index(index, 0)
	return b.Cells[start : start+b.Width]
}

// Column returns a lazy top-to-bottom iterator over the column at index.
func (b *Board[V]) Column(index int) iter.Seq[Cell[V]] {
	if index < 0 || index >= b.Width {
		panic(fmt.Sprintf("nonogram: column %d out of bounds on %dx%d board",
			index, b.Width, b.Height))
	}
	return func(yield func(Cell[V]) bool) {
		for i := index; i < len(b.Cells); i += b.Width {
			if !yield(b.Cells[i]) {
				return
			}
		}
	}
}

// Rows iterates over all rows with their indices.
func (b *Board[V]) Rows() iter.Seq2[int, []Cell[V]] {
	return func(yield func(int, []Cell[V]) bool) {
		for r := range b.Height {
			if !yield(r, b.Row(r)) {
				return
			}
		}
	}
}

// Columns iterates over all columns with their indices.
func (b *Board[V]) Columns() iter.Seq2[int, iter.Seq[Cell[V]]] {
	return func(yield func(int, iter.Seq[Cell[V]]) bool) {
		for c := range b.Width {
			if !yield(c, b.Column(c)) {
				return
			}
		}
	}
}

// All iterates over every cell with its position, row by row.
func (b *Board[V]) All() iter.Seq2[Point, Cell[V]] {
	return func(yield func(Point, Cell[V]) bool) {
		for i, cell := range b.Cells {
			p := Point{Row: i / b.Width, Col: i % b.Width}
			if !yield(p, cell) {
				return
			}
		}
	}
}

// String renders the board one character per cell: '.' empty, '/' crossed
// out, '#' filled. Debug output only.
func (b *Board[V]) String() string {
	var sb strings.Builder
	for r := range b.Height {
		for c := range b.Width {
			switch b.At(r, c).Kind {
			case CellCrossedOut:
				sb.WriteByte('/')
			case CellFilled:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func rowSeq[V comparable](cells []Cell[V]) iter.Seq[Cell[V]] {
	return slices.Values(cells)
}
