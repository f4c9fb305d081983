package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/nonogram-server/internal/nonogram"
)

func TestParseMoveDTO(t *testing.T) {
	tests := []struct {
		name    string
		query   map[string][]string
		want    MoveDTO
		wantErr bool
	}{
		{
			name:  "place with default shade",
			query: map[string][]string{"move": {"p"}, "row": {"1"}, "col": {"2"}},
			want:  MoveDTO{Move: "p", Row: 1, Col: 2, Value: 1},
		},
		{
			name: "place with explicit shade",
			query: map[string][]string{
				"move": {"p"}, "row": {"0"}, "col": {"0"}, "value": {"3"},
			},
			want: MoveDTO{Move: "p", Row: 0, Col: 0, Value: 3},
		},
		{
			name:    "missing move",
			query:   map[string][]string{"row": {"1"}, "col": {"2"}},
			wantErr: true,
		},
		{
			name:    "missing col",
			query:   map[string][]string{"move": {"x"}, "row": {"1"}},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dto, err := ParseMoveDTO(test.query)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, dto)
		})
	}
}

func TestNewGameRequestPuzzle(t *testing.T) {
	t.Run("catalog id", func(t *testing.T) {
		p, id, err := NewGameRequest{PuzzleId: "smiley"}.Puzzle()
		require.NoError(t, err)
		assert.Equal(t, "smiley", id)
		assert.Equal(t, 5, p.Width())
		assert.Equal(t, 5, p.Height())
	})

	t.Run("unknown catalog id", func(t *testing.T) {
		_, _, err := NewGameRequest{PuzzleId: "nope"}.Puzzle()
		assert.Error(t, err)
	})

	t.Run("custom constraints", func(t *testing.T) {
		req := NewGameRequest{
			Rows: nonogram.ConstraintGroup[nonogram.Shade]{
				{{Value: nonogram.Black, Size: 1}},
			},
			Columns: nonogram.ConstraintGroup[nonogram.Shade]{
				{{Value: nonogram.Black, Size: 1}},
			},
		}
		p, id, err := req.Puzzle()
		require.NoError(t, err)
		assert.Equal(t, "custom", id)
		assert.Equal(t, 1, p.Width())
	})

	t.Run("id and constraints are exclusive", func(t *testing.T) {
		req := NewGameRequest{
			PuzzleId: "smiley",
			Rows: nonogram.ConstraintGroup[nonogram.Shade]{
				{{Value: nonogram.Black, Size: 1}},
			},
		}
		_, _, err := req.Puzzle()
		assert.Error(t, err)
	})

	t.Run("invalid constraints", func(t *testing.T) {
		req := NewGameRequest{
			Rows:    nonogram.ConstraintGroup[nonogram.Shade]{{{Value: nonogram.Black, Size: 0}}},
			Columns: nonogram.ConstraintGroup[nonogram.Shade]{{}},
		}
		_, _, err := req.Puzzle()
		assert.Error(t, err)
	})
}

func TestResolveNewGame(t *testing.T) {
	t.Run("puzzle query param", func(t *testing.T) {
		query := map[string][]string{"puzzle": {"staircase"}}
		p, id, autoCross, err := ResolveNewGame(query, strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, "staircase", id)
		assert.Equal(t, 5, p.Width())
		assert.Equal(t, 3, p.Height())
		assert.True(t, autoCross)
	})

	t.Run("puzzle query param with auto_cross off", func(t *testing.T) {
		query := map[string][]string{"puzzle": {"smiley"}, "auto_cross": {"false"}}
		_, id, autoCross, err := ResolveNewGame(query, strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, "smiley", id)
		assert.False(t, autoCross)
	})

	t.Run("unknown puzzle query param", func(t *testing.T) {
		query := map[string][]string{"puzzle": {"nope"}}
		_, _, _, err := ResolveNewGame(query, strings.NewReader(""))
		assert.Error(t, err)
	})

	t.Run("json body fallback", func(t *testing.T) {
		body := strings.NewReader(`{"puzzle_id":"smiley","auto_cross":false}`)
		p, id, autoCross, err := ResolveNewGame(nil, body)
		require.NoError(t, err)
		assert.Equal(t, "smiley", id)
		assert.Equal(t, 5, p.Width())
		assert.False(t, autoCross)
	})

	t.Run("empty request", func(t *testing.T) {
		_, _, _, err := ResolveNewGame(nil, strings.NewReader(""))
		assert.Error(t, err)
	})
}

func staircaseGame(t *testing.T) *nonogram.Game[nonogram.Shade] {
	t.Helper()
	p, ok := nonogram.CatalogPuzzle("staircase")
	require.True(t, ok)
	return nonogram.NewGame(p)
}

func TestApplyMove(t *testing.T) {
	game := staircaseGame(t)

	require.NoError(t, applyMove(game, "p", 0, 1, nonogram.Black))
	assert.Equal(t, nonogram.Filled(nonogram.Black), game.At(0, 1))

	require.NoError(t, applyMove(game, "c", 0, 1, nonogram.Black))
	assert.Equal(t, nonogram.Empty[nonogram.Shade](), game.At(0, 1))

	assert.Error(t, applyMove(game, "p", 9, 0, nonogram.Black))
	assert.Error(t, applyMove(game, "p", 0, -1, nonogram.Black))
	assert.Error(t, applyMove(game, "p", 0, 0, 0))
	assert.Error(t, applyMove(game, "z", 0, 0, nonogram.Black))
}

func TestExecuteCommand(t *testing.T) {
	game := staircaseGame(t)

	require.NoError(t, executeCommand(game, "g"))
	require.NoError(t, executeCommand(game, ""))
	require.NoError(t, executeCommand(game, "p 0 1"))
	require.NoError(t, executeCommand(game, "p 0 2 1"))
	assert.True(t, game.RowStatus()[0])

	require.NoError(t, executeCommand(game, "x 1 1"))
	require.NoError(t, executeCommand(game, "c 0 2"))

	assert.Error(t, executeCommand(game, "p"))
	assert.Error(t, executeCommand(game, "p one two"))
	assert.Error(t, executeCommand(game, "p 0 0 999"))
	assert.Error(t, executeCommand(game, "q 0 0"))
}

func TestRenderGrid(t *testing.T) {
	game := staircaseGame(t)
	game.Place(nonogram.Black, 0, 1)
	game.Place(nonogram.Black, 0, 2)

	grid := RenderGrid(game)
	require.Len(t, grid, 3)
	// Row 0 is solved: blanks auto-crossed. Column 4 was crossed at start.
	assert.Equal(t, "/11//", grid[0])
	assert.Equal(t, "..../", grid[1])
	assert.Equal(t, "..../", grid[2])
}
