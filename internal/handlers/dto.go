package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vancomm/nonogram-server/internal/nonogram"
	"github.com/vancomm/nonogram-server/internal/repository"
)

// NewGameRequest is the JSON body of POST /game: either a catalog puzzle id
// or a full pair of constraint groups.
type NewGameRequest struct {
	PuzzleId  string                                   `json:"puzzle_id,omitempty"`
	Rows      nonogram.ConstraintGroup[nonogram.Shade] `json:"rows,omitempty"`
	Columns   nonogram.ConstraintGroup[nonogram.Shade] `json:"columns,omitempty"`
	AutoCross *bool                                    `json:"auto_cross,omitempty"`
}

// Puzzle resolves the request into a validated puzzle and the id recorded on
// the session.
func (dto NewGameRequest) Puzzle() (*nonogram.Puzzle[nonogram.Shade], string, error) {
	if dto.PuzzleId != "" {
		if len(dto.Rows) > 0 || len(dto.Columns) > 0 {
			return nil, "", fmt.Errorf("puzzle_id and explicit constraints are mutually exclusive")
		}
		p, ok := nonogram.CatalogPuzzle(dto.PuzzleId)
		if !ok {
			return nil, "", fmt.Errorf("unknown puzzle %q", dto.PuzzleId)
		}
		return p, dto.PuzzleId, nil
	}
	p, err := nonogram.NewPuzzle(dto.Rows, dto.Columns)
	if err != nil {
		return nil, "", fmt.Errorf("invalid puzzle: %w", err)
	}
	return p, "custom", nil
}

// NewGameQuery is the query-string shape of POST /game, a shortcut for
// starting a catalog puzzle without a body.
type NewGameQuery struct {
	Puzzle    string `schema:"puzzle"`
	AutoCross *bool  `schema:"auto_cross"`
}

func ParseNewGameQuery(src map[string][]string) (NewGameQuery, error) {
	var dto NewGameQuery
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

// ResolveNewGame picks the puzzle for a new game. A `puzzle=<catalog id>`
// query parameter wins; otherwise the JSON body is decoded. The bool is the
// auto-cross setting, defaulting to on.
func ResolveNewGame(
	query map[string][]string, body io.Reader,
) (*nonogram.Puzzle[nonogram.Shade], string, bool, error) {
	q, err := ParseNewGameQuery(query)
	if err != nil {
		return nil, "", false, err
	}

	autoCross := true
	if q.AutoCross != nil {
		autoCross = *q.AutoCross
	}

	if q.Puzzle != "" {
		p, ok := nonogram.CatalogPuzzle(q.Puzzle)
		if !ok {
			return nil, "", false, fmt.Errorf("unknown puzzle %q", q.Puzzle)
		}
		return p, q.Puzzle, autoCross, nil
	}

	var dto NewGameRequest
	if err := json.NewDecoder(body).Decode(&dto); err != nil {
		return nil, "", false, fmt.Errorf("invalid request body: %w", err)
	}
	if dto.AutoCross != nil {
		autoCross = *dto.AutoCross
	}
	p, puzzleId, err := dto.Puzzle()
	if err != nil {
		return nil, "", false, err
	}
	return p, puzzleId, autoCross, nil
}

type MoveDTO struct {
	Move  string `schema:"move,required"`
	Row   int    `schema:"row,required"`
	Col   int    `schema:"col,required"`
	Value uint8  `schema:"value"`
}

func ParseMoveDTO(src map[string][]string) (MoveDTO, error) {
	dto := MoveDTO{Value: uint8(nonogram.Black)}
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type HighscoreQuery struct {
	Username *string `schema:"username"`
	PuzzleId *string `schema:"puzzle_id"`
}

func ParseHighscoreQuery(src map[string][]string) (HighscoreQuery, error) {
	var dto HighscoreQuery
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

// GameSessionDTO is what every game endpoint returns: the session metadata
// plus a rendered view of the live game state.
type GameSessionDTO struct {
	GameSessionId string   `json:"game_session_id"`
	PuzzleId      string   `json:"puzzle_id"`
	Width         int      `json:"width"`
	Height        int      `json:"height"`
	Grid          []string `json:"grid"`
	RowStatus     []bool   `json:"row_status"`
	ColStatus     []bool   `json:"col_status"`
	Solved        bool     `json:"solved"`
	AutoCross     bool     `json:"auto_cross"`
	StartedAt     int64    `json:"started_at"`
	EndedAt       *int64   `json:"ended_at,omitempty"`
}

func cellChar(c nonogram.Cell[nonogram.Shade]) byte {
	switch c.Kind {
	case nonogram.CellCrossedOut:
		return '/'
	case nonogram.CellFilled:
		if c.Value <= 9 {
			return byte('0' + c.Value)
		}
		return '#'
	default:
		return '.'
	}
}

// RenderGrid encodes the board one row per string, one character per cell:
// '.' empty, '/' crossed out, the shade digit for filled cells.
func RenderGrid(g *nonogram.Game[nonogram.Shade]) []string {
	grid := make([]string, 0, g.Height())
	for _, row := range g.Board.Rows() {
		var sb strings.Builder
		for _, cell := range row {
			sb.WriteByte(cellChar(cell))
		}
		grid = append(grid, sb.String())
	}
	return grid
}

func timestampMs(ts pgtype.Timestamptz) *int64 {
	if !ts.Valid {
		return nil
	}
	ms := ts.Time.UnixMilli()
	return &ms
}

func NewGameSessionDTO(
	session *repository.GameSession, g *nonogram.Game[nonogram.Shade],
) *GameSessionDTO {
	dto := &GameSessionDTO{
		GameSessionId: strconv.FormatInt(session.GameSessionId, 10),
		PuzzleId:      session.PuzzleId,
		Width:         g.Width(),
		Height:        g.Height(),
		Grid:          RenderGrid(g),
		RowStatus:     g.RowStatus(),
		ColStatus:     g.ColumnStatus(),
		Solved:        g.Solved(),
		AutoCross:     g.AutoCross,
		EndedAt:       timestampMs(session.EndedAt),
	}
	if started := timestampMs(session.StartedAt); started != nil {
		dto.StartedAt = *started
	}
	return dto
}
