package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type GameSession struct {
	GameSessionId int64
	PlayerId      *int64
	PuzzleId      string
	Width         int
	Height        int
	Solved        bool
	AutoCross     bool
	StartedAt     pgtype.Timestamptz
	EndedAt       pgtype.Timestamptz
	State         []byte
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type CreateGameSessionParams struct {
	PlayerId  *int64
	PuzzleId  string
	Width     int
	Height    int
	Solved    bool
	AutoCross bool
	State     []byte
}

func (q *Queries) CreateGameSession(
	ctx context.Context, params CreateGameSessionParams,
) (*GameSession, error) {
	args := pgx.NamedArgs{
		"puzzle_id":  params.PuzzleId,
		"width":      params.Width,
		"height":     params.Height,
		"solved":     params.Solved,
		"auto_cross": params.AutoCross,
		"state":      params.State,
	}
	if params.PlayerId != nil {
		args["player_id"] = *params.PlayerId
	} else {
		args["player_id"] = nil
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_session (
			player_id, puzzle_id, width, height, solved, auto_cross, state
		)
		VALUES (
			@player_id, @puzzle_id, @width, @height, @solved, @auto_cross, @state
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

func (q *Queries) FetchGameSession(ctx context.Context, gameSessionId int64) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM game_session WHERE game_session_id = $1",
		gameSessionId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

type UpdateGameSessionParams struct {
	Solved  *bool
	EndedAt *time.Time
	State   *[]byte
}

func (p UpdateGameSessionParams) SetClause() (string, pgx.NamedArgs) {
	parts := []string{"updated_at = now()"}
	args := pgx.NamedArgs{}

	if p.Solved != nil {
		parts = append(parts, "solved = @solved")
		args["solved"] = *p.Solved
	}
	if p.EndedAt != nil {
		parts = append(parts, "ended_at = @ended_at")
		args["ended_at"] = *p.EndedAt
	}
	if p.State != nil {
		parts = append(parts, "state = @state")
		args["state"] = *p.State
	}

	return strings.Join(parts, ", "), args
}

func (q *Queries) UpdateGameSession(
	ctx context.Context, gameSessionId int64, params UpdateGameSessionParams,
) (*GameSession, error) {
	setClause, args := params.SetClause()
	args["game_session_id"] = gameSessionId
	rows, _ := q.db.Query(
		ctx,
		"UPDATE game_session SET "+setClause+
			" WHERE game_session_id = @game_session_id RETURNING *",
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}
