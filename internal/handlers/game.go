package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/nonogram-server/internal/config"
	"github.com/vancomm/nonogram-server/internal/middleware"
	"github.com/vancomm/nonogram-server/internal/nonogram"
	"github.com/vancomm/nonogram-server/internal/repository"
)

type GameHandler struct {
	logger  *slog.Logger
	repo    *repository.Queries
	cookies *config.Cookies
	ws      *config.WebSocket
}

func NewGameHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	cookies *config.Cookies,
	ws *config.WebSocket,
) *GameHandler {
	return &GameHandler{
		logger:  logger,
		repo:    repository.New(db),
		cookies: cookies,
		ws:      ws,
	}
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	puzzle, puzzleId, autoCross, err := ResolveNewGame(r.URL.Query(), r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		SendErrorOrLog(w, g.logger, err)
		return
	}
	game := nonogram.NewGameWith(puzzle, autoCross)

	state, err := game.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to encode game state", "error", err)
		return
	}

	params := repository.CreateGameSessionParams{
		PuzzleId:  puzzleId,
		Width:     game.Width(),
		Height:    game.Height(),
		Solved:    game.Solved(),
		AutoCross: game.AutoCross,
		State:     state,
	}
	if claims, ok := middleware.PlayerClaims(r.Context()); ok {
		g.logger.Debug("creating player session", "playerId", claims.PlayerId)
		params.PlayerId = &claims.PlayerId
	} else {
		g.logger.Debug("creating anonymous session")
	}

	session, err := g.repo.CreateGameSession(r.Context(), params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create game session", "error", err)
		return
	}

	SendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

// fetchSession loads a session by path id and rejects access to another
// player's game. A nil session means the response is already written.
func (g GameHandler) fetchSession(
	w http.ResponseWriter, r *http.Request,
) *repository.GameSession {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil
	}

	session, err := g.repo.FetchGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch session from db", "error", err)
		return nil
	}

	claims, ok := middleware.PlayerClaims(r.Context())
	if session.PlayerId != nil && (!ok || *session.PlayerId != claims.PlayerId) {
		w.WriteHeader(http.StatusUnauthorized)
		return nil
	}

	return session
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session := g.fetchSession(w, r)
	if session == nil {
		return
	}

	game, err := nonogram.DecodeGame[nonogram.Shade](session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("db returned invalid game_session.state", "error", err)
		return
	}

	SendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

// applyMove translates one move command into an engine mutation.
func applyMove(
	game *nonogram.Game[nonogram.Shade], move string, row, col int, value nonogram.Shade,
) error {
	if !game.InBounds(row, col) {
		return fmt.Errorf("cell %d:%d is out of bounds", row, col)
	}
	switch move {
	case "p":
		if value == 0 {
			return fmt.Errorf("cannot place the zero shade")
		}
		game.Place(value, row, col)
	case "x":
		game.CrossOut(row, col)
	case "c":
		game.Clear(row, col)
	default:
		return fmt.Errorf("unknown move %q", move)
	}
	return nil
}

func (g GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseMoveDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		SendErrorOrLog(w, g.logger, err)
		return
	}

	session := g.fetchSession(w, r)
	if session == nil {
		return
	}

	game, err := nonogram.DecodeGame[nonogram.Shade](session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("db returned invalid game_session.state", "error", err)
		return
	}

	if err := applyMove(game, dto.Move, dto.Row, dto.Col, nonogram.Shade(dto.Value)); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		SendErrorOrLog(w, g.logger, err)
		return
	}

	session, err = g.persistGame(r.Context(), session, game)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to update session in db", "error", err)
		return
	}

	SendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

// persistGame writes the game state back onto its session row, stamping
// ended_at the first time the puzzle is solved.
func (g GameHandler) persistGame(
	ctx context.Context, session *repository.GameSession, game *nonogram.Game[nonogram.Shade],
) (*repository.GameSession, error) {
	state, err := game.Bytes()
	if err != nil {
		return nil, fmt.Errorf("unable to serialize game state: %w", err)
	}

	solved := game.Solved()
	params := repository.UpdateGameSessionParams{
		Solved: &solved,
		State:  &state,
	}
	if solved && !session.EndedAt.Valid {
		endedAt := time.Now().UTC()
		params.EndedAt = &endedAt
	}

	return g.repo.UpdateGameSession(ctx, session.GameSessionId, params)
}
