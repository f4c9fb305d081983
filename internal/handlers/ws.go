package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/vancomm/nonogram-server/internal/nonogram"
	"github.com/vancomm/nonogram-server/internal/repository"
)

// Websocket play protocol: each text message holds one command per line.
//
//	g                  noop, resend state
//	p <row> <col> [v]  place shade v (default 1)
//	x <row> <col>      cross out
//	c <row> <col>      clear
const (
	wsNoop     = "g"
	wsPlace    = "p"
	wsCrossOut = "x"
	wsClear    = "c"
)

func parseRowCol(args []string) (int, int, error) {
	if len(args) < 2 {
		return 0, 0, fmt.Errorf("expected row and col arguments")
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row %q", args[0])
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid col %q", args[1])
	}
	return row, col, nil
}

func executeCommand(game *nonogram.Game[nonogram.Shade], line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}
	cmd, args := tokens[0], tokens[1:]

	if cmd == wsNoop {
		return nil
	}

	row, col, err := parseRowCol(args)
	if err != nil {
		return err
	}

	value := nonogram.Black
	if cmd == wsPlace && len(args) > 2 {
		v, err := strconv.Atoi(args[2])
		if err != nil || v < 1 || v > 255 {
			return fmt.Errorf("invalid shade %q", args[2])
		}
		value = nonogram.Shade(v)
	}

	return applyMove(game, cmd, row, col, value)
}

func (g GameHandler) runGameLoop(
	ctx context.Context,
	conn *websocket.Conn,
	session *repository.GameSession,
	game *nonogram.Game[nonogram.Shade],
) error {
	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}

		message := strings.TrimSpace(string(buf))
		for _, line := range strings.Split(message, "\n") {
			if err := executeCommand(game, strings.TrimSpace(line)); err != nil {
				return err
			}
		}

		session, err = g.persistGame(ctx, session, game)
		if err != nil {
			return err
		}

		if err := conn.WriteJSON(NewGameSessionDTO(session, game)); err != nil {
			return fmt.Errorf("unable to write json: %w", err)
		}
	}
}

func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
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

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	if err := conn.WriteJSON(NewGameSessionDTO(session, game)); err != nil {
		g.logger.Error("unable to write json", "error", err)
		return
	}

	err = g.runGameLoop(r.Context(), conn, session, game)
	if err != nil && !errors.Is(err, websocket.ErrCloseSent) &&
		!websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		g.logger.Debug("game loop ended", "error", err)
		_ = conn.WriteJSON(map[string]string{"error": err.Error()})
	}
}
