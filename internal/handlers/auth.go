package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/vancomm/nonogram-server/internal/config"
	"github.com/vancomm/nonogram-server/internal/middleware"
	"github.com/vancomm/nonogram-server/internal/repository"
)

type AuthHandler struct {
	logger  *slog.Logger
	repo    *repository.Queries
	cookies *config.Cookies
}

func NewAuthHandler(
	logger *slog.Logger, db *pgxpool.Pool, cookies *config.Cookies,
) *AuthHandler {
	return &AuthHandler{
		logger:  logger,
		repo:    repository.New(db),
		cookies: cookies,
	}
}

func parseCredentials(w http.ResponseWriter, r *http.Request) (string, []byte, bool) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return "", nil, false
	}
	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("body must contain url-encoded username and password"))
		return "", nil, false
	}
	passwordBytes := []byte(password)
	if len(passwordBytes) > 72 {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("password must not exceed 72 bytes"))
		return "", nil, false
	}
	return username, passwordBytes, true
}

func (a AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	username, password, ok := parseCredentials(w, r)
	if !ok {
		return
	}

	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.logger.Error("unable to hash password", "error", err)
		return
	}

	player, err := a.repo.CreatePlayer(r.Context(), repository.CreatePlayerParams{
		Username:     username,
		PasswordHash: hash,
	})
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		w.WriteHeader(http.StatusConflict)
		SendMessageOrLog(w, a.logger, "username taken")
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.logger.Error("unable to create player", "error", err)
		return
	}

	claims := config.NewPlayerClaims(player.PlayerId, player.Username)
	if err := a.cookies.Refresh(w, claims); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.logger.Error("unable to set auth cookies", "error", err)
		return
	}

	SendMessageOrLog(w, a.logger, "registered")
}

func (a AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username, password, ok := parseCredentials(w, r)
	if !ok {
		return
	}

	player, err := a.repo.FetchPlayer(r.Context(), username)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.logger.Error("unable to fetch player", "error", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword(player.PasswordHash, password); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	claims := config.NewPlayerClaims(player.PlayerId, player.Username)
	if err := a.cookies.Refresh(w, claims); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.logger.Error("unable to set auth cookies", "error", err)
		return
	}

	SendMessageOrLog(w, a.logger, "logged in")
}

func (a AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	a.cookies.Clear(w)
	SendMessageOrLog(w, a.logger, "logged out")
}

type PlayerInfo struct {
	Username string `json:"username"`
	PlayerId int64  `json:"player_id"`
}

type Status struct {
	LoggedIn bool        `json:"logged_in"`
	Player   *PlayerInfo `json:"player,omitempty"`
}

// Status reports the current player. Calling it also refreshes valid auth
// cookies; the auth middleware already cleared invalid ones.
func (a AuthHandler) Status(w http.ResponseWriter, r *http.Request) {
	status := &Status{}
	if claims, ok := middleware.PlayerClaims(r.Context()); ok {
		status.LoggedIn = true
		status.Player = &PlayerInfo{claims.Username, claims.PlayerId}
		if err := a.cookies.Refresh(w, claims); err != nil {
			a.logger.Error("unable to refresh auth cookies", "error", err)
		}
	}
	SendJSONOrLog(w, a.logger, status)
}
