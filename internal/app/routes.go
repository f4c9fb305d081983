package app

import (
	"github.com/vancomm/nonogram-server/internal/handlers"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(a.logger, a.db, a.cookies, a.ws)
	auth := handlers.NewAuthHandler(a.logger, a.db, a.cookies)

	a.router.HandleFunc("GET /puzzles", game.ListPuzzles)
	a.router.HandleFunc("POST /game", game.NewGame)
	a.router.HandleFunc("GET /game/{id}", game.Fetch)
	a.router.HandleFunc("POST /game/{id}/move", game.MakeAMove)
	a.router.HandleFunc("/game/{id}/connect", game.ConnectWS)
	a.router.HandleFunc("GET /highscores", game.Highscores)

	a.router.HandleFunc("POST /register", auth.Register)
	a.router.HandleFunc("POST /login", auth.Login)
	a.router.HandleFunc("POST /logout", auth.Logout)
	a.router.HandleFunc("GET /status", auth.Status)
}
