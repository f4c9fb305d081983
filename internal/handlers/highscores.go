package handlers

import (
	"net/http"

	"github.com/vancomm/nonogram-server/internal/repository"
)

func (g GameHandler) Highscores(w http.ResponseWriter, r *http.Request) {
	query, err := ParseHighscoreQuery(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		SendErrorOrLog(w, g.logger, err)
		return
	}

	highscores, err := g.repo.GetHighscores(r.Context(), repository.HighscoreFilter{
		Username: query.Username,
		PuzzleId: query.PuzzleId,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch highscores", "error", err)
		return
	}

	SendJSONOrLog(w, g.logger, highscores)
}
