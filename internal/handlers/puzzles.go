package handlers

import (
	"net/http"

	"github.com/vancomm/nonogram-server/internal/nonogram"
)

// ListPuzzles returns the built-in puzzle catalog.
func (g GameHandler) ListPuzzles(w http.ResponseWriter, r *http.Request) {
	SendJSONOrLog(w, g.logger, nonogram.Catalog)
}
