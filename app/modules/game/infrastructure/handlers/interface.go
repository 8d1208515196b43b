package gamehandlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers defines the game HTTP endpoints.
type Handlers interface {
	HandleCreateGame(w http.ResponseWriter, r *http.Request)
	HandleRecentGames(w http.ResponseWriter, r *http.Request)
	HandleAutoBalance(w http.ResponseWriter, r *http.Request)
	RegisterRoutes(r chi.Router)
}
