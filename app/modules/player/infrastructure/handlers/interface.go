package playerhandlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers defines the player HTTP endpoints.
type Handlers interface {
	HandleListPlayers(w http.ResponseWriter, r *http.Request)
	HandleCreatePlayer(w http.ResponseWriter, r *http.Request)
	RegisterRoutes(r chi.Router)
}
