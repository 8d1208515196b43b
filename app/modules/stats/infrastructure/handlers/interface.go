package statshandlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers defines the stats HTTP endpoints.
type Handlers interface {
	HandleRanking(w http.ResponseWriter, r *http.Request)
	HandlePlayerStats(w http.ResponseWriter, r *http.Request)
	HandlePointChart(w http.ResponseWriter, r *http.Request)
	RegisterRoutes(r chi.Router)
}
