package sheethandlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers defines the sheet HTTP endpoints.
type Handlers interface {
	HandleListSheets(w http.ResponseWriter, r *http.Request)
	HandleCreateSheet(w http.ResponseWriter, r *http.Request)
	HandleGetSheet(w http.ResponseWriter, r *http.Request)
	HandleExportSheet(w http.ResponseWriter, r *http.Request)
	HandleRecordSheetGame(w http.ResponseWriter, r *http.Request)
	RegisterRoutes(r chi.Router)
}
