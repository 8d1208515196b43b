package sheethandlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	sheetservice "github.com/Black-And-White-Club/mahjong-ledger/app/modules/sheet/application"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/apperrors"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/attr"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/httpapi"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SheetHandlers implements the Handlers interface.
type SheetHandlers struct {
	service sheetservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewSheetHandlers creates a new SheetHandlers instance.
func NewSheetHandlers(service sheetservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &SheetHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// RegisterRoutes mounts the sheet endpoints.
func (h *SheetHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/api/sheets", h.HandleListSheets)
	r.Post("/api/sheets", h.HandleCreateSheet)
	r.Get("/api/sheets/{sheetID}", h.HandleGetSheet)
	r.Get("/api/sheets/{sheetID}/export.xlsx", h.HandleExportSheet)
	r.Post("/api/sheets/{sheetID}/games", h.HandleRecordSheetGame)
}

type createSheetRequest struct {
	PlayerIDs []uuid.UUID `json:"player_ids"`
}

type createSheetResponse struct {
	ID uuid.UUID `json:"id"`
}

func (h *SheetHandlers) HandleListSheets(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "SheetHandlers.HandleListSheets")
	defer span.End()

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httpapi.WriteError(w, r, h.logger, apperrors.Validation("limit", "limit must be a whole number"))
			return
		}
		limit = n
	}

	sheets, failure := h.service.ListSheets(ctx, limit).Unwrap()
	if failure != nil {
		httpapi.WriteError(w, r, h.logger, *failure)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, sheets)
}

func (h *SheetHandlers) HandleCreateSheet(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "SheetHandlers.HandleCreateSheet")
	defer span.End()

	var req createSheetRequest
	if err := httpapi.DecodeJSON(r, &req); err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	id, failure := h.service.CreateSheet(ctx, req.PlayerIDs).Unwrap()
	if failure != nil {
		httpapi.WriteError(w, r, h.logger, *failure)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, createSheetResponse{ID: id})
}

func (h *SheetHandlers) HandleGetSheet(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "SheetHandlers.HandleGetSheet")
	defer span.End()

	id, err := httpapi.PathUUID(r, "sheetID", "sheet")
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	detail, failure := h.service.GetSheet(ctx, id).Unwrap()
	if failure != nil {
		httpapi.WriteError(w, r, h.logger, *failure)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, detail)
}

// HandleExportSheet streams the sheet as an XLSX download.
func (h *SheetHandlers) HandleExportSheet(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "SheetHandlers.HandleExportSheet")
	defer span.End()

	id, err := httpapi.PathUUID(r, "sheetID", "sheet")
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	export, failure := h.service.ExportSheet(ctx, id).Unwrap()
	if failure != nil {
		httpapi.WriteError(w, r, h.logger, *failure)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(export.Content); err != nil {
		h.logger.WarnContext(ctx, "Failed to write sheet export", attr.Error(err))
	}
}

func (h *SheetHandlers) HandleRecordSheetGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "SheetHandlers.HandleRecordSheetGame")
	defer span.End()

	id, err := httpapi.PathUUID(r, "sheetID", "sheet")
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	var in sheetservice.SheetGameInput
	if err := httpapi.DecodeJSON(r, &in); err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	recorded, failure := h.service.RecordSheetGame(ctx, id, in).Unwrap()
	if failure != nil {
		httpapi.WriteError(w, r, h.logger, *failure)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, recorded)
}
