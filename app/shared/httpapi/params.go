package httpapi

import (
	"net/http"

	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/apperrors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PathUUID reads a uuid route parameter. A malformed id cannot name an
// existing entity, so it is reported as not found.
func PathUUID(r *http.Request, param, entity string) (uuid.UUID, error) {
	raw := chi.URLParam(r, param)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.NotFound(entity, raw)
	}
	return id, nil
}
