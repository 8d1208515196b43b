// Package httpapi holds the JSON response helpers and middleware shared by
// every module's HTTP handlers.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/apperrors"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/attr"
)

const maxBodyBytes = 1 << 20

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// StatusFor maps the error taxonomy onto HTTP status codes.
func StatusFor(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes err as an ErrorBody. Storage faults are logged and only
// their public message is returned.
func WriteError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := StatusFor(err)
	body := ErrorBody{Message: apperrors.PublicMessage(err)}

	var appErr *apperrors.Error
	if errors.As(err, &appErr) && appErr.Kind == apperrors.KindValidation {
		body.Field = appErr.Field
	}

	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "Request failed",
			attr.String("path", r.URL.Path),
			attr.ExtractCorrelationID(r.Context()),
			attr.Error(err),
		)
	}
	WriteJSON(w, status, body)
}

// DecodeJSON reads a bounded JSON body into v. Malformed input becomes a
// validation error.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperrors.Validation("body", fmt.Sprintf("invalid request body: %v", err))
	}
	return nil
}
