package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/apperrors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPathUUID(t *testing.T) {
	id := uuid.New()
	var got uuid.UUID
	var gotErr error

	r := chi.NewRouter()
	r.Get("/sheets/{sheetID}", func(w http.ResponseWriter, r *http.Request) {
		got, gotErr = PathUUID(r, "sheetID", "sheet")
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/sheets/"+id.String(), nil))
	assert.NoError(t, gotErr)
	assert.Equal(t, id, got)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/sheets/not-a-uuid", nil))
	assert.True(t, errors.Is(gotErr, apperrors.ErrNotFound))
	assert.Equal(t, uuid.Nil, got)
}
