package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		kind     Kind
		message  string
		public   string
	}{
		{
			name:     "validation",
			err:      Validation("name", "enter a name"),
			sentinel: ErrValidation,
			kind:     KindValidation,
			message:  "enter a name",
			public:   "enter a name",
		},
		{
			name:     "not found",
			err:      NotFound("player", "abc"),
			sentinel: ErrNotFound,
			kind:     KindNotFound,
			message:  "player abc not found",
			public:   "player abc not found",
		},
		{
			name:     "storage hides cause from public message",
			err:      Storage("failed to save game", errors.New("connection reset")),
			sentinel: ErrStorage,
			kind:     KindStorage,
			message:  "failed to save game: connection reset",
			public:   "failed to save game",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
			assert.Equal(t, tt.kind, KindOf(wrapped))
			assert.Equal(t, tt.message, tt.err.Error())
			assert.Equal(t, tt.public, PublicMessage(wrapped))
		})
	}
}

func TestKindOfUnknownError(t *testing.T) {
	err := errors.New("plain")
	assert.Equal(t, KindStorage, KindOf(err))
	assert.NotErrorIs(t, err, ErrValidation)
	assert.Equal(t, "an unexpected error occurred", PublicMessage(err))
}

func TestStorageUnwrap(t *testing.T) {
	cause := errors.New("deadlock")
	err := Storage("failed", cause)
	assert.ErrorIs(t, err, cause)
}
