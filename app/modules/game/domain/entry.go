// Package gamedomain holds the pure rules for turning four raw entries into
// participant records.
package gamedomain

import (
	"strings"

	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/apperrors"
	"github.com/google/uuid"
)

// PlayersPerGame is the fixed table size.
const PlayersPerGame = 4

// EntryInput is one player's row as submitted. Nil numbers mean the field was
// left blank.
type EntryInput struct {
	PlayerID string   `json:"player_id"`
	Score    *int     `json:"score"`
	Point    *float64 `json:"point"`
	Chip     *int     `json:"chip,omitempty"`
}

// Entry is a validated row.
type Entry struct {
	PlayerID uuid.UUID
	Score    int
	Point    float64
	Chip     int
}

const msgFillInAll = "fill in all players and scores"

// ValidateEntries checks that exactly four complete rows with distinct players
// were submitted. Chip defaults to 0.
func ValidateEntries(inputs []EntryInput) ([]Entry, error) {
	if len(inputs) != PlayersPerGame {
		return nil, apperrors.Validation("entries", msgFillInAll)
	}

	entries := make([]Entry, 0, PlayersPerGame)
	seen := make(map[uuid.UUID]struct{}, PlayersPerGame)
	for _, in := range inputs {
		raw := strings.TrimSpace(in.PlayerID)
		switch {
		case raw == "":
			return nil, apperrors.Validation("player_id", msgFillInAll)
		case in.Score == nil:
			return nil, apperrors.Validation("score", msgFillInAll)
		case in.Point == nil:
			return nil, apperrors.Validation("point", msgFillInAll)
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, apperrors.Validation("player_id", "unknown player id "+raw)
		}
		if _, dup := seen[id]; dup {
			return nil, apperrors.Validation("player_id", "each player can only appear once per game")
		}
		seen[id] = struct{}{}

		chip := 0
		if in.Chip != nil {
			chip = *in.Chip
		}
		entries = append(entries, Entry{PlayerID: id, Score: *in.Score, Point: *in.Point, Chip: chip})
	}
	return entries, nil
}
