package gameservice

import (
	gamedomain "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/domain"
	"github.com/google/uuid"
)

// SavedMessage is returned to the caller when a game is recorded.
const SavedMessage = "game result saved"

// Recent game limits.
const (
	DefaultRecentLimit = 10
	MaxRecentLimit     = 100
)

// CreateGameRequest is one game as submitted by the input form or the sheet grid.
type CreateGameRequest struct {
	Entries  []gamedomain.EntryInput `json:"entries"`
	SheetID  *uuid.UUID              `json:"sheet_id,omitempty"`
	PlayedAt string                  `json:"played_at,omitempty"`
}

// Placement is a player's derived finishing place.
type Placement struct {
	PlayerID uuid.UUID `json:"player_id"`
	Place    int       `json:"place"`
	Point    float64   `json:"point"`
}

// GameRecorded is the success payload of CreateGame.
type GameRecorded struct {
	GameID         uuid.UUID   `json:"game_id"`
	Message        string      `json:"message"`
	Places         []Placement `json:"places"`
	PointImbalance float64     `json:"point_imbalance"`
}
