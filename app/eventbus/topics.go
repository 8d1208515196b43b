package eventbus

import (
	"time"

	"github.com/google/uuid"
)

// Topics published after a write commits. Consumers treat them as cache
// invalidation signals.
const (
	PlayerCreatedV1 = "player.created.v1"
	SheetCreatedV1  = "sheet.created.v1"
	GameRecordedV1  = "game.recorded.v1"
)

// AllTopics lists every subject the ledger stream carries.
var AllTopics = []string{PlayerCreatedV1, SheetCreatedV1, GameRecordedV1}

// PlayerCreatedPayloadV1 is published on PlayerCreatedV1.
type PlayerCreatedPayloadV1 struct {
	PlayerID  uuid.UUID `json:"player_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// SheetCreatedPayloadV1 is published on SheetCreatedV1.
type SheetCreatedPayloadV1 struct {
	SheetID   uuid.UUID   `json:"sheet_id"`
	Title     string      `json:"title"`
	PlayerIDs []uuid.UUID `json:"player_ids"`
}

// GameRecordedPayloadV1 is published on GameRecordedV1.
type GameRecordedPayloadV1 struct {
	GameID    uuid.UUID   `json:"game_id"`
	SheetID   *uuid.UUID  `json:"sheet_id,omitempty"`
	PlayerIDs []uuid.UUID `json:"player_ids"`
	PlayedAt  time.Time   `json:"played_at"`
}
