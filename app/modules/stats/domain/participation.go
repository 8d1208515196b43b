package statsdomain

import (
	"time"

	"github.com/google/uuid"
)

// Participation is one participant row with its game's timing and the
// player's name.
type Participation struct {
	GameID     uuid.UUID `bun:"game_id" json:"game_id"`
	PlayerID   uuid.UUID `bun:"player_id" json:"player_id"`
	PlayerName string    `bun:"player_name" json:"player_name"`
	Score      int       `bun:"score" json:"score"`
	Point      float64   `bun:"point" json:"point"`
	Place      int       `bun:"place" json:"place"`
	Chip       int       `bun:"chip" json:"chip"`
	PlayedAt   time.Time `bun:"played_at" json:"played_at"`
}
