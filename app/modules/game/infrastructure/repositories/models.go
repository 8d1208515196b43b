package gamedb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// DefaultRuleSetName names the rule set created on the first recorded game.
const DefaultRuleSetName = "standard rules"

// RuleSet is a scoring configuration. At most one row is the default.
type RuleSet struct {
	bun.BaseModel `bun:"table:rule_sets,alias:rs"`

	ID        uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	IsDefault bool      `bun:"is_default,notnull" json:"is_default"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
}

// Game is one hanchan. It is written together with its four participants.
type Game struct {
	bun.BaseModel `bun:"table:games,alias:g"`

	ID        uuid.UUID  `bun:"id,pk,type:uuid"`
	RuleSetID uuid.UUID  `bun:"rule_set_id,type:uuid,notnull"`
	PlayedAt  time.Time  `bun:"played_at,notnull"`
	SheetID   *uuid.UUID `bun:"sheet_id,type:uuid"`
	CreatedAt time.Time  `bun:"created_at,notnull"`
}

// Participant is one player's result in a game.
type Participant struct {
	bun.BaseModel `bun:"table:participants,alias:pt"`

	GameID   uuid.UUID `bun:"game_id,pk,type:uuid"`
	PlayerID uuid.UUID `bun:"player_id,pk,type:uuid"`
	Score    int       `bun:"score,notnull"`
	Point    float64   `bun:"point,notnull"`
	Place    int       `bun:"place,notnull"`
	Chip     int       `bun:"chip,notnull"`
}

// GameRecord is a game with its participants ordered by place.
type GameRecord struct {
	ID           uuid.UUID           `json:"id"`
	RuleSetID    uuid.UUID           `json:"rule_set_id"`
	PlayedAt     time.Time           `json:"played_at"`
	SheetID      *uuid.UUID          `json:"sheet_id,omitempty"`
	Participants []ParticipantRecord `json:"participants"`
}

// ParticipantRecord is a participant joined with the player's name.
type ParticipantRecord struct {
	PlayerID   uuid.UUID `bun:"player_id" json:"player_id"`
	PlayerName string    `bun:"player_name" json:"player_name"`
	Score      int       `bun:"score" json:"score"`
	Point      float64   `bun:"point" json:"point"`
	Place      int       `bun:"place" json:"place"`
	Chip       int       `bun:"chip" json:"chip"`
}

// participantRow is the flat scan target for participant reads.
type participantRow struct {
	GameID uuid.UUID `bun:"game_id"`
	ParticipantRecord
}
