package sheetdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Sheet groups a fixed set of players whose games are tracked together.
type Sheet struct {
	bun.BaseModel `bun:"table:sheets,alias:s"`

	ID        uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Title     string    `bun:"title,notnull" json:"title"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
}

// SheetPlayer is one membership row. Position keeps the selection order.
type SheetPlayer struct {
	bun.BaseModel `bun:"table:sheet_players,alias:sp"`

	SheetID  uuid.UUID `bun:"sheet_id,pk,type:uuid"`
	PlayerID uuid.UUID `bun:"player_id,pk,type:uuid"`
	Position int       `bun:"position,notnull"`
}

// Member is a sheet member with the player's name.
type Member struct {
	PlayerID uuid.UUID `bun:"player_id" json:"player_id"`
	Name     string    `bun:"name" json:"name"`
	Position int       `bun:"position" json:"position"`
}

// SheetSummary is a row of the sheet index.
type SheetSummary struct {
	ID          uuid.UUID `bun:"id" json:"id"`
	Title       string    `bun:"title" json:"title"`
	CreatedAt   time.Time `bun:"created_at" json:"created_at"`
	PlayerCount int       `bun:"player_count" json:"player_count"`
	GameCount   int       `bun:"game_count" json:"game_count"`
}
