package sheetservice

import (
	gamedb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/infrastructure/repositories"
	sheetdb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/sheet/infrastructure/repositories"
	"github.com/google/uuid"
)

// MinSheetPlayers is the smallest group a sheet can be opened for.
const MinSheetPlayers = 4

// Sheet listing limits.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// MemberTotal is a member's running result on a sheet.
type MemberTotal struct {
	PlayerID uuid.UUID `json:"player_id"`
	Name     string    `json:"name"`
	Point    float64   `json:"point"`
	Chip     int       `json:"chip"`
	Total    float64   `json:"total"`
	Games    int       `json:"games"`
}

// SheetDetail is a sheet with members, games oldest first, and totals.
type SheetDetail struct {
	Sheet   sheetdb.Sheet       `json:"sheet"`
	Players []sheetdb.Member    `json:"players"`
	Games   []gamedb.GameRecord `json:"games"`
	Totals  []MemberTotal       `json:"totals"`
}

// SignedCell is a point cell on the sheet grid with its sign toggle.
type SignedCell struct {
	Value    float64 `json:"value"`
	Negative bool    `json:"negative"`
}

// SheetGameInput is one row entered on the sheet grid. The top player's cell
// is derived so the four points balance.
type SheetGameInput struct {
	Cells       map[uuid.UUID]SignedCell `json:"cells"`
	Chips       map[uuid.UUID]int        `json:"chips,omitempty"`
	TopPlayerID *uuid.UUID               `json:"top_player_id,omitempty"`
	PlayedAt    string                   `json:"played_at,omitempty"`
}

// SheetExport is a rendered workbook ready for download.
type SheetExport struct {
	Filename string
	Content  []byte
}
