package statsdomain

import (
	"time"

	gamedomain "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/domain"
	"github.com/google/uuid"
)

// CumulativePoint is the player's running point total after a game.
type CumulativePoint struct {
	PlayedAt time.Time
	Total    float64
}

// CumulativePoints walks history from oldest to newest and returns the running
// total after each of the player's games. History is expected newest first.
func CumulativePoints(playerID uuid.UUID, history []HistoryGame) []CumulativePoint {
	out := make([]CumulativePoint, 0, len(history))
	var total float64
	for i := len(history) - 1; i >= 0; i-- {
		own, ok := find(history[i].Participants, playerID)
		if !ok {
			continue
		}
		total += own.Point
		out = append(out, CumulativePoint{PlayedAt: history[i].PlayedAt, Total: gamedomain.Round1(total)})
	}
	return out
}
