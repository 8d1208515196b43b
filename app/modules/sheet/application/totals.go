package sheetservice

import (
	gamedomain "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/domain"
	gamedb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/infrastructure/repositories"
	sheetdb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/sheet/infrastructure/repositories"
	"github.com/google/uuid"
)

// ComputeTotals sums point and chip per member across the sheet's games.
// Members who never played keep zeros.
func ComputeTotals(members []sheetdb.Member, games []gamedb.GameRecord) []MemberTotal {
	totals := make([]MemberTotal, len(members))
	index := make(map[uuid.UUID]int, len(members))
	points := make([]float64, len(members))
	for i, m := range members {
		totals[i] = MemberTotal{PlayerID: m.PlayerID, Name: m.Name}
		index[m.PlayerID] = i
	}

	for _, g := range games {
		for _, p := range g.Participants {
			i, ok := index[p.PlayerID]
			if !ok {
				continue
			}
			points[i] += p.Point
			totals[i].Chip += p.Chip
			totals[i].Games++
		}
	}

	for i := range totals {
		totals[i].Point = gamedomain.Round1(points[i])
		totals[i].Total = gamedomain.Round1(points[i] + float64(totals[i].Chip))
	}
	return totals
}
