package statsdomain

import (
	"encoding/json"
	"sort"

	gamedomain "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/domain"
	"github.com/google/uuid"
)

// RankingEntry is one player's all-time line in the ranking table.
type RankingEntry struct {
	PlayerID     uuid.UUID `json:"player_id"`
	Name         string    `json:"name"`
	TotalPoint   float64   `json:"total_point"`
	Games        int       `json:"games"`
	TotalOrder   int       `json:"total_order"`
	AverageOrder float64   `json:"average_order"`
	TotalChip    int       `json:"total_chip"`
}

// MarshalJSON rounds the total point to one decimal for display.
func (e RankingEntry) MarshalJSON() ([]byte, error) {
	type plain RankingEntry
	out := plain(e)
	out.TotalPoint = gamedomain.Round1(out.TotalPoint)
	return json.Marshal(out)
}

// BuildRanking reduces the participant log into per-player totals sorted by
// the exact total point, highest first. Equal totals keep the order in which
// players first appear in rows.
func BuildRanking(rows []Participation) []RankingEntry {
	ranking := []RankingEntry{}
	sums := []float64{}
	index := map[uuid.UUID]int{}

	for _, row := range rows {
		i, ok := index[row.PlayerID]
		if !ok {
			i = len(ranking)
			index[row.PlayerID] = i
			ranking = append(ranking, RankingEntry{PlayerID: row.PlayerID, Name: row.PlayerName})
			sums = append(sums, 0)
		}
		sums[i] += row.Point
		ranking[i].Games++
		ranking[i].TotalOrder += row.Place
		ranking[i].TotalChip += row.Chip
	}

	for i := range ranking {
		ranking[i].TotalPoint = sums[i]
		ranking[i].AverageOrder = mean(float64(ranking[i].TotalOrder), ranking[i].Games)
	}

	sort.SliceStable(ranking, func(a, b int) bool {
		return ranking[a].TotalPoint > ranking[b].TotalPoint
	})
	return ranking
}

func mean(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
