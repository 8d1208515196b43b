package statsdomain

import (
	"encoding/json"
	"sort"
	"time"

	gamedomain "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/domain"
	"github.com/google/uuid"
)

// Matchup is the head-to-head record against one opponent.
type Matchup struct {
	PlayerID uuid.UUID `json:"player_id"`
	Name     string    `json:"name"`
	Games    int       `json:"games"`
	// AverageDiff is the mean of (own point - opponent point) over shared games.
	AverageDiff float64 `json:"average_diff"`
}

// HistoryGame is one game the player took part in, with every participant.
type HistoryGame struct {
	GameID       uuid.UUID       `json:"game_id"`
	PlayedAt     time.Time       `json:"played_at"`
	Participants []Participation `json:"participants"`
}

// PlayerStats summarizes one player's participations.
type PlayerStats struct {
	PlayerID          uuid.UUID     `json:"player_id"`
	Name              string        `json:"name"`
	TotalGames        int           `json:"total_games"`
	TotalPoint        float64       `json:"total_point"`
	AveragePoint      float64       `json:"average_point"`
	AveragePlace      float64       `json:"average_place"`
	TotalChip         int           `json:"total_chip"`
	PlaceDistribution [4]int        `json:"place_distribution"`
	Matchups          []Matchup     `json:"matchups"`
	History           []HistoryGame `json:"history"`
}

// MarshalJSON rounds the average difference to one decimal for display.
func (m Matchup) MarshalJSON() ([]byte, error) {
	type plain Matchup
	out := plain(m)
	out.AverageDiff = gamedomain.Round1(out.AverageDiff)
	return json.Marshal(out)
}

// MarshalJSON rounds point totals and averages to one decimal for display.
// Matchups round themselves.
func (s PlayerStats) MarshalJSON() ([]byte, error) {
	type plain PlayerStats
	out := plain(s)
	out.TotalPoint = gamedomain.Round1(out.TotalPoint)
	out.AveragePoint = gamedomain.Round1(out.AveragePoint)
	return json.Marshal(out)
}

// BuildPlayerStats reduces the rows of the games a player took part in.
// Rows of one game must be adjacent; history keeps the order games appear in.
// Matchups are sorted by shared games, most first, ties in first-seen order.
func BuildPlayerStats(playerID uuid.UUID, name string, rows []Participation) PlayerStats {
	stats := PlayerStats{
		PlayerID: playerID,
		Name:     name,
		Matchups: []Matchup{},
		History:  []HistoryGame{},
	}

	var pointSum float64
	var placeSum int
	diffSums := []float64{}
	matchIndex := map[uuid.UUID]int{}

	for _, game := range groupByGame(rows) {
		stats.History = append(stats.History, game)

		own, ok := find(game.Participants, playerID)
		if !ok {
			continue
		}
		stats.TotalGames++
		pointSum += own.Point
		placeSum += own.Place
		stats.TotalChip += own.Chip
		if own.Place >= 1 && own.Place <= len(stats.PlaceDistribution) {
			stats.PlaceDistribution[own.Place-1]++
		}

		for _, other := range game.Participants {
			if other.PlayerID == playerID {
				continue
			}
			i, seen := matchIndex[other.PlayerID]
			if !seen {
				i = len(stats.Matchups)
				matchIndex[other.PlayerID] = i
				stats.Matchups = append(stats.Matchups, Matchup{PlayerID: other.PlayerID, Name: other.PlayerName})
				diffSums = append(diffSums, 0)
			}
			stats.Matchups[i].Games++
			diffSums[i] += own.Point - other.Point
		}
	}

	stats.TotalPoint = pointSum
	stats.AveragePoint = mean(pointSum, stats.TotalGames)
	stats.AveragePlace = mean(float64(placeSum), stats.TotalGames)
	for i := range stats.Matchups {
		stats.Matchups[i].AverageDiff = mean(diffSums[i], stats.Matchups[i].Games)
	}
	sort.SliceStable(stats.Matchups, func(a, b int) bool {
		return stats.Matchups[a].Games > stats.Matchups[b].Games
	})
	return stats
}

func groupByGame(rows []Participation) []HistoryGame {
	var games []HistoryGame
	for _, row := range rows {
		if n := len(games); n == 0 || games[n-1].GameID != row.GameID {
			games = append(games, HistoryGame{GameID: row.GameID, PlayedAt: row.PlayedAt})
		}
		last := &games[len(games)-1]
		last.Participants = append(last.Participants, row)
	}
	return games
}

func find(participants []Participation, playerID uuid.UUID) (Participation, bool) {
	for _, p := range participants {
		if p.PlayerID == playerID {
			return p, true
		}
	}
	return Participation{}, false
}
