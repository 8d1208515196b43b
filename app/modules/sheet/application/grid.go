package sheetservice

import (
	"fmt"

	gamedomain "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/domain"
	sheetdb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/sheet/infrastructure/repositories"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/apperrors"
	"github.com/google/uuid"
)

// ComposeEntries turns a grid row into four game entries in member order.
// Raw scores are estimated from points around scoreBase.
func ComposeEntries(members []sheetdb.Member, in SheetGameInput, scoreBase int) ([]gamedomain.EntryInput, error) {
	isMember := make(map[uuid.UUID]bool, len(members))
	for _, m := range members {
		isMember[m.PlayerID] = true
	}
	for id := range in.Cells {
		if !isMember[id] {
			return nil, apperrors.Validation("cells", fmt.Sprintf("player %s is not a member of this sheet", id))
		}
	}
	for id := range in.Chips {
		if !isMember[id] {
			return nil, apperrors.Validation("chips", fmt.Sprintf("player %s is not a member of this sheet", id))
		}
	}
	if in.TopPlayerID != nil && !isMember[*in.TopPlayerID] {
		return nil, apperrors.Validation("top_player_id", fmt.Sprintf("player %s is not a member of this sheet", *in.TopPlayerID))
	}

	points := make(map[uuid.UUID]float64, gamedomain.PlayersPerGame)
	var others []gamedomain.SignedEntry
	for _, m := range members {
		if in.TopPlayerID != nil && m.PlayerID == *in.TopPlayerID {
			continue
		}
		cell, ok := in.Cells[m.PlayerID]
		if !ok {
			continue
		}
		entry := gamedomain.SignedEntry{Value: cell.Value, Negative: cell.Negative, Present: true}
		others = append(others, entry)
		points[m.PlayerID] = entry.Signed()
	}

	active := len(others)
	if in.TopPlayerID != nil {
		active++
	}
	if active != gamedomain.PlayersPerGame {
		return nil, apperrors.Validation("cells", fmt.Sprintf("enter points for exactly %d players (got %d)", gamedomain.PlayersPerGame, active))
	}
	if in.TopPlayerID != nil {
		points[*in.TopPlayerID] = gamedomain.AutoBalance(others)
	}

	entries := make([]gamedomain.EntryInput, 0, gamedomain.PlayersPerGame)
	for _, m := range members {
		point, ok := points[m.PlayerID]
		if !ok {
			continue
		}
		score := gamedomain.EstimateScore(point, scoreBase)
		chip := in.Chips[m.PlayerID]
		entries = append(entries, gamedomain.EntryInput{
			PlayerID: m.PlayerID.String(),
			Score:    &score,
			Point:    &point,
			Chip:     &chip,
		})
	}
	return entries, nil
}
