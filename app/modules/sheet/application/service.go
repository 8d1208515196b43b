package sheetservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Black-And-White-Club/mahjong-ledger/app/eventbus"
	gameservice "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/application"
	playerservice "github.com/Black-And-White-Club/mahjong-ledger/app/modules/player/application"
	sheetdb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/sheet/infrastructure/repositories"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/apperrors"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/metrics"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/operation"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/results"
	"github.com/Black-And-White-Club/mahjong-ledger/config"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// SheetService implements the Service interface.
type SheetService struct {
	repo      sheetdb.Repository
	players   playerservice.Service
	games     gameservice.Service
	eventBus  eventbus.Publisher
	telemetry operation.Telemetry
	scoring   config.ScoringConfig
	db        *bun.DB
	now       func() time.Time
}

// NewSheetService creates a new SheetService.
func NewSheetService(
	repo sheetdb.Repository,
	players playerservice.Service,
	games gameservice.Service,
	eventBus eventbus.Publisher,
	scoring config.ScoringConfig,
	logger *slog.Logger,
	metrics metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *SheetService {
	return &SheetService{
		repo:      repo,
		players:   players,
		games:     games,
		eventBus:  eventBus,
		telemetry: operation.NewTelemetry("SheetService", logger, metrics, tracer),
		scoring:   scoring,
		db:        db,
		now:       time.Now,
	}
}

var _ Service = (*SheetService)(nil)

// CreateSheet opens a sheet for at least four distinct known players.
func (s *SheetService) CreateSheet(ctx context.Context, playerIDs []uuid.UUID) results.OperationResult[uuid.UUID, error] {
	return operation.Run(s.telemetry, ctx, "CreateSheet", "", func(ctx context.Context) (results.OperationResult[uuid.UUID, error], error) {
		ids := dedupe(playerIDs)
		if len(ids) < MinSheetPlayers {
			return results.FailureResult[uuid.UUID, error](apperrors.Validation("player_ids", "select at least 4 players")), nil
		}

		missing, failure := s.players.PlayersExist(ctx, ids).Unwrap()
		if failure != nil {
			return results.OperationResult[uuid.UUID, error]{}, *failure
		}
		if len(missing) > 0 {
			return results.FailureResult[uuid.UUID, error](apperrors.Validation("player_ids", "unknown player id "+joinIDs(missing))), nil
		}

		now := s.now().UTC()
		sheet := &sheetdb.Sheet{
			ID:        uuid.New(),
			Title:     now.Format("2006-01-02") + " set",
			CreatedAt: now,
		}
		members := make([]sheetdb.SheetPlayer, len(ids))
		for i, id := range ids {
			members[i] = sheetdb.SheetPlayer{SheetID: sheet.ID, PlayerID: id, Position: i}
		}

		result, err := operation.RunInTx(ctx, s.db, func(ctx context.Context, tx bun.IDB) (results.OperationResult[uuid.UUID, error], error) {
			if err := s.repo.CreateSheet(ctx, tx, sheet); err != nil {
				return results.OperationResult[uuid.UUID, error]{}, apperrors.Storage("failed to create sheet", err)
			}
			if err := s.repo.AddMembers(ctx, tx, members); err != nil {
				return results.OperationResult[uuid.UUID, error]{}, apperrors.Storage("failed to create sheet", err)
			}
			return results.SuccessResult[uuid.UUID, error](sheet.ID), nil
		})
		if err != nil || result.IsFailure() {
			return result, err
		}

		operation.PublishAfterCommit(s.telemetry, ctx, s.eventBus, eventbus.SheetCreatedV1, eventbus.SheetCreatedPayloadV1{
			SheetID:   sheet.ID,
			Title:     sheet.Title,
			PlayerIDs: ids,
		})
		return result, nil
	})
}

// GetSheet loads a sheet with its members, games and running totals.
func (s *SheetService) GetSheet(ctx context.Context, id uuid.UUID) results.OperationResult[*SheetDetail, error] {
	return operation.Run(s.telemetry, ctx, "GetSheet", id.String(), func(ctx context.Context) (results.OperationResult[*SheetDetail, error], error) {
		detail, err := s.loadDetail(ctx, id)
		if err != nil {
			if apperrors.KindOf(err) == apperrors.KindNotFound {
				return results.FailureResult[*SheetDetail, error](err), nil
			}
			return results.OperationResult[*SheetDetail, error]{}, err
		}
		return results.SuccessResult[*SheetDetail, error](detail), nil
	})
}

func (s *SheetService) loadDetail(ctx context.Context, id uuid.UUID) (*SheetDetail, error) {
	sheet, members, err := s.loadSheet(ctx, id)
	if err != nil {
		return nil, err
	}

	games, failure := s.games.ListGamesForSheet(ctx, id).Unwrap()
	if failure != nil {
		return nil, *failure
	}

	return &SheetDetail{
		Sheet:   *sheet,
		Players: members,
		Games:   games,
		Totals:  ComputeTotals(members, games),
	}, nil
}

func (s *SheetService) loadSheet(ctx context.Context, id uuid.UUID) (*sheetdb.Sheet, []sheetdb.Member, error) {
	sheet, err := s.repo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, sheetdb.ErrNotFound) {
			return nil, nil, apperrors.NotFound("sheet", id.String())
		}
		return nil, nil, apperrors.Storage("failed to load sheet", err)
	}

	members, err := s.repo.ListMembers(ctx, nil, id)
	if err != nil {
		return nil, nil, apperrors.Storage("failed to load sheet members", err)
	}
	if members == nil {
		members = []sheetdb.Member{}
	}
	return sheet, members, nil
}

// ListSheets returns the newest sheets. A non-positive limit means the
// default; larger limits are capped.
func (s *SheetService) ListSheets(ctx context.Context, limit int) results.OperationResult[[]sheetdb.SheetSummary, error] {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}
	return operation.Run(s.telemetry, ctx, "ListSheets", "", func(ctx context.Context) (results.OperationResult[[]sheetdb.SheetSummary, error], error) {
		sheets, err := s.repo.ListSheets(ctx, nil, limit)
		if err != nil {
			return results.OperationResult[[]sheetdb.SheetSummary, error]{}, apperrors.Storage("failed to load sheets", err)
		}
		if sheets == nil {
			sheets = []sheetdb.SheetSummary{}
		}
		return results.SuccessResult[[]sheetdb.SheetSummary, error](sheets), nil
	})
}

// ExportSheet renders the sheet detail as an XLSX workbook.
func (s *SheetService) ExportSheet(ctx context.Context, id uuid.UUID) results.OperationResult[*SheetExport, error] {
	return operation.Run(s.telemetry, ctx, "ExportSheet", id.String(), func(ctx context.Context) (results.OperationResult[*SheetExport, error], error) {
		detail, err := s.loadDetail(ctx, id)
		if err != nil {
			if apperrors.KindOf(err) == apperrors.KindNotFound {
				return results.FailureResult[*SheetExport, error](err), nil
			}
			return results.OperationResult[*SheetExport, error]{}, err
		}

		content, err := RenderWorkbook(detail)
		if err != nil {
			return results.OperationResult[*SheetExport, error]{}, apperrors.Storage("failed to export sheet", err)
		}
		return results.SuccessResult[*SheetExport, error](&SheetExport{
			Filename: exportFilename(detail.Sheet),
			Content:  content,
		}), nil
	})
}

// RecordSheetGame composes a game from a grid row and records it against the
// sheet.
func (s *SheetService) RecordSheetGame(ctx context.Context, sheetID uuid.UUID, in SheetGameInput) results.OperationResult[gameservice.GameRecorded, error] {
	return operation.Run(s.telemetry, ctx, "RecordSheetGame", sheetID.String(), func(ctx context.Context) (results.OperationResult[gameservice.GameRecorded, error], error) {
		_, members, err := s.loadSheet(ctx, sheetID)
		if err != nil {
			if apperrors.KindOf(err) == apperrors.KindNotFound {
				return results.FailureResult[gameservice.GameRecorded, error](err), nil
			}
			return results.OperationResult[gameservice.GameRecorded, error]{}, err
		}

		entries, err := ComposeEntries(members, in, s.scoring.EstimatedScoreBase)
		if err != nil {
			return results.FailureResult[gameservice.GameRecorded, error](err), nil
		}

		return s.games.CreateGame(ctx, gameservice.CreateGameRequest{
			Entries:  entries,
			SheetID:  &sheetID,
			PlayedAt: in.PlayedAt,
		}), nil
	})
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func joinIDs(ids []uuid.UUID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ", ")
}

func exportFilename(sheet sheetdb.Sheet) string {
	return fmt.Sprintf("sheet-%s.xlsx", sheet.CreatedAt.Format("2006-01-02"))
}
