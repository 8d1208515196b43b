package sheetservice

import (
	"context"

	gameservice "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/application"
	sheetdb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/sheet/infrastructure/repositories"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/results"
	"github.com/google/uuid"
)

// Service manages sheets and records games entered on a sheet grid.
type Service interface {
	CreateSheet(ctx context.Context, playerIDs []uuid.UUID) results.OperationResult[uuid.UUID, error]
	GetSheet(ctx context.Context, id uuid.UUID) results.OperationResult[*SheetDetail, error]
	ListSheets(ctx context.Context, limit int) results.OperationResult[[]sheetdb.SheetSummary, error]
	ExportSheet(ctx context.Context, id uuid.UUID) results.OperationResult[*SheetExport, error]
	RecordSheetGame(ctx context.Context, sheetID uuid.UUID, in SheetGameInput) results.OperationResult[gameservice.GameRecorded, error]
}
