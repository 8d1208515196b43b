package sheethandlers

import (
	"context"

	gameservice "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/application"
	sheetservice "github.com/Black-And-White-Club/mahjong-ledger/app/modules/sheet/application"
	sheetdb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/sheet/infrastructure/repositories"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/results"
	"github.com/google/uuid"
)

type FakeService struct {
	CreateSheetFunc     func(ctx context.Context, playerIDs []uuid.UUID) results.OperationResult[uuid.UUID, error]
	GetSheetFunc        func(ctx context.Context, id uuid.UUID) results.OperationResult[*sheetservice.SheetDetail, error]
	ListSheetsFunc      func(ctx context.Context, limit int) results.OperationResult[[]sheetdb.SheetSummary, error]
	ExportSheetFunc     func(ctx context.Context, id uuid.UUID) results.OperationResult[*sheetservice.SheetExport, error]
	RecordSheetGameFunc func(ctx context.Context, sheetID uuid.UUID, in sheetservice.SheetGameInput) results.OperationResult[gameservice.GameRecorded, error]
}

func (f *FakeService) CreateSheet(ctx context.Context, playerIDs []uuid.UUID) results.OperationResult[uuid.UUID, error] {
	if f.CreateSheetFunc != nil {
		return f.CreateSheetFunc(ctx, playerIDs)
	}
	return results.SuccessResult[uuid.UUID, error](uuid.New())
}

func (f *FakeService) GetSheet(ctx context.Context, id uuid.UUID) results.OperationResult[*sheetservice.SheetDetail, error] {
	if f.GetSheetFunc != nil {
		return f.GetSheetFunc(ctx, id)
	}
	return results.SuccessResult[*sheetservice.SheetDetail, error](&sheetservice.SheetDetail{})
}

func (f *FakeService) ListSheets(ctx context.Context, limit int) results.OperationResult[[]sheetdb.SheetSummary, error] {
	if f.ListSheetsFunc != nil {
		return f.ListSheetsFunc(ctx, limit)
	}
	return results.SuccessResult[[]sheetdb.SheetSummary, error]([]sheetdb.SheetSummary{})
}

func (f *FakeService) ExportSheet(ctx context.Context, id uuid.UUID) results.OperationResult[*sheetservice.SheetExport, error] {
	if f.ExportSheetFunc != nil {
		return f.ExportSheetFunc(ctx, id)
	}
	return results.SuccessResult[*sheetservice.SheetExport, error](&sheetservice.SheetExport{Filename: "sheet.xlsx"})
}

func (f *FakeService) RecordSheetGame(ctx context.Context, sheetID uuid.UUID, in sheetservice.SheetGameInput) results.OperationResult[gameservice.GameRecorded, error] {
	if f.RecordSheetGameFunc != nil {
		return f.RecordSheetGameFunc(ctx, sheetID, in)
	}
	return results.SuccessResult[gameservice.GameRecorded, error](gameservice.GameRecorded{GameID: uuid.New(), Message: gameservice.SavedMessage})
}

var _ sheetservice.Service = (*FakeService)(nil)
