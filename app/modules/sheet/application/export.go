package sheetservice

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Results"

// RenderWorkbook writes the sheet as an XLSX workbook: a header of member
// names, one row per game, then point, chip and total rows.
func RenderWorkbook(detail *SheetDetail) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return nil, fmt.Errorf("failed to name worksheet: %w", err)
	}

	set := func(col, row int, value any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(exportSheetName, cell, value)
	}

	column := make(map[uuid.UUID]int, len(detail.Players))
	if err := set(1, 1, detail.Sheet.Title); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for i, m := range detail.Players {
		column[m.PlayerID] = i + 2
		if err := set(i+2, 1, m.Name); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	row := 2
	for _, g := range detail.Games {
		if err := set(1, row, g.PlayedAt.Format("2006-01-02 15:04")); err != nil {
			return nil, fmt.Errorf("failed to write game row: %w", err)
		}
		for _, p := range g.Participants {
			col, ok := column[p.PlayerID]
			if !ok {
				continue
			}
			if err := set(col, row, p.Point); err != nil {
				return nil, fmt.Errorf("failed to write game row: %w", err)
			}
		}
		row++
	}

	summary := []struct {
		label string
		value func(MemberTotal) any
	}{
		{"Point", func(t MemberTotal) any { return t.Point }},
		{"Chip", func(t MemberTotal) any { return t.Chip }},
		{"Total", func(t MemberTotal) any { return t.Total }},
	}
	for _, s := range summary {
		if err := set(1, row, s.label); err != nil {
			return nil, fmt.Errorf("failed to write totals: %w", err)
		}
		for _, t := range detail.Totals {
			col, ok := column[t.PlayerID]
			if !ok {
				continue
			}
			if err := set(col, row, s.value(t)); err != nil {
				return nil, fmt.Errorf("failed to write totals: %w", err)
			}
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
