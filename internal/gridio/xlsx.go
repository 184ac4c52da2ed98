package gridio

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"slotwise/internal/domain"
	"slotwise/internal/engine"
)

// ReadWorkbook converts the first sheet of an xlsx workbook into the
// engine's RawGrid: cell text row by row plus the sheet's merged rectangles.
// No interpretation happens here; the engine owns all heuristics.
func ReadWorkbook(r io.Reader) (*engine.RawGrid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("gridio.ReadWorkbook: opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrEmptyWorkbook
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("gridio.ReadWorkbook: reading rows: %w", err)
	}

	mergeCells, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, fmt.Errorf("gridio.ReadWorkbook: reading merge cells: %w", err)
	}

	grid := &engine.RawGrid{Rows: rows}
	for _, mc := range mergeCells {
		startCol, startRow, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			continue
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			continue
		}
		grid.Merges = append(grid.Merges, engine.MergeSpan{
			StartRow: startRow - 1,
			StartCol: startCol - 1,
			EndRow:   endRow - 1,
			EndCol:   endCol - 1,
		})
	}
	return grid, nil
}
