// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract reads a bounded cell range from an Excel workbook into an
// in-memory table.
package extract

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/sheetdoc/internal/cellrange"
	"github.com/pdiddy/sheetdoc/pkg/types"
)

// ErrNotFound indicates the workbook path does not exist.
var ErrNotFound = errors.New("workbook not found")

// ErrUnreadable indicates the file could not be opened as a workbook.
var ErrUnreadable = errors.New("unreadable workbook")

// ErrSheetNotFound indicates the named sheet is absent from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// Read opens the workbook at path read-only and extracts every cell of r from
// the named sheet, or from the workbook's active sheet when sheetName is
// empty. The result always has r.Rows() rows of r.Columns() cells; cells
// outside the sheet's populated extent come back empty.
func Read(path, sheetName string, r cellrange.Range) (*types.Table, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer f.Close()

	sheet, err := resolveSheet(f, sheetName)
	if err != nil {
		return nil, err
	}

	rows := make([][]types.CellValue, 0, r.Rows())
	for row := r.StartRow; row <= r.EndRow; row++ {
		cells := make([]types.CellValue, 0, r.Columns())
		for col := r.StartColumn; col <= r.EndColumn; col++ {
			v, err := readCell(f, sheet, col, row)
			if err != nil {
				return nil, err
			}
			cells = append(cells, v)
		}
		rows = append(rows, cells)
	}
	return &types.Table{Rows: rows}, nil
}

// resolveSheet picks the target worksheet: the named one when given,
// otherwise the workbook's active sheet.
func resolveSheet(f *excelize.File, name string) (string, error) {
	if name == "" {
		return f.GetSheetName(f.GetActiveSheetIndex()), nil
	}
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return "", fmt.Errorf("looking up sheet %q: %w", name, err)
	}
	if idx < 0 {
		return "", fmt.Errorf("%w: %q (workbook has: %s)",
			ErrSheetNotFound, name, strings.Join(f.GetSheetList(), ", "))
	}
	return name, nil
}

// readCell fetches one cell and reduces it to a typed CellValue.
func readCell(f *excelize.File, sheet string, col, row int) (types.CellValue, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return types.CellValue{}, fmt.Errorf("cell (%d,%d): %w", col, row, err)
	}
	val, err := f.GetCellValue(sheet, name)
	if err != nil {
		return types.CellValue{}, fmt.Errorf("reading cell %s: %w", name, err)
	}
	if val == "" {
		return types.EmptyCell(), nil
	}
	typ, err := f.GetCellType(sheet, name)
	if err != nil {
		return types.CellValue{}, fmt.Errorf("typing cell %s: %w", name, err)
	}
	return classify(typ, val), nil
}

// classify maps an excelize cell type and its formatted value onto the cell
// content union. Numeric cells in xlsx usually carry no explicit type
// attribute, so anything not marked as text or boolean that parses as a
// float counts as a number.
func classify(typ excelize.CellType, val string) types.CellValue {
	switch typ {
	case excelize.CellTypeBool:
		return types.BoolCell(val == "TRUE" || val == "1")
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return types.StringCell(val)
	case excelize.CellTypeDate, excelize.CellTypeError:
		return types.StringCell(val)
	}
	if n, err := strconv.ParseFloat(val, 64); err == nil {
		return types.NumberCell(n)
	}
	return types.StringCell(val)
}
