// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cellrange parses and validates rectangular cell ranges addressed
// by column letters and 1-based row numbers.
package cellrange

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrInvalidColumn indicates a column reference that is not a letter sequence.
var ErrInvalidColumn = errors.New("invalid column letters")

// ErrInvalidRange indicates bounds that do not describe a rectangle.
var ErrInvalidRange = errors.New("invalid range bounds")

// Range is a rectangular, contiguous block of cells. Bounds are inclusive
// and 1-based, with StartColumn <= EndColumn and StartRow <= EndRow.
type Range struct {
	StartColumn int
	EndColumn   int
	StartRow    int
	EndRow      int
}

// Parse builds a Range from column letters and row numbers as they appear in
// configuration. Column letters decode case-insensitively, so "af" and "AF"
// name the same column.
func Parse(startCol, endCol string, startRow, endRow int) (Range, error) {
	sc, err := DecodeColumn(startCol)
	if err != nil {
		return Range{}, err
	}
	ec, err := DecodeColumn(endCol)
	if err != nil {
		return Range{}, err
	}
	if startRow < 1 || endRow < 1 {
		return Range{}, fmt.Errorf("%w: rows are 1-based, got %d..%d", ErrInvalidRange, startRow, endRow)
	}
	if endRow < startRow {
		return Range{}, fmt.Errorf("%w: start row %d is below end row %d", ErrInvalidRange, startRow, endRow)
	}
	if ec < sc {
		return Range{}, fmt.Errorf("%w: start column %q is right of end column %q", ErrInvalidRange, startCol, endCol)
	}
	return Range{StartColumn: sc, EndColumn: ec, StartRow: startRow, EndRow: endRow}, nil
}

// DecodeColumn converts column letters to the 1-based column index:
// A=1, Z=26, AA=27.
func DecodeColumn(letters string) (int, error) {
	n, err := excelize.ColumnNameToNumber(letters)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColumn, letters)
	}
	return n, nil
}

// Columns returns the number of columns the range spans.
func (r Range) Columns() int { return r.EndColumn - r.StartColumn + 1 }

// Rows returns the number of rows the range spans.
func (r Range) Rows() int { return r.EndRow - r.StartRow + 1 }

// String renders the range in A1 notation, e.g. "A1:E10".
func (r Range) String() string {
	start, err := excelize.CoordinatesToCellName(r.StartColumn, r.StartRow)
	if err != nil {
		return fmt.Sprintf("R%dC%d:R%dC%d", r.StartRow, r.StartColumn, r.EndRow, r.EndColumn)
	}
	end, err := excelize.CoordinatesToCellName(r.EndColumn, r.EndRow)
	if err != nil {
		return fmt.Sprintf("R%dC%d:R%dC%d", r.StartRow, r.StartColumn, r.EndRow, r.EndColumn)
	}
	return start + ":" + end
}
