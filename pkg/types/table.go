// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strconv"

// CellKind identifies which member of the cell content union is set.
type CellKind string

const (
	CellEmpty  CellKind = "empty"
	CellString CellKind = "string"
	CellNumber CellKind = "number"
	CellBool   CellKind = "bool"
)

// CellValue is one spreadsheet cell reduced to its content: a string, a
// number, a boolean, or nothing. Formatting metadata is not retained.
type CellValue struct {
	Kind CellKind
	Str  string
	Num  float64
	Bool bool
}

// StringCell returns a cell holding text.
func StringCell(s string) CellValue { return CellValue{Kind: CellString, Str: s} }

// NumberCell returns a cell holding a numeric value.
func NumberCell(n float64) CellValue { return CellValue{Kind: CellNumber, Num: n} }

// BoolCell returns a cell holding a boolean.
func BoolCell(b bool) CellValue { return CellValue{Kind: CellBool, Bool: b} }

// EmptyCell returns a cell with no content.
func EmptyCell() CellValue { return CellValue{Kind: CellEmpty} }

// IsEmpty reports whether the cell has no content.
func (v CellValue) IsEmpty() bool { return v.Kind == CellEmpty || v.Kind == "" }

// Display returns the cell content as the text placed in a document table.
// Numbers use the shortest decimal form ("3", not "3.000000"), booleans
// render as TRUE or FALSE, and empty cells render as the empty string.
func (v CellValue) Display() string {
	switch v.Kind {
	case CellString:
		return v.Str
	case CellNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case CellBool:
		if v.Bool {
			return "TRUE"
		}
		return "FALSE"
	}
	return ""
}

// Table is the in-memory result of a range extraction. Rows are ordered
// top to bottom and cells left to right, in range order.
type Table struct {
	Rows [][]CellValue
}

// RowCount returns the number of rows in the table.
func (t *Table) RowCount() int { return len(t.Rows) }

// MaxWidth returns the widest row's cell count. Renderers pad shorter rows
// to this width.
func (t *Table) MaxWidth() int {
	w := 0
	for _, row := range t.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}
