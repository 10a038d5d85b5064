// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "testing"

func TestCellValueDisplay(t *testing.T) {
	tests := []struct {
		name string
		cell CellValue
		want string
	}{
		{"string", StringCell("hello"), "hello"},
		{"whole number has no decimals", NumberCell(3), "3"},
		{"decimal keeps its digits", NumberCell(3.14), "3.14"},
		{"negative", NumberCell(-0.5), "-0.5"},
		{"large number avoids exponent", NumberCell(1234567), "1234567"},
		{"bool true", BoolCell(true), "TRUE"},
		{"bool false", BoolCell(false), "FALSE"},
		{"empty", EmptyCell(), ""},
		{"zero value", CellValue{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.Display(); got != tt.want {
				t.Errorf("Display() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTableMaxWidth(t *testing.T) {
	table := &Table{Rows: [][]CellValue{
		{StringCell("a"), StringCell("b")},
		{StringCell("c"), StringCell("d"), StringCell("e")},
		{},
	}}
	if got := table.MaxWidth(); got != 3 {
		t.Errorf("MaxWidth() = %d, want 3", got)
	}
	if got := table.RowCount(); got != 3 {
		t.Errorf("RowCount() = %d, want 3", got)
	}

	empty := &Table{}
	if got := empty.MaxWidth(); got != 0 {
		t.Errorf("empty MaxWidth() = %d, want 0", got)
	}
}
