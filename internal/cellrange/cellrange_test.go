package cellrange

import (
	"errors"
	"testing"
)

func TestDecodeColumn(t *testing.T) {
	tests := []struct {
		letters string
		want    int
	}{
		{"A", 1},
		{"B", 2},
		{"Z", 26},
		{"AA", 27},
		{"AF", 32},
		{"AZ", 52},
		{"BA", 53},
		{"a", 1},
		{"af", 32},
		{"aF", 32},
	}
	for _, tt := range tests {
		t.Run(tt.letters, func(t *testing.T) {
			got, err := DecodeColumn(tt.letters)
			if err != nil {
				t.Fatalf("DecodeColumn(%q) error: %v", tt.letters, err)
			}
			if got != tt.want {
				t.Errorf("DecodeColumn(%q) = %d, want %d", tt.letters, got, tt.want)
			}
		})
	}
}

func TestDecodeColumnRejectsNonLetters(t *testing.T) {
	for _, letters := range []string{"", "1", "A1", "$A", "A B", "-"} {
		t.Run(letters, func(t *testing.T) {
			_, err := DecodeColumn(letters)
			if !errors.Is(err, ErrInvalidColumn) {
				t.Errorf("DecodeColumn(%q) error = %v, want ErrInvalidColumn", letters, err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	r, err := Parse("A", "E", 1, 10)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := Range{StartColumn: 1, EndColumn: 5, StartRow: 1, EndRow: 10}
	if r != want {
		t.Errorf("Parse = %+v, want %+v", r, want)
	}
	if r.Columns() != 5 {
		t.Errorf("Columns() = %d, want 5", r.Columns())
	}
	if r.Rows() != 10 {
		t.Errorf("Rows() = %d, want 10", r.Rows())
	}
}

func TestParseSingleCell(t *testing.T) {
	r, err := Parse("C", "C", 3, 3)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if r.Columns() != 1 || r.Rows() != 1 {
		t.Errorf("single cell range spans %dx%d, want 1x1", r.Rows(), r.Columns())
	}
}

func TestParseRejectsBadBounds(t *testing.T) {
	tests := []struct {
		name             string
		startCol, endCol string
		startRow, endRow int
		wantErr          error
	}{
		{"reversed rows", "A", "E", 10, 1, ErrInvalidRange},
		{"reversed columns", "E", "A", 1, 10, ErrInvalidRange},
		{"zero start row", "A", "E", 0, 10, ErrInvalidRange},
		{"negative row", "A", "E", -3, 10, ErrInvalidRange},
		{"zero end row", "A", "E", 1, 0, ErrInvalidRange},
		{"bad start column", "7", "E", 1, 10, ErrInvalidColumn},
		{"bad end column", "A", "E5", 1, 10, ErrInvalidColumn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.startCol, tt.endCol, tt.startRow, tt.endRow)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRangeString(t *testing.T) {
	tests := []struct {
		r    Range
		want string
	}{
		{Range{StartColumn: 1, EndColumn: 5, StartRow: 1, EndRow: 10}, "A1:E10"},
		{Range{StartColumn: 27, EndColumn: 32, StartRow: 2, EndRow: 4}, "AA2:AF4"},
		{Range{StartColumn: 3, EndColumn: 3, StartRow: 7, EndRow: 7}, "C7:C7"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
