//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// Sample writes a demonstration workbook into the watch directory so the
// pipeline can be exercised end to end without hunting for an .xlsx file.
func Sample() error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	rows := [][]any{
		{"Product", "Region", "Units", "Unit Price", "In Stock"},
		{"Widget", "North", 120, 19.90, true},
		{"Widget", "South", 85, 19.90, true},
		{"Gadget", "North", 240, 4.25, false},
		{"Gadget", "East", 310, 4.25, true},
		{"Sprocket", "West", 18, 149.00, true},
		{"Cog", "North", 950, 0.85, true},
		{"Cog", "South", 1200, 0.85, false},
		{"Flange", "East", 42, 33.10, true},
		{"Flange", "West", 67, 33.10, true},
	}
	for r, row := range rows {
		for c, v := range row {
			ref, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, ref, v); err != nil {
				return fmt.Errorf("setting %s: %w", ref, err)
			}
		}
	}

	dir := "excel-data"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	path := filepath.Join(dir, "sample.xlsx")
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
