package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/sheetdoc/internal/pipeline"
	"github.com/pdiddy/sheetdoc/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert one workbook range into a Word document",
	Long: `Convert reads the configured cell range from an Excel workbook and writes
a Word document containing the range as a table. The range, sheet, and
output settings come from the config file; flags override single values.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("input", "", "workbook to read (overrides extraction.input_path)")
	convertCmd.Flags().String("sheet", "", "worksheet to read (default: the workbook's active sheet)")
	convertCmd.Flags().String("output", "", "document to write (overrides render.output_path)")
	convertCmd.Flags().String("title", "", "document heading (overrides render.document_title)")
	convertCmd.Flags().String("range", "", `cell range in A1 notation, e.g. "A1:E10" (overrides the configured bounds)`)

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()

	if v, _ := cmd.Flags().GetString("input"); v != "" {
		cfg.Extraction.InputPath = v
	}
	if v, _ := cmd.Flags().GetString("sheet"); v != "" {
		cfg.Extraction.SheetName = v
	}
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		cfg.Render.OutputPath = v
	}
	if v, _ := cmd.Flags().GetString("title"); v != "" {
		cfg.Render.DocumentTitle = v
	}
	if v, _ := cmd.Flags().GetString("range"); v != "" {
		if err := applyRangeFlag(&cfg.Extraction, v); err != nil {
			return err
		}
	}

	_, err := pipeline.New(cfg).Run(os.Stdout)
	return err
}

// applyRangeFlag overwrites the configured bounds with a range given in A1
// notation, e.g. "A1:E10" or "B2:AF40".
func applyRangeFlag(ext *types.ExtractionConfig, value string) error {
	start, end, ok := strings.Cut(value, ":")
	if !ok {
		return fmt.Errorf("range %q must look like A1:E10", value)
	}
	startCol, startRow, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return fmt.Errorf("range start %q: %w", start, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return fmt.Errorf("range end %q: %w", end, err)
	}

	startLetters, err := excelize.ColumnNumberToName(startCol)
	if err != nil {
		return fmt.Errorf("range start %q: %w", start, err)
	}
	endLetters, err := excelize.ColumnNumberToName(endCol)
	if err != nil {
		return fmt.Errorf("range end %q: %w", end, err)
	}

	ext.StartColumn = startLetters
	ext.EndColumn = endLetters
	ext.StartRow = startRow
	ext.EndRow = endRow
	return nil
}
