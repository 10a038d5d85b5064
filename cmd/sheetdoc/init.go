// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/sheetdoc/pkg/types"
)

const configFileName = "sheetdoc.yaml"

// defaultConfigYAML is the starter config written by "sheetdoc init". It
// mirrors the built-in defaults so a fresh checkout behaves the same with
// or without the file.
const defaultConfigYAML = `# sheetdoc configuration.
# Values omitted here fall back to built-in defaults; SHEETDOC_* environment
# variables and command-line flags override this file.

extraction:
  # Workbook read by "sheetdoc convert".
  input_path: excel-data/data.xlsx
  # Worksheet to read. Leave empty for the workbook's active sheet.
  sheet_name: ""
  # Cell range bounds, inclusive. Columns are letters, rows are 1-based.
  start_row: 1
  end_row: 10
  start_column: A
  end_column: E

render:
  # Document written by "sheetdoc convert".
  output_path: docx-output/extracted_data.docx
  document_title: Extracted Excel Data
  # Bold the first table row.
  first_row_is_header: true
  # Word table style applied to the rendered table.
  table_style: TableGrid

watch:
  # Drop directory monitored by "sheetdoc watch".
  watch_dir: excel-data
  # Rendered documents land here, one per workbook.
  output_dir: docx-output
  # Converted workbooks are moved here. Leave empty to keep them in place.
  processed_dir: excel-data/processed
  # Convert matching files as they arrive; false only logs detections.
  auto_process: true
  file_patterns:
    - "*.xlsx"
    - "*.xls"
    - "*.xlsm"
  # How long a file's size must hold still before it is read.
  # settle_interval: 200ms
  # settle_checks: 2
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config and create the working directories",
	Long: `Init writes sheetdoc.yaml to the current directory and creates the watch,
output, and processed directories it references. Init refuses to overwrite
an existing config.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configFileName); err == nil {
		return fmt.Errorf("%s already exists", configFileName)
	}

	// Parse the template before writing it so drift between the template and
	// the config structs surfaces here instead of on the next run.
	var cfg types.PipelineConfig
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &cfg); err != nil {
		return fmt.Errorf("config template is invalid: %w", err)
	}

	if err := os.WriteFile(configFileName, []byte(defaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", configFileName, err)
	}
	fmt.Printf("Wrote %s\n", configFileName)

	for _, dir := range []string{cfg.Watch.WatchDir, cfg.Watch.OutputDir, cfg.Watch.ProcessedDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Printf("Created %s/\n", dir)
	}
	return nil
}
