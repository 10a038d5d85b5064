// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/sheetdoc/pkg/types"
)

// setConfigDefaults registers the built-in settings. Values from the config
// file, SHEETDOC_* environment variables, and command flags override them in
// that order.
func setConfigDefaults() {
	viper.SetDefault("extraction.input_path", "excel-data/data.xlsx")
	viper.SetDefault("extraction.sheet_name", "")
	viper.SetDefault("extraction.start_row", 1)
	viper.SetDefault("extraction.end_row", 10)
	viper.SetDefault("extraction.start_column", "A")
	viper.SetDefault("extraction.end_column", "E")

	viper.SetDefault("render.output_path", "docx-output/extracted_data.docx")
	viper.SetDefault("render.document_title", "Extracted Excel Data")
	viper.SetDefault("render.first_row_is_header", true)
	viper.SetDefault("render.table_style", "TableGrid")

	viper.SetDefault("watch.watch_dir", "excel-data")
	viper.SetDefault("watch.output_dir", "docx-output")
	viper.SetDefault("watch.processed_dir", "excel-data/processed")
	viper.SetDefault("watch.auto_process", true)
	viper.SetDefault("watch.file_patterns", []string{"*.xlsx", "*.xls", "*.xlsm"})
	viper.SetDefault("watch.settle_interval", 200*time.Millisecond)
	viper.SetDefault("watch.settle_checks", 2)
}

// pipelineConfig assembles the effective configuration from viper.
func pipelineConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Extraction: types.ExtractionConfig{
			InputPath:   viper.GetString("extraction.input_path"),
			SheetName:   viper.GetString("extraction.sheet_name"),
			StartRow:    viper.GetInt("extraction.start_row"),
			EndRow:      viper.GetInt("extraction.end_row"),
			StartColumn: viper.GetString("extraction.start_column"),
			EndColumn:   viper.GetString("extraction.end_column"),
		},
		Render: types.RenderConfig{
			OutputPath:       viper.GetString("render.output_path"),
			DocumentTitle:    viper.GetString("render.document_title"),
			FirstRowIsHeader: viper.GetBool("render.first_row_is_header"),
			TableStyle:       viper.GetString("render.table_style"),
		},
		Watch: types.WatchConfig{
			WatchDir:       viper.GetString("watch.watch_dir"),
			OutputDir:      viper.GetString("watch.output_dir"),
			ProcessedDir:   viper.GetString("watch.processed_dir"),
			AutoProcess:    viper.GetBool("watch.auto_process"),
			FilePatterns:   viper.GetStringSlice("watch.file_patterns"),
			SettleInterval: viper.GetDuration("watch.settle_interval"),
			SettleChecks:   viper.GetInt("watch.settle_checks"),
		},
	}
}
