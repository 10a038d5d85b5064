package types

import "time"

// ExtractionConfig holds the workbook selection and cell range for a conversion.
type ExtractionConfig struct {
	// InputPath is the workbook to read (e.g. "excel-data/data.xlsx").
	InputPath string `json:"input_path" yaml:"input_path"`

	// SheetName selects the worksheet. Empty means the workbook's active sheet.
	SheetName string `json:"sheet_name,omitempty" yaml:"sheet_name,omitempty"`

	// StartRow is the first row of the range, 1-based inclusive (default 1).
	StartRow int `json:"start_row" yaml:"start_row"`

	// EndRow is the last row of the range, 1-based inclusive (default 10).
	EndRow int `json:"end_row" yaml:"end_row"`

	// StartColumn is the first column of the range as letters (default "A").
	StartColumn string `json:"start_column" yaml:"start_column"`

	// EndColumn is the last column of the range as letters (default "E").
	EndColumn string `json:"end_column" yaml:"end_column"`
}

// RenderConfig holds the document output settings.
type RenderConfig struct {
	// OutputPath is the document to write (e.g. "docx-output/extracted_data.docx").
	OutputPath string `json:"output_path" yaml:"output_path"`

	// DocumentTitle is the heading placed at the top of the document.
	DocumentTitle string `json:"document_title" yaml:"document_title"`

	// FirstRowIsHeader bolds the first table row (default true).
	FirstRowIsHeader bool `json:"first_row_is_header" yaml:"first_row_is_header"`

	// TableStyle is the Word table style applied to the rendered table
	// (default "TableGrid").
	TableStyle string `json:"table_style" yaml:"table_style"`
}

// WatchConfig holds settings for the directory watcher.
type WatchConfig struct {
	// WatchDir is the drop directory monitored for workbooks.
	WatchDir string `json:"watch_dir" yaml:"watch_dir"`

	// OutputDir receives the rendered documents, one per input file.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// ProcessedDir receives input files after successful conversion.
	// Empty leaves converted files in place.
	ProcessedDir string `json:"processed_dir,omitempty" yaml:"processed_dir,omitempty"`

	// AutoProcess converts detected files immediately. When false the watcher
	// only logs detections (default true).
	AutoProcess bool `json:"auto_process" yaml:"auto_process"`

	// FilePatterns lists the glob patterns a file name must match, compared
	// case-insensitively (default "*.xlsx", "*.xls", "*.xlsm").
	FilePatterns []string `json:"file_patterns" yaml:"file_patterns"`

	// SettleInterval is the delay between file size polls while waiting for a
	// file to finish being written (default 200ms).
	SettleInterval time.Duration `json:"settle_interval" yaml:"settle_interval"`

	// SettleChecks is the number of consecutive unchanged size polls required
	// before a file counts as complete (default 2).
	SettleChecks int `json:"settle_checks" yaml:"settle_checks"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Render     RenderConfig     `json:"render" yaml:"render"`
	Watch      WatchConfig      `json:"watch" yaml:"watch"`
}
