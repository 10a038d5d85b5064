// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline composes range extraction and document rendering into one
// conversion operation.
package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pdiddy/sheetdoc/internal/cellrange"
	"github.com/pdiddy/sheetdoc/internal/extract"
	"github.com/pdiddy/sheetdoc/internal/render"
	"github.com/pdiddy/sheetdoc/pkg/types"
)

// Pipeline runs extract-then-render conversions for one configuration.
type Pipeline struct {
	cfg types.PipelineConfig
}

// New returns a Pipeline using cfg for range, sheet, and layout settings.
func New(cfg types.PipelineConfig) *Pipeline {
	return &Pipeline{cfg: cfg}
}

// Run executes one conversion using the configured input and output paths
// and returns the path of the written document. Progress lines go to w.
func (p *Pipeline) Run(w io.Writer) (string, error) {
	return p.convert(p.cfg.Extraction.InputPath, p.cfg.Render.OutputPath, p.cfg.Render.DocumentTitle, w)
}

// RunForInput converts one detected workbook into outputDir. The document
// name is the input file's stem with a .docx extension, and the input stem
// is appended to the configured title so documents from different workbooks
// are distinguishable.
func (p *Pipeline) RunForInput(input, outputDir string, w io.Writer) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	output := filepath.Join(outputDir, stem+".docx")

	title := p.cfg.Render.DocumentTitle
	if title == "" {
		title = stem
	} else {
		title = title + " - " + stem
	}
	return p.convert(input, output, title, w)
}

func (p *Pipeline) convert(input, output, title string, w io.Writer) (string, error) {
	ext := p.cfg.Extraction
	r, err := cellrange.Parse(ext.StartColumn, ext.EndColumn, ext.StartRow, ext.EndRow)
	if err != nil {
		return "", err
	}

	fmt.Fprintf(w, "extracting %s from %s\n", r, input)
	table, err := extract.Read(input, ext.SheetName, r)
	if err != nil {
		return "", fmt.Errorf("extracting from %s: %w", input, err)
	}
	fmt.Fprintf(w, "extracted %d rows x %d columns\n", table.RowCount(), table.MaxWidth())

	opts := render.Options{
		Title:            title,
		FirstRowIsHeader: p.cfg.Render.FirstRowIsHeader,
		TableStyle:       p.cfg.Render.TableStyle,
		SourcePath:       input,
		RangeLabel:       r.String(),
	}
	if err := render.Write(table, output, opts); err != nil {
		return "", fmt.Errorf("rendering %s: %w", output, err)
	}
	fmt.Fprintf(w, "wrote %s\n", output)
	return output, nil
}
