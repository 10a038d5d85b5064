// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render writes an extracted table to a Word document.
package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/pdiddy/sheetdoc/pkg/types"
)

// ErrWriteFailed indicates the document could not be written to its
// destination.
var ErrWriteFailed = errors.New("document write failed")

// DefaultTableStyle is the Word table style applied when none is configured.
const DefaultTableStyle = "TableGrid"

// Options control how a table is laid out in the document.
type Options struct {
	// Title becomes the document heading. Empty omits the heading.
	Title string

	// FirstRowIsHeader renders the first table row in bold.
	FirstRowIsHeader bool

	// TableStyle is the Word style applied to the table
	// (default DefaultTableStyle).
	TableStyle string

	// SourcePath and RangeLabel describe where the data came from. When set
	// they appear as an italic provenance note under the heading.
	SourcePath string
	RangeLabel string
}

// Write renders table into a .docx file at outputPath, creating parent
// directories as needed. The document is assembled in memory and moved into
// place with a rename, so a failed write never leaves a partial document at
// outputPath. Rendering the same table with the same options produces the
// same document content.
func Write(table *types.Table, outputPath string, opts Options) error {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrWriteFailed, dir, err)
	}

	doc, err := buildDocument(table, opts)
	if err != nil {
		return fmt.Errorf("assembling document: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".sheetdoc-*.docx")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	if err := doc.SaveTo(tmpPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, outputPath, err)
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, outputPath, err)
	}
	return nil
}

// buildDocument lays out the heading, the provenance note, and the table.
func buildDocument(table *types.Table, opts Options) (*docx.RootDoc, error) {
	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}

	if opts.Title != "" {
		if _, err := doc.AddHeading(opts.Title, 0); err != nil {
			return nil, fmt.Errorf("adding heading: %w", err)
		}
	}

	if opts.SourcePath != "" {
		p := doc.AddParagraph("")
		p.AddText("Source: " + filepath.Base(opts.SourcePath)).Italic(true)
	}
	if opts.RangeLabel != "" {
		p := doc.AddParagraph("")
		p.AddText("Range: " + opts.RangeLabel).Italic(true)
	}

	width := table.MaxWidth()
	if table.RowCount() == 0 || width == 0 {
		return doc, nil
	}

	style := opts.TableStyle
	if style == "" {
		style = DefaultTableStyle
	}

	tbl := doc.AddTable()
	tbl.Style(style)
	for i, row := range table.Rows {
		tr := tbl.AddRow()
		for j := 0; j < width; j++ {
			var v types.CellValue
			if j < len(row) {
				v = row[j]
			}
			cell := tr.AddCell()
			text := v.Display()
			if i == 0 && opts.FirstRowIsHeader && text != "" {
				cell.AddParagraph("").AddText(text).Bold(true)
				continue
			}
			cell.AddParagraph(text)
		}
	}
	return doc, nil
}
