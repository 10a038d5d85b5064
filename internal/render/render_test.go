// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/pdiddy/sheetdoc/pkg/types"
)

// Word wraps attributes or self-closes these elements, so a bare prefix
// match would also hit w:trPr, w:body, and friends.
var (
	rowRe    = regexp.MustCompile(`<w:tr[ >]`)
	cellRe   = regexp.MustCompile(`<w:tc[ >]`)
	boldRe   = regexp.MustCompile(`<w:b[ />]`)
	italicRe = regexp.MustCompile(`<w:i[ />]`)
)

// readDocumentXML pulls word/document.xml out of a rendered .docx archive.
func readDocumentXML(t *testing.T, path string) string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer zr.Close()
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatal(err)
		}
		return string(data)
	}
	t.Fatalf("word/document.xml not found in %s", path)
	return ""
}

func sampleTable() *types.Table {
	return &types.Table{Rows: [][]types.CellValue{
		{types.StringCell("Name"), types.StringCell("Qty"), types.StringCell("Price")},
		{types.StringCell("Widget"), types.NumberCell(12), types.NumberCell(9.99)},
		{types.StringCell("Gadget"), types.NumberCell(3), types.BoolCell(true)},
	}}
}

func TestWriteDocumentLayout(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.docx")
	opts := Options{
		Title:            "Quarterly Inventory",
		FirstRowIsHeader: true,
		SourcePath:       filepath.Join("excel-data", "data.xlsx"),
		RangeLabel:       "A1:C3",
	}
	if err := Write(sampleTable(), out, opts); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	xml := readDocumentXML(t, out)

	if !strings.Contains(xml, "Quarterly Inventory") {
		t.Error("document should contain the title")
	}
	if !strings.Contains(xml, "Source: data.xlsx") {
		t.Error("document should contain the source note")
	}
	if !strings.Contains(xml, "Range: A1:C3") {
		t.Error("document should contain the range note")
	}
	if len(italicRe.FindAllString(xml, -1)) == 0 {
		t.Error("provenance notes should be italic")
	}
	if got := len(rowRe.FindAllString(xml, -1)); got != 3 {
		t.Errorf("table rows = %d, want 3", got)
	}
	if got := len(cellRe.FindAllString(xml, -1)); got != 9 {
		t.Errorf("table cells = %d, want 9", got)
	}
	for _, want := range []string{"Widget", "12", "9.99", "TRUE"} {
		if !strings.Contains(xml, want) {
			t.Errorf("document should contain cell text %q", want)
		}
	}
}

func TestWriteHeaderBolding(t *testing.T) {
	dir := t.TempDir()

	withHeader := filepath.Join(dir, "with.docx")
	if err := Write(sampleTable(), withHeader, Options{FirstRowIsHeader: true}); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if len(boldRe.FindAllString(readDocumentXML(t, withHeader), -1)) == 0 {
		t.Error("header row cells should be bold")
	}

	without := filepath.Join(dir, "without.docx")
	if err := Write(sampleTable(), without, Options{FirstRowIsHeader: false}); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if n := len(boldRe.FindAllString(readDocumentXML(t, without), -1)); n != 0 {
		t.Errorf("found %d bold runs, want none when the header flag is off", n)
	}
}

func TestWritePadsShortRows(t *testing.T) {
	table := &types.Table{Rows: [][]types.CellValue{
		{types.StringCell("a"), types.StringCell("b"), types.StringCell("c")},
		{types.StringCell("d")},
	}}
	out := filepath.Join(t.TempDir(), "ragged.docx")
	if err := Write(table, out, Options{}); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	xml := readDocumentXML(t, out)
	if got := len(rowRe.FindAllString(xml, -1)); got != 2 {
		t.Errorf("table rows = %d, want 2", got)
	}
	// The short row is padded with empty cells to the widest row's width.
	if got := len(cellRe.FindAllString(xml, -1)); got != 6 {
		t.Errorf("table cells = %d, want 6", got)
	}
}

func TestWriteTableStyle(t *testing.T) {
	dir := t.TempDir()

	styled := filepath.Join(dir, "styled.docx")
	if err := Write(sampleTable(), styled, Options{TableStyle: "LightShading"}); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !strings.Contains(readDocumentXML(t, styled), "LightShading") {
		t.Error("document should reference the configured table style")
	}

	// Empty style falls back to the default.
	plain := filepath.Join(dir, "plain.docx")
	if err := Write(sampleTable(), plain, Options{}); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !strings.Contains(readDocumentXML(t, plain), DefaultTableStyle) {
		t.Errorf("document should reference %s", DefaultTableStyle)
	}
}

func TestWriteDeterministic(t *testing.T) {
	dir := t.TempDir()
	opts := Options{Title: "Same", FirstRowIsHeader: true, RangeLabel: "A1:C3"}

	first := filepath.Join(dir, "first.docx")
	if err := Write(sampleTable(), first, opts); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	second := filepath.Join(dir, "second.docx")
	if err := Write(sampleTable(), second, opts); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	if readDocumentXML(t, first) != readDocumentXML(t, second) {
		t.Error("identical input should produce identical document content")
	}
}

func TestWriteOverwritesExisting(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.docx")
	if err := Write(sampleTable(), out, Options{Title: "First"}); err != nil {
		t.Fatalf("first Write error: %v", err)
	}
	if err := Write(sampleTable(), out, Options{Title: "Second"}); err != nil {
		t.Fatalf("second Write error: %v", err)
	}

	xml := readDocumentXML(t, out)
	if !strings.Contains(xml, "Second") {
		t.Error("second write should replace the document")
	}
	if strings.Contains(xml, "First") {
		t.Error("no content from the first write should remain")
	}
}

func TestWriteCreatesParentDirs(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "deeper", "report.docx")
	if err := Write(sampleTable(), out, Options{}); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("expected document at %s: %v", out, err)
	}
}

func TestWriteFailsWhenDirIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "taken")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := Write(sampleTable(), filepath.Join(blocker, "report.docx"), Options{})
	if !errors.Is(err, ErrWriteFailed) {
		t.Errorf("error = %v, want ErrWriteFailed", err)
	}
}

func TestWriteEmptyTable(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty.docx")
	if err := Write(&types.Table{}, out, Options{Title: "Nothing"}); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	xml := readDocumentXML(t, out)
	if strings.Contains(xml, "<w:tbl>") {
		t.Error("empty table should not produce a table element")
	}
	if !strings.Contains(xml, "Nothing") {
		t.Error("title should still be rendered")
	}
}
