package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Exporter writes normalized rows with a fixed column prefix. Keys
// discovered outside the canonical list are appended as overflow
// columns in first-seen order, so the header is the union of the
// canonical schema and everything the API actually returned.
type Exporter struct {
	columns []string
	known   map[string]struct{}
}

// NewExporter builds an Exporter with the given canonical column order.
func NewExporter(canonical []string) *Exporter {
	x := &Exporter{known: make(map[string]struct{}, len(canonical))}
	for _, col := range canonical {
		x.columns = append(x.columns, col)
		x.known[col] = struct{}{}
	}
	return x
}

// Extend appends any unseen keys as overflow columns, keeping their
// discovery order.
func (x *Exporter) Extend(keys []string) {
	for _, key := range keys {
		if _, ok := x.known[key]; ok {
			continue
		}
		x.columns = append(x.columns, key)
		x.known[key] = struct{}{}
	}
}

// Columns returns the current header, canonical columns first.
func (x *Exporter) Columns() []string {
	return x.columns
}

// WriteFile creates the destination (and its directory when missing) and
// writes a UTF-8 BOM, the header, then one record per row. Spreadsheet
// tools need the BOM to pick the right encoding. Row keys absent from
// the header are ignored; zero rows still produce a header-only file.
func (x *Exporter) WriteFile(filename string, rows []Row) error {
	if !strings.HasSuffix(filename, ".csv") {
		filename = filename + ".csv"
	}
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating csv file: %w", err)
	}

	if _, err := file.Write(utf8BOM); err != nil {
		_ = file.Close()
		return fmt.Errorf("writing BOM: %w", err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(x.columns); err != nil {
		_ = file.Close()
		return fmt.Errorf("writing header: %w", err)
	}

	record := make([]string, len(x.columns))
	for _, row := range rows {
		for i, col := range x.columns {
			record[i] = row[col]
		}
		if err := writer.Write(record); err != nil {
			_ = file.Close()
			return fmt.Errorf("writing record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = file.Close()
		return fmt.Errorf("flushing csv: %w", err)
	}
	return file.Close()
}
