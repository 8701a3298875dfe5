// Package export serializes asset listings to interchange files for
// spreadsheet consumption. Exports are a pure read of their input: they never
// touch the store. The id column is deliberately excluded.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/tim-bel/AssetTracker/internal/model"
)

// Header returns the column header row shared by the CSV and XLSX exports.
func Header() []string {
	return model.ColumnNames()
}

// WriteCSV writes the header row followed by one row per asset, in input
// order, with RFC 4180 quoting for embedded delimiters and newlines. Absent
// fields are written as empty cells.
func WriteCSV(w io.Writer, assets []model.Asset) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, a := range assets {
		if err := cw.Write(a.Values()); err != nil {
			return fmt.Errorf("writing asset row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing export: %w", err)
	}
	return nil
}

// CSV writes the assets to a new file at path. On any failure the partial
// file is removed, so a failed export never leaves an artifact that looks
// complete.
func CSV(path string, assets []model.Asset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}

	if err := WriteCSV(f, assets); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("closing export file: %w", err)
	}
	return nil
}
