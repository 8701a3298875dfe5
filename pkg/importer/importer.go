// Package importer re-imports interchange files produced by the CSV export,
// creating assets in a chosen collection.
package importer

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/tim-bel/AssetTracker/internal/export"
	"github.com/tim-bel/AssetTracker/internal/model"
	"github.com/tim-bel/AssetTracker/internal/store"
)

// Options configures an import run.
type Options struct {
	Collection model.Collection
	DryRun     bool // validate rows without writing
	MaxErrors  int  // abort after this many bad rows, default 50
}

// RowError describes a row that could not be imported.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Summary contains the import statistics.
type Summary struct {
	Created int        `json:"created"`
	Errors  []RowError `json:"errors,omitempty"`
	DryRun  bool       `json:"dry_run"`
}

// ImportCSV reads an exported CSV from r and creates one asset per row.
// Rows that fail validation are recorded in the summary and skipped; storage
// failures abort the import. The header must match the export header exactly.
func ImportCSV(ctx context.Context, db *sql.DB, r io.Reader, opts Options) (Summary, error) {
	summary := Summary{DryRun: opts.DryRun}

	if opts.MaxErrors == 0 {
		opts.MaxErrors = 50
	}
	if !opts.Collection.Valid() {
		return summary, fmt.Errorf("unknown collection %q", opts.Collection)
	}

	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return summary, fmt.Errorf("reading header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return summary, err
	}

	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			summary.Errors = append(summary.Errors, RowError{Row: row, Message: err.Error()})
			if len(summary.Errors) >= opts.MaxErrors {
				return summary, fmt.Errorf("aborting after %d row errors", len(summary.Errors))
			}
			continue
		}

		fields := fieldsFromRecord(record)

		if opts.DryRun {
			err = fields.Validate()
		} else {
			_, err = store.CreateAsset(ctx, db, opts.Collection, fields)
		}
		if err != nil {
			var verr *model.ValidationError
			if errors.As(err, &verr) {
				summary.Errors = append(summary.Errors, RowError{Row: row, Message: verr.Error()})
				if len(summary.Errors) >= opts.MaxErrors {
					return summary, fmt.Errorf("aborting after %d row errors", len(summary.Errors))
				}
				continue
			}
			// Storage failure: stop, nothing useful can follow.
			return summary, fmt.Errorf("importing row %d: %w", row, err)
		}

		summary.Created++
	}

	return summary, nil
}

func checkHeader(header []string) error {
	want := export.Header()
	if len(header) != len(want) {
		return fmt.Errorf("header has %d columns, want %d", len(header), len(want))
	}
	for i, name := range want {
		if header[i] != name {
			return fmt.Errorf("header column %d is %q, want %q", i+1, header[i], name)
		}
	}
	return nil
}

func fieldsFromRecord(record []string) model.Fields {
	return model.Fields{
		Name:                        record[0],
		SerialOrLicenseKey:          record[1],
		PurchaseDate:                record[2],
		WarrantyOrSubscriptionStart: record[3],
		WarrantyOrSubscriptionEnd:   record[4],
		Location:                    record[5],
		Vendor:                      record[6],
		BoughtAt:                    record[7],
		Notes:                       record[8],
	}
}
