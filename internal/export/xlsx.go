package export

import (
	"fmt"
	"os"

	"github.com/tealeg/xlsx/v3"

	"github.com/tim-bel/AssetTracker/internal/model"
)

// XLSX writes the assets to a new spreadsheet at path, with the same columns
// and row order as the CSV export, on a single sheet named sheetName. As with
// CSV, a failed export leaves no partial file behind.
func XLSX(path, sheetName string, assets []model.Asset) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return fmt.Errorf("adding sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, name := range Header() {
		header.AddCell().SetString(name)
	}
	for _, a := range assets {
		row := sheet.AddRow()
		for _, v := range a.Values() {
			row.AddCell().SetString(v)
		}
	}

	if err := file.Save(path); err != nil {
		os.Remove(path)
		return fmt.Errorf("saving spreadsheet: %w", err)
	}
	return nil
}
