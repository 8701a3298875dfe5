package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tim-bel/AssetTracker/internal/model"
)

func TestWriteCSVRoundTrip(t *testing.T) {
	assets := []model.Asset{
		{ID: 1, Fields: model.Fields{
			Name:               "Laptop, 15 inch",
			SerialOrLicenseKey: `SN"42"`,
			PurchaseDate:       "2024-03-15",
			Location:           "Office 2",
			Vendor:             "Dell",
			Notes:              "line one\nline two",
		}},
		{ID: 2, Fields: model.Fields{Name: "HP Printer", Vendor: "HP"}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, assets))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Header(), records[0])
	for i, a := range assets {
		assert.Equal(t, a.Values(), records[i+1], "row %d must reproduce the original values", i+1)
	}
}

func TestWriteCSVEmptyFieldsAreEmptyCells(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []model.Asset{
		{ID: 7, Fields: model.Fields{Name: "Bare"}},
	}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	row := records[1]
	assert.Equal(t, "Bare", row[0])
	for i, cell := range row[1:] {
		assert.Emptyf(t, cell, "column %s should be an empty cell", Header()[i+1])
	}
}

func TestCSVExcludesID(t *testing.T) {
	assert.NotContains(t, Header(), "id")
}

func TestCSVWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.csv")

	require.NoError(t, CSV(path, []model.Asset{
		{ID: 1, Fields: model.Fields{Name: "Laptop"}},
	}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestCSVUnwritableDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "assets.csv")

	err := CSV(path, nil)
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no partial file should be left behind")
}
