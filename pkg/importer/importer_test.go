package importer

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tim-bel/AssetTracker/internal/db"
	"github.com/tim-bel/AssetTracker/internal/export"
	"github.com/tim-bel/AssetTracker/internal/model"
	"github.com/tim-bel/AssetTracker/internal/store"
)

func TestImportCSVRoundTrip(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	original := []model.Fields{
		{Name: "Dell Laptop", Vendor: "Dell", PurchaseDate: "2024-03-15", Notes: "has, comma\nand newline"},
		{Name: "HP Printer", Location: "Office 1"},
	}
	for _, f := range original {
		_, err := store.CreateAsset(ctx, database, model.Hardware, f)
		require.NoError(t, err)
	}

	assets, err := store.ListAssets(ctx, database, model.Hardware)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, assets))

	// Re-import into the other collection and compare field-for-field.
	summary, err := ImportCSV(ctx, database, &buf, Options{Collection: model.Software})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Created)
	assert.Empty(t, summary.Errors)

	imported, err := store.ListAssets(ctx, database, model.Software)
	require.NoError(t, err)
	require.Len(t, imported, 2)
	for i, f := range original {
		assert.Equal(t, f, imported[i].Fields)
	}
}

func TestImportCSVSkipsInvalidRows(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	input := strings.Join([]string{
		strings.Join(export.Header(), ","),
		"Good,,,,,,,,",
		",,,,,,,,no name here",
		"Also Good,,,,,,,,",
		"",
	}, "\n")

	summary, err := ImportCSV(ctx, database, strings.NewReader(input), Options{Collection: model.Hardware})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Created)
	require.Len(t, summary.Errors, 1)
	assert.Equal(t, 3, summary.Errors[0].Row)

	assets, err := store.ListAssets(ctx, database, model.Hardware)
	require.NoError(t, err)
	assert.Len(t, assets, 2)
}

func TestImportCSVDryRun(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	input := strings.Join([]string{
		strings.Join(export.Header(), ","),
		"Laptop,,,,,,,,",
	}, "\n")

	summary, err := ImportCSV(ctx, database, strings.NewReader(input), Options{
		Collection: model.Hardware,
		DryRun:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
	assert.True(t, summary.DryRun)

	assets, err := store.ListAssets(ctx, database, model.Hardware)
	require.NoError(t, err)
	assert.Empty(t, assets, "dry run must not write")
}

func TestImportCSVRejectsForeignHeader(t *testing.T) {
	database := db.NewTestDB(t)

	input := "id,name,price\n1,Laptop,99\n"
	_, err := ImportCSV(context.Background(), database, strings.NewReader(input), Options{Collection: model.Hardware})
	require.Error(t, err)
}
