package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tim-bel/AssetTracker/internal/model"
)

const fieldColumns = `name, serial_or_license_key, purchase_date,
	warranty_or_subscription_start, warranty_or_subscription_end,
	location, vendor, bought_at, notes`

// tableFor maps a collection to its table name. The mapping is fixed; user
// input never reaches the SQL text.
func tableFor(c model.Collection) (string, error) {
	switch c {
	case model.Hardware:
		return "hardware_assets", nil
	case model.Software:
		return "software_assets", nil
	default:
		return "", fmt.Errorf("unknown collection %q", c)
	}
}

// nullable converts the empty string to NULL so that absent fields round-trip
// as absent.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// CreateAsset inserts a new asset into the collection and returns it with its
// store-assigned id. The write is durable before it returns.
func CreateAsset(ctx context.Context, db *sql.DB, c model.Collection, f model.Fields) (*model.Asset, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	table, err := tableFor(c)
	if err != nil {
		return nil, err
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO `+table+` (`+fieldColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.Name, nullable(f.SerialOrLicenseKey), nullable(f.PurchaseDate),
		nullable(f.WarrantyOrSubscriptionStart), nullable(f.WarrantyOrSubscriptionEnd),
		nullable(f.Location), nullable(f.Vendor), nullable(f.BoughtAt), nullable(f.Notes),
	)
	if err != nil {
		return nil, storageErr("creating asset", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, storageErr("getting asset id", err)
	}

	return GetAsset(ctx, db, c, id)
}

// GetAsset returns an asset by id, or ErrNotFound.
func GetAsset(ctx context.Context, db *sql.DB, c model.Collection, id int64) (*model.Asset, error) {
	table, err := tableFor(c)
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx,
		`SELECT id, `+fieldColumns+` FROM `+table+` WHERE id = ?`, id,
	)

	asset, err := scanAsset(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storageErr("getting asset", err)
	}
	return asset, nil
}

// ListAssets returns every asset in the collection, ordered by id ascending.
// Each call re-reads current state; the returned slice is a copy that callers
// may mutate freely.
func ListAssets(ctx context.Context, db *sql.DB, c model.Collection) ([]model.Asset, error) {
	table, err := tableFor(c)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, `+fieldColumns+` FROM `+table+` ORDER BY id`,
	)
	if err != nil {
		return nil, storageErr("listing assets", err)
	}
	defer rows.Close()

	var assets []model.Asset
	for rows.Next() {
		asset, err := scanAsset(rows.Scan)
		if err != nil {
			return nil, storageErr("scanning asset", err)
		}
		assets = append(assets, *asset)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("listing assets", err)
	}
	return assets, nil
}

// UpdateAsset overwrites every mutable field of the asset and returns the new
// state. Partial updates are not supported; callers supply the full field set.
// The id and the collection never change.
func UpdateAsset(ctx context.Context, db *sql.DB, c model.Collection, id int64, f model.Fields) (*model.Asset, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	table, err := tableFor(c)
	if err != nil {
		return nil, err
	}

	result, err := db.ExecContext(ctx,
		`UPDATE `+table+` SET
			name = ?, serial_or_license_key = ?, purchase_date = ?,
			warranty_or_subscription_start = ?, warranty_or_subscription_end = ?,
			location = ?, vendor = ?, bought_at = ?, notes = ?
		 WHERE id = ?`,
		f.Name, nullable(f.SerialOrLicenseKey), nullable(f.PurchaseDate),
		nullable(f.WarrantyOrSubscriptionStart), nullable(f.WarrantyOrSubscriptionEnd),
		nullable(f.Location), nullable(f.Vendor), nullable(f.BoughtAt), nullable(f.Notes),
		id,
	)
	if err != nil {
		return nil, storageErr("updating asset", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, storageErr("updating asset", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return GetAsset(ctx, db, c, id)
}

// DeleteAsset removes the asset permanently. There is no soft delete: a second
// delete of the same id fails with ErrNotFound.
func DeleteAsset(ctx context.Context, db *sql.DB, c model.Collection, id int64) error {
	table, err := tableFor(c)
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return storageErr("deleting asset", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storageErr("deleting asset", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// scanAsset scans one row into an asset, converting NULL columns back to the
// empty string.
func scanAsset(scan func(...any) error) (*model.Asset, error) {
	asset := &model.Asset{}
	var serial, purchase, warrStart, warrEnd, location, vendor, boughtAt, notes sql.NullString

	err := scan(&asset.ID, &asset.Name, &serial, &purchase, &warrStart, &warrEnd,
		&location, &vendor, &boughtAt, &notes)
	if err != nil {
		return nil, err
	}

	asset.SerialOrLicenseKey = serial.String
	asset.PurchaseDate = purchase.String
	asset.WarrantyOrSubscriptionStart = warrStart.String
	asset.WarrantyOrSubscriptionEnd = warrEnd.String
	asset.Location = location.String
	asset.Vendor = vendor.String
	asset.BoughtAt = boughtAt.String
	asset.Notes = notes.String
	return asset, nil
}
