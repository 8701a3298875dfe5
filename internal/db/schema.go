package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema: one table per collection, structurally
// identical. AUTOINCREMENT keeps ids from ever being reused after a delete.
const schema = `
CREATE TABLE IF NOT EXISTS hardware_assets (
    id                             INTEGER PRIMARY KEY AUTOINCREMENT,
    name                           TEXT NOT NULL,
    serial_or_license_key          TEXT,
    purchase_date                  TEXT,
    warranty_or_subscription_start TEXT,
    warranty_or_subscription_end   TEXT,
    location                       TEXT,
    vendor                         TEXT,
    bought_at                      TEXT,
    notes                          TEXT
);

CREATE TABLE IF NOT EXISTS software_assets (
    id                             INTEGER PRIMARY KEY AUTOINCREMENT,
    name                           TEXT NOT NULL,
    serial_or_license_key          TEXT,
    purchase_date                  TEXT,
    warranty_or_subscription_start TEXT,
    warranty_or_subscription_end   TEXT,
    location                       TEXT,
    vendor                         TEXT,
    bought_at                      TEXT,
    notes                          TEXT
);
`

// EnsureSchema creates both asset tables if they don't already exist. It is
// idempotent: running it against an initialized database leaves existing data
// untouched.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
