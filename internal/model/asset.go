package model

// Collection identifies one of the two asset tables. An asset belongs to a
// single collection for its entire lifetime; there is no move operation.
type Collection string

const (
	Hardware Collection = "hardware"
	Software Collection = "software"
)

// Valid reports whether c names a known collection.
func (c Collection) Valid() bool {
	return c == Hardware || c == Software
}

// DateLayout is the textual form of all asset dates, both in storage and in
// exports.
const DateLayout = "2006-01-02"

// Fields holds every caller-settable attribute of an asset. The empty string
// means the field is absent; it is persisted as NULL.
type Fields struct {
	Name                        string `json:"name" validate:"required"`
	SerialOrLicenseKey          string `json:"serial_or_license_key,omitempty"`
	PurchaseDate                string `json:"purchase_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	WarrantyOrSubscriptionStart string `json:"warranty_or_subscription_start,omitempty" validate:"omitempty,datetime=2006-01-02"`
	WarrantyOrSubscriptionEnd   string `json:"warranty_or_subscription_end,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Location                    string `json:"location,omitempty"`
	Vendor                      string `json:"vendor,omitempty"`
	BoughtAt                    string `json:"bought_at,omitempty"`
	Notes                       string `json:"notes,omitempty"`
}

// Asset represents a tracked hardware or software item.
type Asset struct {
	ID int64 `json:"id"`
	Fields
}

// Values returns the field values in their canonical order: name, serial or
// license key, the three dates, location, vendor, bought at, notes. Search
// and export both rely on this order.
func (f Fields) Values() []string {
	return []string{
		f.Name,
		f.SerialOrLicenseKey,
		f.PurchaseDate,
		f.WarrantyOrSubscriptionStart,
		f.WarrantyOrSubscriptionEnd,
		f.Location,
		f.Vendor,
		f.BoughtAt,
		f.Notes,
	}
}

// ColumnNames returns the column names matching the order of Values.
func ColumnNames() []string {
	return []string{
		"name",
		"serial_or_license_key",
		"purchase_date",
		"warranty_or_subscription_start",
		"warranty_or_subscription_end",
		"location",
		"vendor",
		"bought_at",
		"notes",
	}
}
