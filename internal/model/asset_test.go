package model

import (
	"errors"
	"testing"
)

func TestValidateRequiresName(t *testing.T) {
	err := Fields{Vendor: "Dell"}.Validate()

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "Name" {
		t.Errorf("expected Name to fail, got %s", verr.Field)
	}
	if verr.Rule != "required" {
		t.Errorf("expected required rule, got %s", verr.Rule)
	}
}

func TestValidateDates(t *testing.T) {
	cases := []struct {
		date string
		ok   bool
	}{
		{"", true},
		{"2024-03-15", true},
		{"2024-3-5", false},
		{"15.03.2024", false},
		{"not a date", false},
	}

	for _, c := range cases {
		err := Fields{Name: "Laptop", PurchaseDate: c.date}.Validate()
		if c.ok && err != nil {
			t.Errorf("date %q: unexpected error %v", c.date, err)
		}
		if !c.ok && err == nil {
			t.Errorf("date %q: expected a validation error", c.date)
		}
	}
}

func TestValuesMatchColumnOrder(t *testing.T) {
	f := Fields{
		Name:                        "n",
		SerialOrLicenseKey:          "s",
		PurchaseDate:                "2024-01-01",
		WarrantyOrSubscriptionStart: "2024-01-02",
		WarrantyOrSubscriptionEnd:   "2024-01-03",
		Location:                    "l",
		Vendor:                      "v",
		BoughtAt:                    "b",
		Notes:                       "x",
	}

	values := f.Values()
	if len(values) != len(ColumnNames()) {
		t.Fatalf("Values has %d entries, ColumnNames has %d", len(values), len(ColumnNames()))
	}

	want := []string{"n", "s", "2024-01-01", "2024-01-02", "2024-01-03", "l", "v", "b", "x"}
	for i, v := range values {
		if v != want[i] {
			t.Errorf("Values[%d] (%s) = %q, want %q", i, ColumnNames()[i], v, want[i])
		}
	}
}
