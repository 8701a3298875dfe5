package query

import (
	"sort"
	"time"

	"github.com/tim-bel/AssetTracker/internal/model"
)

// UnassignedLocation is the bucket name for assets without a location in the
// location summary.
const UnassignedLocation = "Unassigned"

// ExpiredWarranties returns the assets whose warranty or subscription end date
// is set and falls on or before the given day, in input order.
func ExpiredWarranties(assets []model.Asset, on time.Time) []model.Asset {
	cutoff := on.Format(model.DateLayout)

	var expired []model.Asset
	for _, a := range assets {
		// ISO dates compare correctly as strings.
		if a.WarrantyOrSubscriptionEnd != "" && a.WarrantyOrSubscriptionEnd <= cutoff {
			expired = append(expired, a)
		}
	}
	return expired
}

// MissingLocation returns the assets with no location set, in input order.
func MissingLocation(assets []model.Asset) []model.Asset {
	var missing []model.Asset
	for _, a := range assets {
		if a.Location == "" {
			missing = append(missing, a)
		}
	}
	return missing
}

// LocationCount is one row of the location summary.
type LocationCount struct {
	Location string
	Count    int
}

// CountByLocation groups the assets by location, counting assets without a
// location under UnassignedLocation. The result is ordered by descending
// count, then by location name.
func CountByLocation(assets []model.Asset) []LocationCount {
	counts := make(map[string]int)
	for _, a := range assets {
		loc := a.Location
		if loc == "" {
			loc = UnassignedLocation
		}
		counts[loc]++
	}

	summary := make([]LocationCount, 0, len(counts))
	for loc, n := range counts {
		summary = append(summary, LocationCount{Location: loc, Count: n})
	}
	sort.Slice(summary, func(i, j int) bool {
		if summary[i].Count != summary[j].Count {
			return summary[i].Count > summary[j].Count
		}
		return summary[i].Location < summary[j].Location
	})
	return summary
}
