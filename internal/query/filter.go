package query

import (
	"strings"

	"github.com/tim-bel/AssetTracker/internal/model"
)

// Filter returns the assets whose fields contain term as a case-insensitive
// substring, preserving the input order. An empty term matches everything.
// Dates are compared in their displayed YYYY-MM-DD form. Filter never touches
// storage: it is meant to run on every keystroke over an already-fetched
// listing.
func Filter(assets []model.Asset, term string) []model.Asset {
	if term == "" {
		return assets
	}

	needle := strings.ToLower(term)
	var matched []model.Asset
	for _, a := range assets {
		if matches(a, needle) {
			matched = append(matched, a)
		}
	}
	return matched
}

func matches(a model.Asset, needle string) bool {
	for _, v := range a.Values() {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}
