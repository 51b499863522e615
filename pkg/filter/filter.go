// Package filter narrows a property collection by optional search criteria.
// It is pure: no I/O, input slice untouched.
package filter

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Toodlepoodle/property-listings-martin/internal/model"
)

// Criteria carries the recognized query options. Empty string means the
// option is inactive; "all" is an explicit wildcard for the options that
// accept it.
type Criteria struct {
	Search    string
	Type      string
	MinPrice  string
	MaxPrice  string
	BHK       string
	Bathrooms string
	Location  string
	Facing    string
	MinArea   string
	MaxArea   string
	Furnished string
}

const wildcard = "all"

// Apply returns the properties passing every active criterion, newest first.
// Ties on creation time keep their input order.
//
// Numeric policy: when a price/area bound is active, a property whose stored
// value does not parse is excluded, and an unparseable bound excludes
// everything on that dimension.
func Apply(props []model.Property, c Criteria) []model.Property {
	out := make([]model.Property, 0, len(props))

	for _, p := range props {
		if matches(p, c) {
			out = append(out, p)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func matches(p model.Property, c Criteria) bool {
	if c.Search != "" && !textSearch(p, c.Search) {
		return false
	}

	if c.Type != "" && c.Type != wildcard && string(p.Type) != c.Type {
		return false
	}

	if c.MinPrice != "" || c.MaxPrice != "" {
		price, ok := p.PriceValue()
		if !ok {
			return false
		}
		if !withinLower(price, c.MinPrice) || !withinUpper(price, c.MaxPrice) {
			return false
		}
	}

	if c.BHK != "" && c.BHK != wildcard && !strings.Contains(p.BHK, c.BHK) {
		return false
	}

	// Skipped entirely when the property never recorded a bathroom count.
	if c.Bathrooms != "" && c.Bathrooms != wildcard {
		if p.Bathrooms != "" && !strings.Contains(p.Bathrooms, c.Bathrooms) {
			return false
		}
	}

	if c.MinArea != "" || c.MaxArea != "" {
		area, ok := p.AreaValue()
		if !ok {
			return false
		}
		if !withinLower(area, c.MinArea) || !withinUpper(area, c.MaxArea) {
			return false
		}
	}

	if c.Location != "" && !containsFold(p.Location, c.Location) {
		return false
	}

	if c.Facing != "" && c.Facing != wildcard && !containsFold(p.Facing, c.Facing) {
		return false
	}

	if c.Furnished != "" && c.Furnished != wildcard && !containsFold(p.Furnished, c.Furnished) {
		return false
	}

	return true
}

// textSearch is a case-insensitive OR over the free-text fields.
func textSearch(p model.Property, term string) bool {
	return containsFold(p.Title, term) ||
		containsFold(p.Location, term) ||
		containsFold(p.Description, term) ||
		containsFold(p.BHK, term) ||
		containsFold(p.Furnished, term) ||
		containsFold(p.Facing, term)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// withinLower checks value >= bound; bounds are inclusive.
func withinLower(value float64, bound string) bool {
	if bound == "" {
		return true
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(bound), 64)
	if err != nil {
		return false
	}
	return value >= b
}

func withinUpper(value float64, bound string) bool {
	if bound == "" {
		return true
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(bound), 64)
	if err != nil {
		return false
	}
	return value <= b
}
