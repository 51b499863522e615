// Package match decides property/requirement compatibility and fans out
// alert notifications for new matches.
package match

import (
	"strconv"
	"strings"

	"github.com/Toodlepoodle/property-listings-martin/internal/model"
)

// unconstrained reports whether a requirement field leaves its dimension open.
func unconstrained(v string) bool {
	return v == "" || strings.EqualFold(v, "any")
}

// Matches reports whether the property satisfies the requirement. Checks run
// in a fixed order and stop at the first failure: type, price bounds, area
// bounds, location, BHK, bathrooms. A dimension the requirement leaves open
// never excludes. Pure function, deterministic for a given input pair.
//
// Numeric policy matches the filter engine: an active bound against an
// unparseable stored value (or an unparseable bound) fails the check.
func Matches(p model.Property, r model.Requirement) bool {
	if r.Type != model.ListingAny && r.Type != "" && p.Type != r.Type {
		return false
	}

	if r.MinPrice != "" {
		price, ok := p.PriceValue()
		if !ok || !atLeast(price, r.MinPrice) {
			return false
		}
	}
	if r.MaxPrice != "" {
		price, ok := p.PriceValue()
		if !ok || !atMost(price, r.MaxPrice) {
			return false
		}
	}

	if r.MinArea != "" {
		area, ok := p.AreaValue()
		if !ok || !atLeast(area, r.MinArea) {
			return false
		}
	}
	if r.MaxArea != "" {
		area, ok := p.AreaValue()
		if !ok || !atMost(area, r.MaxArea) {
			return false
		}
	}

	if !unconstrained(r.Location) {
		if !strings.Contains(strings.ToLower(p.Location), strings.ToLower(r.Location)) {
			return false
		}
	}

	if !unconstrained(r.BHK) {
		if !strings.Contains(p.BHK, r.BHK) {
			return false
		}
	}

	if !unconstrained(r.Bathrooms) {
		if p.Bathrooms != r.Bathrooms {
			return false
		}
	}

	return true
}

func atLeast(value float64, bound string) bool {
	b, err := strconv.ParseFloat(strings.TrimSpace(bound), 64)
	if err != nil {
		return false
	}
	return value >= b
}

func atMost(value float64, bound string) bool {
	b, err := strconv.ParseFloat(strings.TrimSpace(bound), 64)
	if err != nil {
		return false
	}
	return value <= b
}
