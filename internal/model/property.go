package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// ListingType is the property market segment. Price units follow the type:
// crore for sale listings, lakh per month for rent listings.
type ListingType string

const (
	ListingSale ListingType = "sale"
	ListingRent ListingType = "rent"

	// ListingAny is only meaningful on requirements and search criteria,
	// never stored on a property.
	ListingAny ListingType = "any"
)

func (t ListingType) Valid() bool {
	return t == ListingSale || t == ListingRent
}

type Property struct {
	ID        uint        `json:"id"`
	Title     string      `json:"title"`
	Slug      string      `json:"slug"`
	Type      ListingType `json:"type"`
	BHK       string      `json:"bhk"`
	Bathrooms string      `json:"bathrooms"`
	Area      string      `json:"area"`
	Price     string      `json:"price"`
	Location  string      `json:"location"`
	Facing    string      `json:"facing"`
	Furnished string      `json:"furnished"`
	Parking   string      `json:"parking"`

	Description string `json:"description"`
	Contact     string `json:"contact"`

	Images []string `json:"images"`
	Videos []string `json:"videos"`

	CreatedBy uint       `json:"created_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// PriceValue parses the stored price text. ok is false when the field does
// not hold a number; callers decide what that means for them.
func (p Property) PriceValue() (float64, bool) {
	return parseDecimal(p.Price)
}

// AreaValue parses the stored area text.
func (p Property) AreaValue() (float64, bool) {
	return parseDecimal(p.Area)
}

// MakeSlug derives the share-URL slug from the title.
func (p Property) MakeSlug() string {
	return slug.Make(p.Title)
}

func parseDecimal(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
