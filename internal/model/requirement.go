package model

import "time"

// Requirement is a buyer/renter wishlist entry. Bounds are stored as text the
// way they arrive; empty or "any" means the dimension is unconstrained.
type Requirement struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`

	Type      ListingType `json:"type"`
	MinPrice  string      `json:"min_price"`
	MaxPrice  string      `json:"max_price"`
	MinArea   string      `json:"min_area"`
	MaxArea   string      `json:"max_area"`
	Location  string      `json:"location"`
	BHK       string      `json:"bhk"`
	Bathrooms string      `json:"bathrooms"`
	Furnished string      `json:"furnished"`
	Notes     string      `json:"notes"`

	CreatedBy uint      `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
