package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Toodlepoodle/property-listings-martin/internal/model"
)

func sampleProperties() []model.Property {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return []model.Property{
		{
			ID: 1, Title: "IDEB Springfield Penthouse", Type: model.ListingSale,
			BHK: "4BHK", Bathrooms: "4", Area: "2554", Price: "3.45",
			Location: "Sarjapur Road", Facing: "West", Furnished: "Semi Furnished",
			Description: "Terrace penthouse", CreatedAt: base,
		},
		{
			ID: 2, Title: "Modern Apartment Koramangala", Type: model.ListingRent,
			BHK: "2BHK", Bathrooms: "2", Area: "1200", Price: "0.45",
			Location: "Koramangala 4th Block", Facing: "North", Furnished: "Fully Furnished",
			Description: "Near metro", CreatedAt: base.Add(48 * time.Hour),
		},
		{
			ID: 3, Title: "Luxury Villa Whitefield", Type: model.ListingSale,
			BHK: "5BHK", Bathrooms: "5", Area: "3500", Price: "6.75",
			Location: "Whitefield ITPL Road", Facing: "East", Furnished: "Semi Furnished",
			Description: "Garden villa", CreatedAt: base.Add(24 * time.Hour),
		},
	}
}

func ids(props []model.Property) []uint {
	out := make([]uint, len(props))
	for i, p := range props {
		out[i] = p.ID
	}
	return out
}

func TestApply_NoCriteriaReturnsAllNewestFirst(t *testing.T) {
	got := Apply(sampleProperties(), Criteria{})
	assert.Equal(t, []uint{2, 3, 1}, ids(got))
}

func TestApply_StableOrderForEqualTimestamps(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	props := []model.Property{
		{ID: 10, CreatedAt: ts},
		{ID: 11, CreatedAt: ts},
		{ID: 12, CreatedAt: ts},
	}
	got := Apply(props, Criteria{})
	assert.Equal(t, []uint{10, 11, 12}, ids(got))
}

func TestApply_SearchMatchesAcrossFields(t *testing.T) {
	props := sampleProperties()

	cases := map[string][]uint{
		"whitefield": {3},       // location
		"penthouse":  {1},       // title and description
		"2bhk":       {2},       // bhk label
		"semi":       {3, 1},    // furnished, two hits newest first
		"east":       {3},       // facing
		"metro":      {2},       // description
		"nothing":    {},        // no hits
		"":           {2, 3, 1}, // inactive
	}
	for term, want := range cases {
		got := Apply(props, Criteria{Search: term})
		assert.Equal(t, want, ids(got), "search=%q", term)
	}
}

func TestApply_TypeFilterWithWildcard(t *testing.T) {
	props := sampleProperties()

	assert.Equal(t, []uint{2}, ids(Apply(props, Criteria{Type: "rent"})))
	assert.Equal(t, []uint{3, 1}, ids(Apply(props, Criteria{Type: "sale"})))
	assert.Equal(t, []uint{2, 3, 1}, ids(Apply(props, Criteria{Type: "all"})))
}

func TestApply_PriceBoundsAreInclusive(t *testing.T) {
	props := []model.Property{
		{ID: 1, Price: "0.45"},
	}

	assert.Len(t, Apply(props, Criteria{MinPrice: "0.45"}), 1)
	assert.Len(t, Apply(props, Criteria{MaxPrice: "0.45"}), 1)
	assert.Len(t, Apply(props, Criteria{MinPrice: "0.46"}), 0)
	assert.Len(t, Apply(props, Criteria{MaxPrice: "0.44"}), 0)
}

func TestApply_AreaBoundsAreInclusive(t *testing.T) {
	props := []model.Property{
		{ID: 1, Area: "1200"},
	}

	assert.Len(t, Apply(props, Criteria{MinArea: "1200", MaxArea: "1200"}), 1)
	assert.Len(t, Apply(props, Criteria{MinArea: "1201"}), 0)
	assert.Len(t, Apply(props, Criteria{MaxArea: "1199"}), 0)
}

func TestApply_UnparseableNumbersExclude(t *testing.T) {
	props := []model.Property{
		{ID: 1, Price: "call for price", Area: "n/a"},
		{ID: 2, Price: "1.2", Area: "900"},
	}

	// Active bound + unparseable stored value drops the record.
	got := Apply(props, Criteria{MinPrice: "1"})
	require.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].ID)

	got = Apply(props, Criteria{MaxArea: "1000"})
	require.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].ID)

	// Unparseable bound excludes everything on that dimension.
	assert.Len(t, Apply(props, Criteria{MinPrice: "cheap"}), 0)

	// No bound active: parseability never checked.
	assert.Len(t, Apply(props, Criteria{}), 2)
}

func TestApply_BathroomsSkippedWhenPropertyHasNone(t *testing.T) {
	props := []model.Property{
		{ID: 1, Bathrooms: ""},
		{ID: 2, Bathrooms: "2"},
		{ID: 3, Bathrooms: "3"},
	}

	got := Apply(props, Criteria{Bathrooms: "2"})
	assert.ElementsMatch(t, []uint{1, 2}, ids(got))
}

func TestApply_CriteriaCombineWithAnd(t *testing.T) {
	props := sampleProperties()

	got := Apply(props, Criteria{Type: "sale", MinArea: "3000"})
	require.Len(t, got, 1)
	assert.Equal(t, uint(3), got[0].ID)

	got = Apply(props, Criteria{Type: "rent", MinArea: "3000"})
	assert.Len(t, got, 0)
}

func TestApply_LocationAndFurnishedAreCaseInsensitive(t *testing.T) {
	props := sampleProperties()

	assert.Equal(t, []uint{3}, ids(Apply(props, Criteria{Location: "WHITEFIELD"})))
	assert.Equal(t, []uint{2}, ids(Apply(props, Criteria{Furnished: "fully"})))
	assert.Equal(t, []uint{3}, ids(Apply(props, Criteria{Facing: "EAST"})))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	props := sampleProperties()
	before := ids(props)
	Apply(props, Criteria{Type: "sale"})
	assert.Equal(t, before, ids(props))
}
