package seed

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Toodlepoodle/property-listings-martin/internal/model"
	"github.com/Toodlepoodle/property-listings-martin/pkg/database"
)

// SeedProperties loads the starter listings into an empty property
// collection. A collection with any existing listing is left alone.
func SeedProperties() {
	col := database.Properties.Load()
	if len(col.Items) > 0 {
		return
	}

	now := time.Now()
	listings := []model.Property{
		{
			Title:       "IDEB Springfield Penthouse",
			Type:        model.ListingSale,
			BHK:         "4BHK",
			Bathrooms:   "4",
			Area:        "2554",
			Price:       "3.45",
			Location:    "Sarjapur Road",
			Facing:      "West",
			Furnished:   "Semi Furnished",
			Parking:     "2 Covered",
			Description: "4bhk 4 Toilet, SBA Around 2554 Sqft including Terrace Area, B Khata property E khata is available, Two Covered Parking",
			Contact:     "9902925519",
		},
		{
			Title:       "Adarsh Lakefront Bellandur",
			Type:        model.ListingSale,
			BHK:         "3BHK",
			Bathrooms:   "3",
			Area:        "2315",
			Price:       "4.5",
			Location:    "Bellandur Sarjapura Road",
			Facing:      "East",
			Furnished:   "Ready to move-in",
			Parking:     "1 Covered",
			Description: "Ready to move-in, East facing balconies, swimming pool view, Flat on 9th floor, East Balcony, Main door South",
			Contact:     "9902925519",
		},
		{
			Title:       "Sobha Royal Pavillion",
			Type:        model.ListingSale,
			BHK:         "3BHK",
			Bathrooms:   "4",
			Area:        "1735",
			Price:       "3.05",
			Location:    "Sarjapur Road",
			Facing:      "North",
			Furnished:   "Unfurnished",
			Parking:     "1 Covered",
			Description: "3BHK + 3 Bathroom + Servant room (with extra Bathroom), 1st Floor, One Balcony, Slightly Negotiable",
			Contact:     "9902925519",
		},
		{
			Title:       "Modern Apartment Koramangala",
			Type:        model.ListingRent,
			BHK:         "2BHK",
			Bathrooms:   "2",
			Area:        "1200",
			Price:       "0.45",
			Location:    "Koramangala 4th Block",
			Facing:      "North",
			Furnished:   "Fully Furnished",
			Parking:     "1 Covered",
			Description: "Fully furnished 2BHK in prime Koramangala location. Near metro, restaurants, and IT parks.",
			Contact:     "9123456789",
		},
		{
			Title:       "Luxury Villa Whitefield",
			Type:        model.ListingSale,
			BHK:         "5BHK",
			Bathrooms:   "5",
			Area:        "3500",
			Price:       "6.75",
			Location:    "Whitefield ITPL Road",
			Facing:      "East",
			Furnished:   "Semi Furnished",
			Parking:     "3 Covered",
			Description: "Spacious villa with garden, modern amenities. Perfect for large families.",
			Contact:     "9876543210",
		},
	}

	for i := range listings {
		listings[i].ID = col.NextID
		listings[i].Slug = listings[i].MakeSlug()
		listings[i].Images = []string{}
		listings[i].Videos = []string{}
		listings[i].CreatedAt = now
		col.NextID++
	}
	col.Items = append(col.Items, listings...)

	if err := database.Properties.Save(col); err != nil {
		log.Error().Err(err).Msg("could not seed starter listings")
		return
	}
	log.Info().Int("count", len(listings)).Msg("starter listings seeded")
}
