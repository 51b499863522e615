package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Toodlepoodle/property-listings-martin/internal/model"
	"github.com/Toodlepoodle/property-listings-martin/pkg/database"
)

// HealthCheck reports liveness plus collection sizes.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":             "ok",
		"timestamp":          time.Now().Format(time.RFC3339),
		"properties_count":   len(database.Properties.Load().Items),
		"requirements_count": len(database.Requirements.Load().Items),
		"media_count":        len(database.Media.Load().Items),
	})
}

// GetDashboardStats summarizes the collections for the admin dashboard.
func GetDashboardStats(c *fiber.Ctx) error {
	props := database.Properties.Load().Items

	forSale, forRent := 0, 0
	for _, p := range props {
		switch p.Type {
		case model.ListingSale:
			forSale++
		case model.ListingRent:
			forRent++
		}
	}

	mediaByBucket := map[string]int{}
	for _, m := range database.Media.Load().Items {
		mediaByBucket[m.Bucket]++
	}

	return c.JSON(fiber.Map{
		"properties": fiber.Map{
			"total":    len(props),
			"for_sale": forSale,
			"for_rent": forRent,
		},
		"requirements": len(database.Requirements.Load().Items),
		"users":        len(database.Users.Load().Items),
		"media":        mediaByBucket,
	})
}
