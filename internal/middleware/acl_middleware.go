package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Toodlepoodle/property-listings-martin/pkg/database"
	"github.com/Toodlepoodle/property-listings-martin/pkg/utils/jwt"
)

// CheckPropertyOwnership rejects mutations on listings the caller does not
// own. Listings with no recorded creator (seeded or imported ones) stay open
// to any authenticated user.
func CheckPropertyOwnership() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := c.Locals("user").(*jwt.Claims)

		id, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid property ID",
			})
		}

		col := database.Properties.Load()
		for _, p := range col.Items {
			if p.ID == uint(id) {
				if p.CreatedBy != 0 && p.CreatedBy != claims.UserID {
					return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
						"error": "You don't have permission to access this property",
					})
				}
				return c.Next()
			}
		}

		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Property not found",
		})
	}
}
