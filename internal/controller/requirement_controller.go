package controller

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Toodlepoodle/property-listings-martin/internal/model"
	"github.com/Toodlepoodle/property-listings-martin/pkg/database"
	"github.com/Toodlepoodle/property-listings-martin/pkg/metrics"
)

type RequirementInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Contact string `json:"contact"`

	Type      string `json:"type"`
	MinPrice  string `json:"min_price"`
	MaxPrice  string `json:"max_price"`
	MinArea   string `json:"min_area"`
	MaxArea   string `json:"max_area"`
	Location  string `json:"location"`
	BHK       string `json:"bhk"`
	Bathrooms string `json:"bathrooms"`
	Furnished string `json:"furnished"`
	Notes     string `json:"notes"`
}

// CreateRequirement records a buyer/renter wishlist entry and alerts the
// admin about every existing listing that already satisfies it.
func CreateRequirement(c *fiber.Ctx) error {
	input := new(RequirementInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Name == "" || input.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name and email are required",
		})
	}

	reqType := model.ListingType(input.Type)
	if reqType == "" {
		reqType = model.ListingAny
	}
	if !reqType.Valid() && reqType != model.ListingAny {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "type must be sale, rent or any",
		})
	}

	req := model.Requirement{
		Name:      input.Name,
		Email:     input.Email,
		Contact:   input.Contact,
		Type:      reqType,
		MinPrice:  input.MinPrice,
		MaxPrice:  input.MaxPrice,
		MinArea:   input.MinArea,
		MaxArea:   input.MaxArea,
		Location:  input.Location,
		BHK:       input.BHK,
		Bathrooms: input.Bathrooms,
		Furnished: input.Furnished,
		Notes:     input.Notes,
		CreatedAt: time.Now(),
	}

	col := database.Requirements.Load()
	req.ID = col.NextID
	col.Items = append(col.Items, req)
	col.NextID++

	if err := database.Requirements.Save(col); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save requirement",
		})
	}
	metrics.RequirementsCreatedTotal.Inc()

	if matchNotifier != nil {
		props := database.Properties.Load()
		sent := matchNotifier.RequirementCreated(req, props.Items)
		metrics.MatchAlertsSentTotal.Add(float64(sent))
	}

	return c.Status(fiber.StatusCreated).JSON(req)
}

// ListRequirements returns all wishlist entries, newest first.
func ListRequirements(c *fiber.Ctx) error {
	col := database.Requirements.Load()

	reqs := make([]model.Requirement, len(col.Items))
	copy(reqs, col.Items)
	sort.SliceStable(reqs, func(i, j int) bool {
		return reqs[i].CreatedAt.After(reqs[j].CreatedAt)
	})

	return c.JSON(reqs)
}
