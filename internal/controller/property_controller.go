package controller

import (
	"fmt"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/Toodlepoodle/property-listings-martin/internal/model"
	"github.com/Toodlepoodle/property-listings-martin/pkg/database"
	"github.com/Toodlepoodle/property-listings-martin/pkg/filter"
	"github.com/Toodlepoodle/property-listings-martin/pkg/match"
	"github.com/Toodlepoodle/property-listings-martin/pkg/metrics"
	"github.com/Toodlepoodle/property-listings-martin/pkg/utils/jwt"
	"github.com/Toodlepoodle/property-listings-martin/pkg/utils/storage"
	"github.com/Toodlepoodle/property-listings-martin/pkg/utils/validation"
)

var matchNotifier *match.Notifier

// InitMatchNotifier wires the notifier used by the create endpoints.
func InitMatchNotifier(sender match.AlertSender, adminEmail string) {
	matchNotifier = match.NewNotifier(sender, adminEmail)
}

// ListProperties runs the filter engine over the collection.
func ListProperties(c *fiber.Ctx) error {
	criteria := filter.Criteria{
		Search:    c.Query("search"),
		Type:      c.Query("type"),
		MinPrice:  c.Query("minPrice"),
		MaxPrice:  c.Query("maxPrice"),
		BHK:       c.Query("bhk"),
		Bathrooms: c.Query("bathrooms"),
		Location:  c.Query("location"),
		Facing:    c.Query("facing"),
		MinArea:   c.Query("minArea"),
		MaxArea:   c.Query("maxArea"),
		Furnished: c.Query("furnished"),
	}

	col := database.Properties.Load()
	return c.JSON(filter.Apply(col.Items, criteria))
}

// GetProperty returns a single listing.
func GetProperty(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid property ID",
		})
	}

	col := database.Properties.Load()
	for _, p := range col.Items {
		if p.ID == uint(id) {
			return c.JSON(p)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Property not found",
	})
}

// CreateProperty accepts a multipart form with listing fields plus optional
// `images` and `videos` file fields, stores the listing, then notifies the
// admin about every requirement the new listing satisfies.
func CreateProperty(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	prop := model.Property{
		Title:       c.FormValue("title"),
		Type:        model.ListingType(c.FormValue("type")),
		BHK:         c.FormValue("bhk"),
		Bathrooms:   c.FormValue("bathrooms", "1"),
		Area:        c.FormValue("area"),
		Price:       c.FormValue("price"),
		Location:    c.FormValue("location"),
		Facing:      c.FormValue("facing"),
		Furnished:   c.FormValue("furnished"),
		Parking:     c.FormValue("parking"),
		Description: c.FormValue("description"),
		Contact:     c.FormValue("contact"),
	}

	if prop.Title == "" || prop.Area == "" || prop.Price == "" || prop.Location == "" || prop.Contact == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title, area, price, location and contact are required",
		})
	}
	if !prop.Type.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "type must be sale or rent",
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid multipart form",
		})
	}

	images := form.File["images"]
	videos := form.File["videos"]
	if len(images) > validation.MaxPropertyImages {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Maximum %d images allowed", validation.MaxPropertyImages),
		})
	}
	if len(videos) > validation.MaxPropertyVideos {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Maximum %d videos allowed", validation.MaxPropertyVideos),
		})
	}

	// Reject every invalid upload before anything touches the disk or the
	// collection file.
	for _, files := range [][]*multipart.FileHeader{images, videos} {
		for _, f := range files {
			if err := validation.ValidatePropertyFile(f); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
		}
	}

	prop.Images = []string{}
	prop.Videos = []string{}
	for _, f := range images {
		path, err := storage.SavePropertyFile(c, f)
		if err != nil {
			log.Error().Err(err).Str("file", f.Filename).Msg("could not store image")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not save uploaded file",
			})
		}
		prop.Images = append(prop.Images, path)
	}
	for _, f := range videos {
		path, err := storage.SavePropertyFile(c, f)
		if err != nil {
			log.Error().Err(err).Str("file", f.Filename).Msg("could not store video")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not save uploaded file",
			})
		}
		prop.Videos = append(prop.Videos, path)
	}

	col := database.Properties.Load()
	prop.ID = col.NextID
	prop.Slug = prop.MakeSlug()
	prop.CreatedBy = claims.UserID
	prop.CreatedAt = time.Now()
	col.Items = append(col.Items, prop)
	col.NextID++

	if err := database.Properties.Save(col); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save property",
		})
	}
	metrics.PropertiesCreatedTotal.Inc()

	// Alert failures never undo the create.
	if matchNotifier != nil {
		reqs := database.Requirements.Load()
		sent := matchNotifier.PropertyCreated(prop, reqs.Items)
		metrics.MatchAlertsSentTotal.Add(float64(sent))
	}

	return c.Status(fiber.StatusCreated).JSON(prop)
}

type PropertyUpdateInput struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	BHK         string `json:"bhk"`
	Bathrooms   string `json:"bathrooms"`
	Area        string `json:"area"`
	Price       string `json:"price"`
	Location    string `json:"location"`
	Facing      string `json:"facing"`
	Furnished   string `json:"furnished"`
	Parking     string `json:"parking"`
	Description string `json:"description"`
	Contact     string `json:"contact"`
}

// UpdateProperty rewrites the listing fields; uploaded files stay as they
// are. Ownership is enforced by middleware.
func UpdateProperty(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid property ID",
		})
	}

	input := new(PropertyUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if input.Type != "" && !model.ListingType(input.Type).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "type must be sale or rent",
		})
	}

	col := database.Properties.Load()
	for i, p := range col.Items {
		if p.ID != uint(id) {
			continue
		}

		if input.Title != "" {
			p.Title = input.Title
			p.Slug = p.MakeSlug()
		}
		if input.Type != "" {
			p.Type = model.ListingType(input.Type)
		}
		if input.BHK != "" {
			p.BHK = input.BHK
		}
		if input.Bathrooms != "" {
			p.Bathrooms = input.Bathrooms
		}
		if input.Area != "" {
			p.Area = input.Area
		}
		if input.Price != "" {
			p.Price = input.Price
		}
		if input.Location != "" {
			p.Location = input.Location
		}
		if input.Facing != "" {
			p.Facing = input.Facing
		}
		if input.Furnished != "" {
			p.Furnished = input.Furnished
		}
		if input.Parking != "" {
			p.Parking = input.Parking
		}
		if input.Description != "" {
			p.Description = input.Description
		}
		if input.Contact != "" {
			p.Contact = input.Contact
		}

		now := time.Now()
		p.UpdatedAt = &now
		col.Items[i] = p

		if err := database.Properties.Save(col); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not update property",
			})
		}
		return c.JSON(p)
	}

	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Property not found",
	})
}

// DeleteProperty removes the listing and its stored upload files. The
// next-id counter is never rewound.
func DeleteProperty(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid property ID",
		})
	}

	col := database.Properties.Load()
	for i, p := range col.Items {
		if p.ID != uint(id) {
			continue
		}

		for _, path := range append(append([]string{}, p.Images...), p.Videos...) {
			storage.Remove(path)
		}

		col.Items = append(col.Items[:i], col.Items[i+1:]...)
		if err := database.Properties.Save(col); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not delete property",
			})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}

	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Property not found",
	})
}

// ShareProperty returns a stable share URL for a listing.
func ShareProperty(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid property ID",
		})
	}

	col := database.Properties.Load()
	for _, p := range col.Items {
		if p.ID == uint(id) {
			shareURL := fmt.Sprintf("%s://%s/property/%d/%s", c.Protocol(), c.Hostname(), p.ID, p.Slug)
			return c.JSON(fiber.Map{
				"share_url": shareURL,
				"property":  p,
			})
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Property not found",
	})
}
