package controller

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/Toodlepoodle/property-listings-martin/internal/model"
	"github.com/Toodlepoodle/property-listings-martin/pkg/database"
	"github.com/Toodlepoodle/property-listings-martin/pkg/metrics"
	"github.com/Toodlepoodle/property-listings-martin/pkg/utils/storage"
	"github.com/Toodlepoodle/property-listings-martin/pkg/utils/validation"
)

// UploadMedia stores a batch of gallery files into one bucket.
func UploadMedia(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid multipart form",
		})
	}

	files := form.File["media"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No files uploaded",
		})
	}
	if len(files) > validation.MaxMediaFiles {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Maximum %d files allowed", validation.MaxMediaFiles),
		})
	}

	bucket := c.FormValue("bucket", model.DefaultBucket)
	if !model.MediaBuckets[bucket] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown bucket",
		})
	}

	for _, f := range files {
		if err := validation.ValidateMediaFile(f); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	title := c.FormValue("title")
	description := c.FormValue("description")

	col := database.Media.Load()
	uploaded := make([]model.Media, 0, len(files))

	for _, f := range files {
		name, path, err := storage.SaveMediaFile(c, f, bucket)
		if err != nil {
			log.Error().Err(err).Str("file", f.Filename).Msg("could not store media file")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not save uploaded file",
			})
		}

		item := model.Media{
			ID:           col.NextID,
			OriginalName: f.Filename,
			Filename:     name,
			Bucket:       bucket,
			Path:         path,
			Size:         f.Size,
			MimeType:     f.Header.Get("Content-Type"),
			Title:        title,
			Description:  description,
			UploadedAt:   time.Now(),
		}
		if item.Title == "" {
			item.Title = f.Filename
		}

		col.Items = append(col.Items, item)
		col.NextID++
		uploaded = append(uploaded, item)
	}

	if err := database.Media.Save(col); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save media data",
		})
	}
	metrics.MediaUploadedTotal.Add(float64(len(uploaded)))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Files uploaded successfully",
		"files":   uploaded,
	})
}

// ListMedia returns gallery items, optionally narrowed to one bucket.
func ListMedia(c *fiber.Ctx) error {
	bucket := c.Query("bucket")

	col := database.Media.Load()
	if bucket == "" || bucket == "all" {
		return c.JSON(col.Items)
	}

	files := make([]model.Media, 0)
	for _, m := range col.Items {
		if m.Bucket == bucket {
			files = append(files, m)
		}
	}
	return c.JSON(files)
}
