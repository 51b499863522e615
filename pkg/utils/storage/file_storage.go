package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	imageutil "github.com/Toodlepoodle/property-listings-martin/pkg/utils/image"
	"github.com/Toodlepoodle/property-listings-martin/pkg/utils/validation"
)

var (
	uploadsDir = "./uploads"
	mediaDir   = "./media"
)

// Init points the storage at its base directories and creates them, along
// with the fixed media buckets.
func Init(uploads, media string, buckets []string) error {
	if uploads != "" {
		uploadsDir = uploads
	}
	if media != "" {
		mediaDir = media
	}

	dirs := []string{uploadsDir, mediaDir}
	for _, b := range buckets {
		dirs = append(dirs, filepath.Join(mediaDir, b))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("could not create %s: %v", dir, err)
		}
	}
	return nil
}

// SavePropertyFile writes one property upload under the uploads directory
// and returns the public path it will be served from. Still images are
// re-encoded on the way in; everything else is stored as received.
func SavePropertyFile(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	name := uniqueName(file.Filename)
	dst := filepath.Join(uploadsDir, name)

	if validation.IsImage(file) {
		buf, _, err := imageutil.ProcessImage(file)
		if err == nil {
			if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
				return "", err
			}
			return "/uploads/" + name, nil
		}
		// A decode failure falls through to a raw save; the file already
		// passed the extension allowlist.
		log.Warn().Err(err).Str("file", file.Filename).Msg("image re-encode failed, storing original")
	}

	if err := c.SaveFile(file, dst); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// SaveMediaFile writes one bucket upload and returns the stored filename and
// its public path.
func SaveMediaFile(c *fiber.Ctx, file *multipart.FileHeader, bucket string) (string, string, error) {
	name := uniqueName(file.Filename)
	dst := filepath.Join(mediaDir, bucket, name)

	if err := c.SaveFile(file, dst); err != nil {
		return "", "", err
	}
	return name, "/media/" + bucket + "/" + name, nil
}

// Remove deletes a stored file given its public path. A missing file is not
// an error; anything else is logged and swallowed — record deletion must not
// fail on stale disk state.
func Remove(publicPath string) {
	var local string
	switch {
	case strings.HasPrefix(publicPath, "/uploads/"):
		local = filepath.Join(uploadsDir, strings.TrimPrefix(publicPath, "/uploads/"))
	case strings.HasPrefix(publicPath, "/media/"):
		local = filepath.Join(mediaDir, strings.TrimPrefix(publicPath, "/media/"))
	default:
		return
	}

	if err := os.Remove(local); err != nil && !os.IsNotExist(err) {
		log.Error().Err(err).Str("path", local).Msg("could not delete stored file")
	}
}

// UploadsDir returns the local uploads directory (static mount target).
func UploadsDir() string { return uploadsDir }

// MediaDir returns the local media directory (static mount target).
func MediaDir() string { return mediaDir }

func uniqueName(original string) string {
	return uuid.New().String() + strings.ToLower(filepath.Ext(original))
}
