package validation

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var (
	ErrFileRequired = errors.New("no file provided")
	ErrFileSize     = errors.New("file size exceeds limit")
	ErrFileType     = errors.New("invalid file type")
)

const (
	// Byte ceilings per upload kind.
	MaxPropertyFileSize = 50 * 1024 * 1024
	MaxMediaFileSize    = 100 * 1024 * 1024

	// File count caps per multipart field.
	MaxPropertyImages = 10
	MaxPropertyVideos = 5
	MaxMediaFiles     = 20
)

// Property listings accept images, videos and PDFs.
var propertyTypes = map[string]bool{
	".jpeg": true, ".jpg": true, ".png": true, ".gif": true,
	".mp4": true, ".mov": true, ".avi": true, ".pdf": true,
}

// Bucket media accepts images and videos only.
var mediaTypes = map[string]bool{
	".jpeg": true, ".jpg": true, ".png": true, ".gif": true,
	".mp4": true, ".mov": true, ".avi": true, ".webm": true, ".mkv": true,
}

// ValidatePropertyFile checks one property upload before anything is stored.
func ValidatePropertyFile(file *multipart.FileHeader) error {
	return validate(file, propertyTypes, MaxPropertyFileSize)
}

// ValidateMediaFile checks one bucket-media upload.
func ValidateMediaFile(file *multipart.FileHeader) error {
	return validate(file, mediaTypes, MaxMediaFileSize)
}

// IsImage reports whether the upload looks like a still image by extension.
func IsImage(file *multipart.FileHeader) bool {
	switch ext(file) {
	case ".jpeg", ".jpg", ".png", ".webp":
		return true
	}
	return false
}

func validate(file *multipart.FileHeader, allowed map[string]bool, maxSize int64) error {
	if file == nil {
		return ErrFileRequired
	}
	if file.Size > maxSize {
		return fmt.Errorf("%w (%d bytes, limit %d)", ErrFileSize, file.Size, maxSize)
	}
	if !allowed[ext(file)] {
		return fmt.Errorf("%w: %s", ErrFileType, filepath.Ext(file.Filename))
	}
	return nil
}

func ext(file *multipart.FileHeader) string {
	return strings.ToLower(filepath.Ext(file.Filename))
}
