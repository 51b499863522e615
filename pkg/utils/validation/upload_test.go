package validation

import (
	"errors"
	"mime/multipart"
	"testing"
)

func header(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: size}
}

func TestValidatePropertyFile(t *testing.T) {
	cases := []struct {
		name string
		file *multipart.FileHeader
		want error
	}{
		{"jpeg ok", header("front.jpg", 1024), nil},
		{"uppercase ext ok", header("plan.PDF", 1024), nil},
		{"video ok", header("tour.mp4", 40 * 1024 * 1024), nil},
		{"nil file", nil, ErrFileRequired},
		{"too large", header("tour.mp4", MaxPropertyFileSize + 1), ErrFileSize},
		{"bad type", header("listing.exe", 1024), ErrFileType},
		{"webm not allowed for properties", header("clip.webm", 1024), ErrFileType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePropertyFile(tc.file)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestValidateMediaFile(t *testing.T) {
	if err := ValidateMediaFile(header("clip.webm", 1024)); err != nil {
		t.Errorf("webm should be valid bucket media: %v", err)
	}
	if err := ValidateMediaFile(header("doc.pdf", 1024)); !errors.Is(err, ErrFileType) {
		t.Errorf("pdf is not bucket media, got %v", err)
	}
	if err := ValidateMediaFile(header("big.mkv", MaxMediaFileSize + 1)); !errors.Is(err, ErrFileSize) {
		t.Errorf("oversized media should fail, got %v", err)
	}
	// The media ceiling is higher than the property one.
	if err := ValidateMediaFile(header("big.mp4", 80 * 1024 * 1024)); err != nil {
		t.Errorf("80MB media upload should pass: %v", err)
	}
}

func TestIsImage(t *testing.T) {
	if !IsImage(header("a.JPG", 1)) {
		t.Error("jpg is an image")
	}
	if IsImage(header("a.mp4", 1)) {
		t.Error("mp4 is not an image")
	}
	if IsImage(header("a.gif", 1)) {
		t.Error("gif skips re-encoding and is not treated as a still image")
	}
}
