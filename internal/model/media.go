package model

import "time"

// Media buckets are a fixed set of storage partitions, not an access
// control boundary.
var MediaBuckets = map[string]bool{
	"bucket1": true,
	"bucket2": true,
	"bucket3": true,
}

const DefaultBucket = "bucket1"

type Media struct {
	ID           uint      `json:"id"`
	OriginalName string    `json:"original_name"`
	Filename     string    `json:"filename"`
	Bucket       string    `json:"bucket"`
	Path         string    `json:"path"`
	Size         int64     `json:"size"`
	MimeType     string    `json:"mime_type"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	UploadedAt   time.Time `json:"uploaded_at"`
}
