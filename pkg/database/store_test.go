package database

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Toodlepoodle/property-listings-martin/internal/model"
)

func TestLoad_MissingFileYieldsEmptyCollection(t *testing.T) {
	store := NewStore[model.Property](t.TempDir(), "properties")

	col := store.Load()
	assert.Empty(t, col.Items)
	assert.Equal(t, uint(1), col.NextID)
}

func TestLoad_MalformedFileYieldsEmptyCollection(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "properties.json"), []byte("{not json"), 0o644))

	store := NewStore[model.Property](dir, "properties")
	col := store.Load()
	assert.Empty(t, col.Items)
	assert.Equal(t, uint(1), col.NextID)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore[model.Property](t.TempDir(), "properties")

	col := store.Load()
	col.Items = append(col.Items, model.Property{
		ID:        col.NextID,
		Title:     "Modern Apartment Koramangala",
		Type:      model.ListingRent,
		Price:     "0.45",
		Area:      "1200",
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	})
	col.NextID++
	require.NoError(t, store.Save(col))

	got := store.Load()
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Modern Apartment Koramangala", got.Items[0].Title)
	assert.Equal(t, model.ListingRent, got.Items[0].Type)
	assert.Equal(t, uint(2), got.NextID)
}

func TestNextIDSurvivesDeletion(t *testing.T) {
	store := NewStore[model.Requirement](t.TempDir(), "requirements")

	col := store.Load()
	for i := 0; i < 3; i++ {
		col.Items = append(col.Items, model.Requirement{ID: col.NextID})
		col.NextID++
	}
	require.NoError(t, store.Save(col))

	// Delete everything; the counter must not rewind.
	col = store.Load()
	col.Items = col.Items[:0]
	require.NoError(t, store.Save(col))

	col = store.Load()
	assert.Empty(t, col.Items)
	assert.Equal(t, uint(4), col.NextID)
}

func TestSave_OverwritesWholeFile(t *testing.T) {
	store := NewStore[model.Media](t.TempDir(), "media")

	col := store.Load()
	col.Items = append(col.Items, model.Media{ID: 1, Bucket: "bucket1"}, model.Media{ID: 2, Bucket: "bucket2"})
	col.NextID = 3
	require.NoError(t, store.Save(col))

	col.Items = col.Items[:1]
	require.NoError(t, store.Save(col))

	got := store.Load()
	require.Len(t, got.Items, 1)
	assert.Equal(t, "bucket1", got.Items[0].Bucket)
}

func TestSave_UnwritablePathReturnsError(t *testing.T) {
	store := NewStore[model.Property](filepath.Join(t.TempDir(), "missing-subdir"), "properties")

	err := store.Save(Collection[model.Property]{Items: []model.Property{}, NextID: 1})
	assert.Error(t, err)
}
