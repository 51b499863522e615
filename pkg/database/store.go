package database

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Collection is the whole on-disk state of one named collection: the item
// list plus the monotonic next-id counter. The counter is never rewound,
// even after deletions.
type Collection[T any] struct {
	Items  []T  `json:"items"`
	NextID uint `json:"next_id"`
}

// Store persists one collection as a single JSON document. Every call reads
// or rewrites the whole file. There is no locking: concurrent writers race
// and the last writer wins. That is a documented limitation of the flat-file
// design, not something this layer papers over.
type Store[T any] struct {
	name string
	path string
}

func NewStore[T any](dir, name string) *Store[T] {
	return &Store[T]{
		name: name,
		path: filepath.Join(dir, name+".json"),
	}
}

// Load reads the backing file. A missing file yields an empty collection
// with NextID 1. Malformed content is logged and also yields the empty
// default; callers never see a load failure.
func (s *Store[T]) Load() Collection[T] {
	empty := Collection[T]{Items: []T{}, NextID: 1}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Error().Err(err).Str("collection", s.name).Msg("could not read collection file")
		}
		return empty
	}

	var col Collection[T]
	if err := json.Unmarshal(data, &col); err != nil {
		log.Error().Err(err).Str("collection", s.name).Msg("malformed collection file, starting empty")
		return empty
	}
	if col.Items == nil {
		col.Items = []T{}
	}
	if col.NextID == 0 {
		col.NextID = 1
	}
	return col
}

// Save overwrites the backing file with the full collection state.
func (s *Store[T]) Save(col Collection[T]) error {
	data, err := json.MarshalIndent(col, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		log.Error().Err(err).Str("collection", s.name).Msg("could not write collection file")
		return err
	}
	return nil
}

// Path exposes the backing file location, mostly for logs.
func (s *Store[T]) Path() string {
	return s.path
}
