// Package layout persists the per-entity assigned layer between sessions,
// so computed lane placement survives a reload. The engine only computes
// layer values; writing them somewhere durable is this host-side concern.
package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/penwyp/go-timeline-core/internal/util"
)

// fileV1 is the on-disk document.
type fileV1 struct {
	Layers      map[string]int `json:"layers"`
	LastUpdated int64          `json:"last_updated"`
}

// Store is a JSON sidecar of identity-to-layer values.
type Store struct {
	path   string
	layers map[string]int
	mu     sync.Mutex
}

// NewStore creates a store backed by the given path. Nothing is read until
// Load.
func NewStore(path string) *Store {
	return &Store{path: path, layers: make(map[string]int)}
}

// Load reads the sidecar. A missing file is an empty store, not an error.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read layer store %s: %w", s.path, err)
	}

	var doc fileV1
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode layer store %s: %w", s.path, err)
	}
	if doc.Layers != nil {
		s.layers = doc.Layers
	}
	util.LogDebugf("Loaded %d persisted layers from %s", len(s.layers), s.path)
	return nil
}

// Save writes the sidecar atomically: temp file in the same directory, then
// rename, so a crash mid-write never leaves a torn document.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := fileV1{Layers: s.layers, LastUpdated: time.Now().Unix()}
	data, err := sonic.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode layer store: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create layer store dir: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write layer store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace layer store: %w", err)
	}
	return nil
}

// Get returns the persisted layer for an identity.
func (s *Store) Get(identity string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lane, ok := s.layers[identity]
	return lane, ok
}

// Set records a layer for an identity in memory; Save makes it durable.
func (s *Store) Set(identity string, lane int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layers[identity] = lane
}

// Replace swaps in a whole layer map, typically a Layout's Layers() output.
func (s *Store) Replace(layers map[string]int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layers = make(map[string]int, len(layers))
	for identity, lane := range layers {
		s.layers[identity] = lane
	}
}

// Snapshot returns a copy of the current layer map.
func (s *Store) Snapshot() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.layers))
	for identity, lane := range s.layers {
		out[identity] = lane
	}
	return out
}
