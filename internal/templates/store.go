// Package templates manages named prompt templates backed by a directory of
// JSON records, with an in-memory set and a shared TTL cache in front.
package templates

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Ranatar/philosophical-concepts-service/internal/cache"
)

var (
	// ErrNotFound is returned when no template exists under the requested name.
	ErrNotFound = errors.New("templates: template not found")
	// ErrExists is returned by Create when the name is already taken.
	ErrExists = errors.New("templates: template already exists")
)

// Template is one named, parameterized prompt text block.
type Template struct {
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	Text             string   `json:"template"`
	Parameters       []string `json:"parameters"`
	FallbackStrategy string   `json:"fallback_strategy,omitempty"`
}

const cacheKeyPrefix = "template:"

// Store loads the full template set lazily on first access and keeps it
// cached in memory and in the shared cache. Writes persist to disk and
// refresh both caches before returning, so a writer never observes its own
// stale entry.
type Store struct {
	dir    string
	shared cache.Cache
	ttl    time.Duration

	mu     sync.RWMutex
	loaded bool
	set    map[string]Template
}

// NewStore creates a Store over dir. shared may be nil; caching then stays
// purely in-memory.
func NewStore(dir string, shared cache.Cache, ttl time.Duration) *Store {
	return &Store{dir: dir, shared: shared, ttl: ttl, set: make(map[string]Template)}
}

// Get returns the template with the given name.
func (s *Store) Get(name string) (Template, error) {
	if err := s.ensureLoaded(); err != nil {
		return Template{}, err
	}
	s.mu.RLock()
	t, ok := s.set[name]
	s.mu.RUnlock()
	if ok {
		return t, nil
	}
	if t, ok := s.fromShared(name); ok {
		return t, nil
	}
	return Template{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// ListNames returns all template names sorted.
func (s *Store) ListNames() ([]string, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	names := make([]string, 0, len(s.set))
	for name := range s.set {
		names = append(names, name)
	}
	s.mu.RUnlock()
	sort.Strings(names)
	return names, nil
}

// Create persists a new template. The name inside t is overridden by name.
func (s *Store) Create(name string, t Template) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.set[name]; ok {
		return fmt.Errorf("%w: %q", ErrExists, name)
	}
	return s.writeLocked(name, t)
}

// Update replaces an existing template.
func (s *Store) Update(name string, t Template) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.set[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return s.writeLocked(name, t)
}

// Delete removes a template from disk and both caches.
func (s *Store) Delete(name string) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.set[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("templates: delete %q: %w", name, err)
	}
	delete(s.set, name)
	if s.shared != nil {
		s.shared.Delete(cacheKeyPrefix + name)
	}
	return nil
}

// EnsureDefaults writes every built-in template that is not already present
// in the directory. Existing files are never overwritten.
func (s *Store) EnsureDefaults() error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, t := range Defaults() {
		if _, ok := s.set[name]; ok {
			continue
		}
		if err := s.writeLocked(name, t); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) writeLocked(name string, t Template) error {
	t.Name = name
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("templates: encode %q: %w", name, err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("templates: create dir: %w", err)
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return fmt.Errorf("templates: write %q: %w", name, err)
	}
	s.set[name] = t
	s.toShared(t)
	return nil
}

func (s *Store) ensureLoaded() error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return nil
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			// An empty directory is a valid starting state.
			s.loaded = true
			return nil
		}
		return fmt.Errorf("templates: read dir %s: %w", s.dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			// A single unreadable record fails that entry only.
			log.Warn().Err(err).Str("path", path).Msg("skipping unreadable template")
			continue
		}
		var t Template
		if err := json.Unmarshal(data, &t); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("skipping malformed template")
			continue
		}
		if t.Name == "" {
			t.Name = strings.TrimSuffix(entry.Name(), ".json")
		}
		s.set[t.Name] = t
		s.toShared(t)
	}
	s.loaded = true
	log.Debug().Int("count", len(s.set)).Str("dir", s.dir).Msg("template set loaded")
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *Store) toShared(t Template) {
	if s.shared == nil {
		return
	}
	data, err := json.Marshal(t)
	if err != nil {
		return
	}
	s.shared.SetWithTTL(cacheKeyPrefix+t.Name, string(data), s.ttl)
}

func (s *Store) fromShared(name string) (Template, bool) {
	if s.shared == nil {
		return Template{}, false
	}
	raw, ok := s.shared.Get(cacheKeyPrefix + name)
	if !ok {
		return Template{}, false
	}
	var t Template
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return Template{}, false
	}
	return t, true
}
