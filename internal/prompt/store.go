package prompt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	flowerrors "github.com/wexinc/flow/internal/errors"
	"github.com/wexinc/flow/internal/logging"
)

// File is the JSON document kept on disk.
type File struct {
	Prompts []Prompt `json:"prompts"`
}

// Store handles reading and writing prompts to JSON storage.
type Store struct {
	path    string
	mu      sync.RWMutex
	prompts []Prompt
}

// NewStore creates a new Store instance for the given path.
// It does not load or create the file; call Load() or Save() for that.
func NewStore(path string) *Store {
	return &Store{
		path:    path,
		prompts: []Prompt{},
	}
}

// Open creates a Store for path and loads it.
func Open(path string) (*Store, error) {
	s := NewStore(path)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the file path of the store.
func (s *Store) Path() string {
	return s.path
}

// Load reads prompts from the JSON file.
// A missing or empty file yields an empty store.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.prompts = []Prompt{}
			return nil
		}
		return flowerrors.StoreReadError(s.path, err)
	}

	if len(data) == 0 {
		s.prompts = []Prompt{}
		return nil
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return flowerrors.StoreReadError(s.path, err)
	}
	if file.Prompts == nil {
		file.Prompts = []Prompt{}
	}

	s.prompts = file.Prompts
	logging.Debug("prompt store loaded", "path", s.path, "prompts", len(s.prompts))
	return nil
}

// Save writes prompts to the JSON file.
// Creates parent directories if they don't exist.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(File{Prompts: s.prompts}, "", "  ")
	if err != nil {
		return flowerrors.StoreWriteError(s.path, fmt.Errorf("failed to marshal prompts: %w", err))
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return flowerrors.StoreWriteError(s.path, err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return flowerrors.StoreWriteError(s.path, err)
	}

	logging.Debug("prompt store saved", "path", s.path, "prompts", len(s.prompts))
	return nil
}

// Prompts returns a copy of all prompts in stored order.
func (s *Store) Prompts() []Prompt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prompts := make([]Prompt, len(s.prompts))
	for i, p := range s.prompts {
		prompts[i] = p.Clone()
	}
	return prompts
}

// Count returns the total number of prompts.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.prompts)
}

// Get returns the first prompt with the given alias.
func (s *Store) Get(alias string) (Prompt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.prompts {
		if p.Alias == alias {
			return p.Clone(), true
		}
	}
	return Prompt{}, false
}

// Exists checks if a prompt with the given alias exists.
func (s *Store) Exists(alias string) bool {
	_, ok := s.Get(alias)
	return ok
}

// Add appends a prompt to the store and returns it with its ID set.
// A new UUID is assigned when the ID is empty. Aliases must be unique.
func (s *Store) Add(p Prompt) (Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.prompts {
		if existing.Alias == p.Alias {
			return Prompt{}, flowerrors.DuplicateAlias(p.Alias)
		}
	}

	clone := p.Clone()
	if clone.ID == "" {
		clone.ID = uuid.New().String()
	}
	if clone.Tags == nil {
		clone.Tags = []string{}
	}

	s.prompts = append(s.prompts, clone)
	return clone.Clone(), nil
}
