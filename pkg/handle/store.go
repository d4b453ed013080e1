package handle

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// StoreVersion is the current version of the store file format.
const StoreVersion = 1

// Record is one saved handle.
type Record struct {
	// SavedAt is when the handle was saved.
	SavedAt time.Time `json:"saved_at"`

	// Handle is the opaque handle blob.
	Handle []byte `json:"handle"`
}

// storeFile is the on-disk layout.
type storeFile struct {
	// Version is the store file format version.
	Version int `json:"version"`

	// SavedAt is when the store was last written.
	SavedAt time.Time `json:"saved_at"`

	// Handles contains the saved handles by name.
	Handles map[string]Record `json:"handles,omitempty"`
}

// Store manages persistence of handles to a JSON file.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a new handle store backed by the given file.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save persists a handle under the given name, replacing any previous
// handle with that name.
func (s *Store) Save(name string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return err
	}
	if file == nil {
		file = &storeFile{Handles: make(map[string]Record)}
	}
	if file.Handles == nil {
		file.Handles = make(map[string]Record)
	}

	file.Handles[name] = Record{
		SavedAt: time.Now(),
		Handle:  blob,
	}

	return s.write(file)
}

// Load reads the handle saved under the given name.
// Returns nil, nil if the store file or the name does not exist.
func (s *Store) Load(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, nil
	}

	rec, ok := file.Handles[name]
	if !ok {
		return nil, nil
	}
	return rec.Handle, nil
}

// List returns the saved handle names, sorted.
func (s *Store) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, nil
	}

	names := make([]string, 0, len(file.Handles))
	for name := range file.Handles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the handle saved under the given name.
// Deleting a missing name is not an error.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return err
	}
	if file == nil {
		return nil
	}

	delete(file.Handles, name)
	return s.write(file)
}

// Clear removes the store file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// read loads the store file. Returns nil, nil if it doesn't exist.
func (s *Store) read() (*storeFile, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	file := &storeFile{}
	if err := json.Unmarshal(data, file); err != nil {
		return nil, err
	}
	return file, nil
}

// write persists the store file.
func (s *Store) write(file *storeFile) error {
	// Ensure parent directory exists
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	file.Version = StoreVersion
	file.SavedAt = time.Now()

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}
