package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type jsonFile struct {
	Version int                        `json:"version"`
	Blobs   map[string]json.RawMessage `json:"blobs"`
}

// JSONStore keeps every blob in a single JSON file, rewritten in full on
// each change. Collections are small and local, so this is acceptable.
type JSONStore struct {
	path string
	file *jsonFile
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.file = &jsonFile{
		Version: 1,
		Blobs:   make(map[string]json.RawMessage),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'ritual init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.file = &jsonFile{}
	if err := json.Unmarshal(data, s.file); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.file.Blobs == nil {
		s.file.Blobs = make(map[string]json.RawMessage)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetBlob(key string) ([]byte, bool, error) {
	if s.file == nil {
		return nil, false, fmt.Errorf("storage not loaded")
	}

	raw, ok := s.file.Blobs[key]
	if !ok {
		return nil, false, nil
	}
	return raw, true, nil
}

func (s *JSONStore) SetBlob(key string, value []byte) error {
	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.file.Blobs[key] = json.RawMessage(value)
	return s.save()
}

func (s *JSONStore) Clear() error {
	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.file.Blobs = make(map[string]json.RawMessage)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
