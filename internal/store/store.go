// Package store persists zone layouts as JSON files under the user's
// config directory. Edge layouts are never persisted; they exist only for
// the duration of an edit session.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/1broseidon/zoned/internal/layout"
)

// Store manages the on-disk layout library.
type Store struct {
	dir string
}

// New creates a store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Default returns the store at the standard location,
// ~/.config/zoned/layouts.
func Default() (*Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return New(filepath.Join(homeDir, ".config", "zoned", "layouts")), nil
}

// ValidateID rejects layout ids that are unsafe as file names.
func ValidateID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("layout id is required")
	}
	if strings.Contains(id, string(os.PathSeparator)) || id != filepath.Base(id) {
		return fmt.Errorf("invalid layout id %q", id)
	}
	if id == "." || id == ".." || strings.Contains(id, "..") {
		return fmt.Errorf("invalid layout id %q", id)
	}
	return nil
}

func (s *Store) path(id string) (string, error) {
	if err := ValidateID(id); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, id+".json"), nil
}

// Write saves a zone layout, keyed by its id.
func (s *Store) Write(zl *layout.ZoneLayout) error {
	if zl == nil {
		return fmt.Errorf("layout is nil")
	}
	path, err := s.path(zl.ID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create layouts directory: %w", err)
	}
	data, err := json.MarshalIndent(zl, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode layout: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write layout %q: %w", zl.ID, err)
	}
	return nil
}

// Read loads a zone layout by id.
func (s *Store) Read(id string) (*layout.ZoneLayout, error) {
	path, err := s.path(id)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %q: %w", id, err)
	}
	var zl layout.ZoneLayout
	if err := json.Unmarshal(data, &zl); err != nil {
		return nil, fmt.Errorf("failed to parse layout %q: %w", id, err)
	}
	if zl.ID == "" {
		zl.ID = id
	}
	if zl.Name == "" {
		zl.Name = id
	}
	return &zl, nil
}

// Delete removes a stored layout.
func (s *Store) Delete(id string) error {
	path, err := s.path(id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete layout %q: %w", id, err)
	}
	return nil
}

// Rename changes a stored layout's id and display name.
func (s *Store) Rename(oldID, newID string) error {
	zl, err := s.Read(oldID)
	if err != nil {
		return err
	}
	if err := ValidateID(newID); err != nil {
		return err
	}
	zl.ID = newID
	zl.Name = newID
	if err := s.Write(zl); err != nil {
		return err
	}
	return s.Delete(oldID)
}

// List returns the ids of all stored layouts, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list layouts: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}
