package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/OCharnyshevich/fastnoise/internal/config"
)

// ErrInvalidName is returned for preset names that are empty or would
// escape the preset directory.
var ErrInvalidName = errors.New("invalid preset name")

const ext = ".json"

// Store keeps named generator presets as JSON files in a single directory.
type Store struct {
	dir string
	log *slog.Logger
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string, log *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create directory %s: %w", dir, err)
	}
	return &Store{dir: dir, log: log}, nil
}

// Load reads <name>.json into cfg and reports whether the preset exists.
// If it does not, cfg is unchanged.
func (s *Store) Load(name string, cfg *config.Config) (bool, error) {
	path, err := s.path(name)
	if err != nil {
		return false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read preset %s: %w", name, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return false, fmt.Errorf("parse preset %s: %w", name, err)
	}
	s.log.Info("loaded preset", "name", name, "path", path)
	return true, nil
}

// Save writes cfg to <name>.json atomically.
func (s *Store) Save(name string, cfg *config.Config) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := s.atomicWriteJSON(path, cfg); err != nil {
		return fmt.Errorf("save preset %s: %w", name, err)
	}
	s.log.Info("saved preset", "name", name, "path", path)
	return nil
}

// List returns the names of all stored presets in lexical order.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ext))
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.dir, name+ext), nil
}

// atomicWriteJSON marshals v to JSON and writes it atomically using a temp file + rename.
func (s *Store) atomicWriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
