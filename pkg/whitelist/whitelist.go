// Package whitelist tracks user-protected paths that cleanup must leave
// alone, persisted as YAML under the user's config directory.
package whitelist

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Whitelist is an ordered set of protected paths. A protected path also
// protects everything beneath it.
type Whitelist struct {
	Paths []string `yaml:"paths"`
}

// DefaultPath returns the on-disk location of the whitelist file.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = os.Getenv("HOME")
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "devmole", "whitelist.yaml")
}

// Load reads the whitelist at path. A missing file yields an empty
// whitelist, not an error.
func Load(path string) (*Whitelist, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Whitelist{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read whitelist: %w", err)
	}

	var wl Whitelist
	if err := yaml.Unmarshal(data, &wl); err != nil {
		return nil, fmt.Errorf("parse whitelist %s: %w", path, err)
	}
	for i, p := range wl.Paths {
		wl.Paths[i] = filepath.Clean(p)
	}
	return &wl, nil
}

// Save writes the whitelist to path, creating parent directories as needed.
func (w *Whitelist) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create whitelist dir: %w", err)
	}
	data, err := yaml.Marshal(w)
	if err != nil {
		return fmt.Errorf("encode whitelist: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write whitelist: %w", err)
	}
	return nil
}

// Add inserts a path unless it is already present.
func (w *Whitelist) Add(path string) {
	path = filepath.Clean(path)
	if !slices.Contains(w.Paths, path) {
		w.Paths = append(w.Paths, path)
	}
}

// Remove drops a path. It reports whether the path was present.
func (w *Whitelist) Remove(path string) bool {
	path = filepath.Clean(path)
	before := len(w.Paths)
	w.Paths = slices.DeleteFunc(w.Paths, func(p string) bool { return p == path })
	return len(w.Paths) != before
}

// IsWhitelisted reports whether path equals a protected path or sits beneath
// one. Comparison is by path components, not string prefix.
func (w *Whitelist) IsWhitelisted(path string) bool {
	path = filepath.Clean(path)
	for _, protected := range w.Paths {
		rel, err := filepath.Rel(protected, path)
		if err != nil {
			continue
		}
		if rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
			return true
		}
	}
	return false
}
