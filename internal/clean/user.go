package clean

import (
	"os"
	"path/filepath"
	"time"

	"github.com/lakshaymaurya-felt/devmole/internal/config"
)

// staleAge is how long an application cache may sit untouched before the
// legacy step offers to remove it.
const staleAge = 180 * 24 * time.Hour

// ScanTrash returns the entries currently sitting in the user's trash
// directories. The directories themselves are never candidates, only their
// contents, so the trash keeps working afterwards.
func ScanTrash(home string) []string {
	// Deduplicate — the platform dirs can resolve to the same path.
	seen := make(map[string]bool)
	var unique []string
	for _, d := range config.TrashDirs(home) {
		cleaned := filepath.Clean(d)
		if !seen[cleaned] {
			seen[cleaned] = true
			unique = append(unique, cleaned)
		}
	}

	var paths []string
	for _, dir := range unique {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths
}

// ScanLegacyCaches returns per-app cache folders that have not been modified
// in staleAge. Anything touched recently is assumed to belong to an app the
// user still runs.
func ScanLegacyCaches(home string) []string {
	dir := config.CachesDir(home)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var paths []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if time.Since(info.ModTime()) > staleAge {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths
}
