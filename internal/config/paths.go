package config

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// CleanTarget represents a category of files that can be cleaned.
type CleanTarget struct {
	// Name is the unique identifier for this target.
	Name string

	// Paths is the list of filesystem paths to clean. Entries may be glob
	// patterns (including doublestar), expanded at batch-assembly time.
	Paths []string

	// Description is a human-readable description.
	Description string

	// Category groups related targets ("pm", "ide", "browser", "trash", "legacy").
	Category string

	// RiskLevel is one of "low", "medium", "high".
	RiskLevel string

	// Slow marks targets whose expansion or measurement takes long enough
	// that fast mode drops them.
	Slow bool
}

// HomeDir returns the designated root for this run: the invoking user's home
// directory. All deletion is confined to it.
func HomeDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.Getenv("HOME")
}

// cachesDir returns the platform's per-user cache root.
func cachesDir(home string) string {
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Caches")
	}
	if x := os.Getenv("XDG_CACHE_HOME"); x != "" {
		return x
	}
	return filepath.Join(home, ".cache")
}

// CachesDir is the exported form used by the legacy-folder step.
func CachesDir(home string) string {
	return cachesDir(home)
}

// TrashDirs returns the paths whose contents make up the user's trash.
func TrashDirs(home string) []string {
	if runtime.GOOS == "darwin" {
		return []string{filepath.Join(home, ".Trash")}
	}
	data := os.Getenv("XDG_DATA_HOME")
	if data == "" {
		data = filepath.Join(home, ".local", "share")
	}
	return []string{
		filepath.Join(data, "Trash", "files"),
		filepath.Join(data, "Trash", "info"),
	}
}

// GetCleanTargets returns all cleanup targets with paths rooted in home.
func GetCleanTargets(home string) []CleanTarget {
	caches := cachesDir(home)

	targets := []CleanTarget{
		// ── Package manager caches ──────────────────────────────
		{
			Name:        "HomebrewCache",
			Paths:       []string{filepath.Join(caches, "Homebrew")},
			Description: "Homebrew download cache",
			Category:    "pm",
			RiskLevel:   "low",
		},
		{
			Name: "NpmCache",
			Paths: []string{
				filepath.Join(home, ".npm", "_cacache"),
				filepath.Join(caches, "Yarn"),
				filepath.Join(home, ".cache", "yarn"),
			},
			Description: "npm and Yarn package caches",
			Category:    "pm",
			RiskLevel:   "low",
		},
		{
			Name:        "PipCache",
			Paths:       []string{filepath.Join(caches, "pip")},
			Description: "Python pip package cache",
			Category:    "pm",
			RiskLevel:   "low",
		},
		{
			Name:        "GoModCache",
			Paths:       []string{filepath.Join(home, "go", "pkg", "mod", "cache")},
			Description: "Go module download cache",
			Category:    "pm",
			RiskLevel:   "low",
		},
		{
			Name:        "CargoCache",
			Paths:       []string{filepath.Join(home, ".cargo", "registry", "cache")},
			Description: "Rust cargo registry cache",
			Category:    "pm",
			RiskLevel:   "low",
		},
		{
			Name:        "GradleCache",
			Paths:       []string{filepath.Join(home, ".gradle", "caches")},
			Description: "Gradle build cache",
			Category:    "pm",
			RiskLevel:   "low",
		},

		// ── IDE and build artifacts ─────────────────────────────
		{
			Name: "JetBrainsCache",
			Paths: []string{
				filepath.Join(caches, "JetBrains", "*", "caches"),
				filepath.Join(caches, "JetBrains", "*", "log"),
				filepath.Join(caches, "JetBrains", "*", "tmp"),
			},
			Description: "JetBrains IDE caches (IntelliJ, GoLand, etc.)",
			Category:    "ide",
			RiskLevel:   "medium",
			Slow:        true,
		},
		{
			Name: "VSCodeCache",
			Paths: []string{
				filepath.Join(configDir(home), "Code", "Cache"),
				filepath.Join(configDir(home), "Code", "CachedData"),
				filepath.Join(configDir(home), "Code", "CachedExtensionVSIXs"),
				filepath.Join(configDir(home), "Code", "logs"),
			},
			Description: "Visual Studio Code cache and logs",
			Category:    "ide",
			RiskLevel:   "low",
		},

		// ── Browser caches ──────────────────────────────────────
		{
			Name: "ChromeCache",
			Paths: []string{
				filepath.Join(caches, "Google", "Chrome"),
				filepath.Join(home, ".cache", "google-chrome"),
			},
			Description: "Google Chrome browser cache",
			Category:    "browser",
			RiskLevel:   "low",
			Slow:        true,
		},
		{
			Name: "FirefoxCache",
			Paths: []string{
				filepath.Join(caches, "Firefox", "Profiles", "*", "cache2"),
				filepath.Join(home, ".cache", "mozilla", "firefox", "*", "cache2"),
			},
			Description: "Mozilla Firefox browser cache (cache2 within profiles)",
			Category:    "browser",
			RiskLevel:   "low",
			Slow:        true,
		},
	}

	if runtime.GOOS == "darwin" {
		targets = append(targets, CleanTarget{
			Name:        "XcodeDerivedData",
			Paths:       []string{filepath.Join(home, "Library", "Developer", "Xcode", "DerivedData")},
			Description: "Xcode build intermediates",
			Category:    "ide",
			RiskLevel:   "low",
			Slow:        true,
		})
	}

	return targets
}

// configDir returns the per-user application config root.
func configDir(home string) string {
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Application Support")
	}
	if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
		return x
	}
	return filepath.Join(home, ".config")
}

// GetTargetsByCategory returns clean targets filtered by category.
func GetTargetsByCategory(home, category string) []CleanTarget {
	var result []CleanTarget
	for _, t := range GetCleanTargets(home) {
		if t.Category == category {
			result = append(result, t)
		}
	}
	return result
}

// ExpandPaths turns a target's path list into concrete filesystem paths.
// Plain entries pass through whether or not they exist (the deleter
// tolerates missing paths); glob entries are expanded and dropped when
// nothing matches. Results are deduplicated and sorted.
func ExpandPaths(paths []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range paths {
		if !strings.ContainsAny(p, "*?[") {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
			continue
		}
		matches, err := doublestar.FilepathGlob(p)
		if err != nil {
			continue
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	sort.Strings(out)
	return out
}

// GetNeverDeletePaths returns paths that must never appear in a batch even
// though they sit inside the designated root.
func GetNeverDeletePaths(home string) []string {
	return []string{
		home,
		filepath.Join(home, ".ssh"),
		filepath.Join(home, ".gnupg"),
		filepath.Join(home, ".config"),
		filepath.Join(home, "Documents"),
		filepath.Join(home, "Desktop"),
	}
}
