package clean

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// artifactDirs are directory names build tools drop into project trees.
// They are fully regenerable.
var artifactDirs = map[string]bool{
	"node_modules":  true,
	"target":        true,
	"build":         true,
	"dist":          true,
	".next":         true,
	".nuxt":         true,
	"__pycache__":   true,
	".pytest_cache": true,
	".gradle":       true,
}

// projectScanDepth bounds how deep the artifact walk goes below the scan
// root. Deep trees are the artifacts themselves, not places to look for more.
const projectScanDepth = 4

// ScanProjectArtifacts walks root for regenerable build artifact directories
// not modified within minAge. An artifact directory is reported whole and
// never descended into.
func ScanProjectArtifacts(root string, minAge time.Duration) []string {
	root = filepath.Clean(root)
	var paths []string

	_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if depthBelow(root, p) > projectScanDepth {
			return filepath.SkipDir
		}

		name := d.Name()
		if p != root && name[0] == '.' {
			// Hidden trees (VCS metadata, tool state) are not project dirs.
			// A dotdir sitting directly under the scan root is global tool
			// state even when its name matches an artifact: ~/.gradle holds
			// gradle.properties and wrapper distributions, not build output.
			if depthBelow(root, p) == 1 || !artifactDirs[name] {
				return filepath.SkipDir
			}
		}
		if !artifactDirs[name] || p == root {
			return nil
		}

		info, ierr := os.Stat(p)
		if ierr != nil {
			return filepath.SkipDir
		}
		if time.Since(info.ModTime()) >= minAge {
			paths = append(paths, p)
		}
		return filepath.SkipDir
	})

	return paths
}

func depthBelow(root, p string) int {
	rel, err := filepath.Rel(root, p)
	if err != nil || rel == "." {
		return 0
	}
	depth := 1
	for _, c := range rel {
		if c == filepath.Separator {
			depth++
		}
	}
	return depth
}
