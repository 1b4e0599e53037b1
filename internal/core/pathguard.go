package core

import (
	"path/filepath"
	"strings"
)

// Validation is the result of checking one deletion candidate against the
// designated root.
type Validation struct {
	Requested string
	Resolved  string
	Accepted  bool
}

// Validate resolves candidate to its canonical form and reports whether it
// lies within root. Symlinks are followed to their final target, so a link
// that lives under root but points elsewhere is rejected, and a link that
// points back under root is accepted. Validate never fails: paths that
// cannot be resolved (already gone, permission denied) are tested literally,
// so removing something that no longer exists stays a harmless no-op.
func Validate(root, candidate string) Validation {
	resolved := canonicalize(candidate)
	return Validation{
		Requested: candidate,
		Resolved:  resolved,
		Accepted:  contains(canonicalize(root), resolved),
	}
}

// canonicalize returns the symlink-free absolute form of path, falling back
// to the cleaned literal path when resolution is impossible.
func canonicalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs
	}
	return resolved
}

// contains reports whether p is root itself or a strict descendant of root.
// Containment is decided by path components, never by raw string prefix,
// so /home/u2 is not inside /home/u.
func contains(root, p string) bool {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
