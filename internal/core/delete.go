package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// PathViolationError reports a deletion candidate that resolved outside the
// designated root. When returned, none of the batch was deleted.
type PathViolationError struct {
	Requested string
	Resolved  string
	Root      string
}

func (e *PathViolationError) Error() string {
	return fmt.Sprintf("refusing to delete %s: resolves to %s, outside %s",
		e.Requested, e.Resolved, e.Root)
}

// DeleteGuarded validates every path in the batch against root, measures the
// accepted set, then removes it recursively. Validation is all-or-nothing:
// a single escaping path rejects the entire batch before anything is
// touched. Deletion itself is best-effort — a path that fails to delete is
// logged and the remaining paths are still removed. The returned byte count
// is the pre-deletion measurement of the accepted set; in dry-run mode the
// filesystem is left untouched and each would-be removal is announced on
// notice instead.
func DeleteGuarded(root string, paths []string, dryRun bool, notice io.Writer, errs *ErrorLog) (int64, error) {
	var accepted []string
	for _, p := range paths {
		// Unexpanded glob patterns matched nothing; drop them quietly.
		if isUnexpandedPattern(p) {
			continue
		}
		v := Validate(root, p)
		if !v.Accepted {
			errs.Append("path escapes %s: %s resolves to %s", root, p, v.Resolved)
			return 0, &PathViolationError{Requested: p, Resolved: v.Resolved, Root: root}
		}
		accepted = append(accepted, p)
	}

	freed := Measure(accepted)

	if dryRun {
		for _, p := range accepted {
			fmt.Fprintf(notice, "  would remove %s\n", p)
		}
		return freed, nil
	}

	for _, p := range accepted {
		if err := os.RemoveAll(p); err != nil {
			errs.Append("remove %s: %v", p, err)
		}
	}
	return freed, nil
}

// isUnexpandedPattern reports whether the final path segment still carries
// glob metacharacters, i.e. a pattern that was passed through unexpanded.
func isUnexpandedPattern(path string) bool {
	return strings.ContainsAny(filepath.Base(path), "*?[")
}
