package core

import (
	"io/fs"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// statBlockSize is the unit of unix.Stat_t.Blocks, fixed by POSIX regardless
// of the filesystem's own block size.
const statBlockSize = 512

// Measure returns the total on-disk size in bytes of the given paths.
// Each path is measured independently: a path that no longer exists, or one
// that cannot be read, simply contributes nothing. The per-entry figure
// counts allocated blocks rather than apparent file size, matching what a
// deletion will actually hand back to the filesystem. Block counts are
// summed first and converted to bytes once, so the unit factor is applied
// exactly one time per batch.
func Measure(paths []string) int64 {
	var blocks int64
	for _, p := range paths {
		blocks += pathBlocks(p)
	}
	return blocks * statBlockSize
}

// pathBlocks returns the allocated 512-byte blocks under path. Symlinks are
// counted as the link itself, never followed.
func pathBlocks(path string) int64 {
	var blocks int64
	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			return nil
		}
		var st unix.Stat_t
		if unix.Lstat(p, &st) == nil {
			blocks += st.Blocks
		}
		return nil
	})
	return blocks
}
