package clean

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshaymaurya-felt/devmole/internal/config"
)

func TestScanTrash(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_DATA_HOME", "")

	dirs := config.TrashDirs(home)
	require.NotEmpty(t, dirs)
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(d, 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dirs[0], "old-report.pdf"), []byte("x"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dirs[0], "deleted-project"), 0o755))

	got := ScanTrash(home)
	assert.Contains(t, got, filepath.Join(dirs[0], "old-report.pdf"))
	assert.Contains(t, got, filepath.Join(dirs[0], "deleted-project"))
	// The trash directories themselves are never candidates.
	for _, d := range dirs {
		assert.NotContains(t, got, d)
	}
}

func TestScanTrash_MissingDirs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_DATA_HOME", "")
	assert.Empty(t, ScanTrash(home))
}

func TestScanLegacyCaches(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", "")

	caches := config.CachesDir(home)
	stale := filepath.Join(caches, "some-old-app")
	fresh := filepath.Join(caches, "daily-driver")
	require.NoError(t, os.MkdirAll(stale, 0o755))
	require.NoError(t, os.MkdirAll(fresh, 0o755))
	old := time.Now().Add(-(staleAge + 24*time.Hour))
	require.NoError(t, os.Chtimes(stale, old, old))

	// Plain files next to the app dirs are left alone.
	require.NoError(t, os.WriteFile(filepath.Join(caches, "stray.log"), []byte("x"), 0o644))

	got := ScanLegacyCaches(home)
	assert.Equal(t, []string{stale}, got)
}

func TestScanLegacyCaches_MissingCacheRoot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, "does-not-exist"))
	assert.Empty(t, ScanLegacyCaches(home))
}
