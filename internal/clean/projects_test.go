package clean

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdirAged(t *testing.T, path string, age time.Duration) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o755))
	if age > 0 {
		stamp := time.Now().Add(-age)
		require.NoError(t, os.Chtimes(path, stamp, stamp))
	}
}

func TestScanProjectArtifacts_FindsAgedArtifacts(t *testing.T) {
	root := t.TempDir()
	old := filepath.Join(root, "webapp", "node_modules")
	mkdirAged(t, old, 48*time.Hour)
	fresh := filepath.Join(root, "service", "target")
	mkdirAged(t, fresh, 0)

	got := ScanProjectArtifacts(root, 24*time.Hour)
	assert.Equal(t, []string{old}, got)
}

func TestScanProjectArtifacts_ZeroAgeReportsEverything(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "one", "dist")
	b := filepath.Join(root, "two", "__pycache__")
	mkdirAged(t, a, 0)
	mkdirAged(t, b, 0)

	got := ScanProjectArtifacts(root, 0)
	assert.ElementsMatch(t, []string{a, b}, got)
}

func TestScanProjectArtifacts_NeverDescendsIntoArtifacts(t *testing.T) {
	root := t.TempDir()
	outer := filepath.Join(root, "app", "node_modules")
	inner := filepath.Join(outer, "dep", "dist")
	mkdirAged(t, inner, 0)
	mkdirAged(t, outer, 48*time.Hour)

	got := ScanProjectArtifacts(root, 0)
	assert.Equal(t, []string{outer}, got)
}

func TestScanProjectArtifacts_SkipsHiddenTrees(t *testing.T) {
	root := t.TempDir()
	vcs := filepath.Join(root, "app", ".git", "node_modules")
	mkdirAged(t, vcs, 48*time.Hour)
	// Hidden artifact names still count.
	next := filepath.Join(root, "app", ".next")
	mkdirAged(t, next, 48*time.Hour)

	got := ScanProjectArtifacts(root, 0)
	assert.Equal(t, []string{next}, got)
}

func TestScanProjectArtifacts_GlobalDotdirsAreNotArtifacts(t *testing.T) {
	home := t.TempDir()

	// ~/.gradle is global Gradle state (credentials, wrapper distributions),
	// not a regenerable build directory, however stale it gets.
	global := filepath.Join(home, ".gradle")
	mkdirAged(t, global, 0)
	require.NoError(t, os.WriteFile(filepath.Join(global, "gradle.properties"), []byte("key=secret"), 0o600))
	stamp := time.Now().Add(-30 * 24 * time.Hour)
	require.NoError(t, os.Chtimes(global, stamp, stamp))

	// The same name inside a project is build output and fair game.
	project := filepath.Join(home, "projects", "app", ".gradle")
	mkdirAged(t, project, 30*24*time.Hour)

	got := ScanProjectArtifacts(home, 7*24*time.Hour)
	assert.NotContains(t, got, global)
	assert.Equal(t, []string{project}, got)
}

func TestScanProjectArtifacts_DepthBound(t *testing.T) {
	root := t.TempDir()
	deep := filepath.Join(root, "a", "b", "c", "d", "e", "node_modules")
	mkdirAged(t, deep, 48*time.Hour)
	shallow := filepath.Join(root, "a", "b", "c", "build")
	mkdirAged(t, shallow, 48*time.Hour)

	got := ScanProjectArtifacts(root, 0)
	assert.Equal(t, []string{shallow}, got)
}

func TestScanProjectArtifacts_IgnoresPlainFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "node_modules"), []byte("a file"), 0o644))

	assert.Empty(t, ScanProjectArtifacts(root, 0))
}

func TestDepthBelow(t *testing.T) {
	assert.Equal(t, 0, depthBelow("/r", "/r"))
	assert.Equal(t, 1, depthBelow("/r", "/r/a"))
	assert.Equal(t, 3, depthBelow("/r", "/r/a/b/c"))
}
