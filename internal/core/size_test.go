package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasure_EmptyBatch(t *testing.T) {
	assert.EqualValues(t, 0, Measure(nil))
	assert.EqualValues(t, 0, Measure([]string{}))
}

func TestMeasure_AllNonexistent(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		filepath.Join(dir, "gone"),
		filepath.Join(dir, "also", "gone"),
	}
	assert.EqualValues(t, 0, Measure(paths))
}

func TestMeasure_CountsFileContent(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(f, make([]byte, 64*1024), 0o644))

	got := Measure([]string{f})
	assert.GreaterOrEqual(t, got, int64(64*1024), "allocated size covers content")
}

func TestMeasure_BatchIsSumOfParts(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(a, make([]byte, 8192), 0o644))
	require.NoError(t, os.WriteFile(b, make([]byte, 16384), 0o644))
	missing := filepath.Join(dir, "missing")

	sum := Measure([]string{a}) + Measure([]string{b})
	assert.Equal(t, sum, Measure([]string{a, b, missing}),
		"a nonexistent member contributes zero, not an error")
}

func TestMeasure_RecursesDirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested", "deep")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "f"), make([]byte, 4096), 0o644))

	assert.GreaterOrEqual(t, Measure([]string{dir}), int64(4096))
}
