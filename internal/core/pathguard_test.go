package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_InsideRoot(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "Caches", "x")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	v := Validate(root, sub)
	assert.True(t, v.Accepted)
	assert.Equal(t, sub, v.Requested)
}

func TestValidate_RootItself(t *testing.T) {
	root := t.TempDir()
	v := Validate(root, root)
	assert.True(t, v.Accepted)
}

func TestValidate_OutsideRoot(t *testing.T) {
	root := t.TempDir()
	v := Validate(root, "/etc/passwd")
	assert.False(t, v.Accepted)
}

func TestValidate_SiblingPrefixIsNotContainment(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "home")
	evil := filepath.Join(parent, "home-evil", "x")
	require.NoError(t, os.MkdirAll(root, 0o755))
	require.NoError(t, os.MkdirAll(evil, 0o755))

	v := Validate(root, evil)
	assert.False(t, v.Accepted, "raw prefix match must not count as containment")
}

func TestValidate_SymlinkEscapeRejected(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	target := filepath.Join(outside, "data")
	require.NoError(t, os.MkdirAll(target, 0o755))

	link := filepath.Join(root, "link")
	require.NoError(t, os.Symlink(target, link))

	v := Validate(root, link)
	assert.False(t, v.Accepted, "link lives under root but its target escapes")
}

func TestValidate_SymlinkBackInsideAccepted(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "real")
	require.NoError(t, os.MkdirAll(target, 0o755))

	link := filepath.Join(root, "alias")
	require.NoError(t, os.Symlink(target, link))

	v := Validate(root, link)
	assert.True(t, v.Accepted)
}

func TestValidate_NonexistentPathTestedLiterally(t *testing.T) {
	root := t.TempDir()

	gone := filepath.Join(root, "no", "such", "dir")
	assert.True(t, Validate(root, gone).Accepted,
		"deleting something already gone must not fail validation")

	assert.False(t, Validate(root, "/no/such/dir/elsewhere").Accepted)
}

func TestValidate_NeverCaches(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	p := filepath.Join(root, "entry")

	// Starts as a plain dir inside root.
	require.NoError(t, os.MkdirAll(p, 0o755))
	assert.True(t, Validate(root, p).Accepted)

	// Replaced by an escaping symlink between calls: re-validation catches it.
	require.NoError(t, os.RemoveAll(p))
	require.NoError(t, os.Symlink(outside, p))
	assert.False(t, Validate(root, p).Accepted)
}
