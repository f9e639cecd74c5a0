package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.mp4")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o644))

	c := NewChecker()

	assert.True(t, c.Exists(path))
	assert.False(t, c.Exists(filepath.Join(dir, "missing.mp4")))

	size, err := c.Size(path)
	require.NoError(t, err)
	assert.EqualValues(t, 10, size)

	_, err = c.Size(dir)
	assert.Error(t, err, "directories have no meaningful size")

	_, err = c.Size(filepath.Join(dir, "missing.mp4"))
	assert.Error(t, err)

	require.NoError(t, c.Remove(path))
	assert.False(t, c.Exists(path))
	assert.NoError(t, c.Remove(path), "removing twice is not an error")
}
