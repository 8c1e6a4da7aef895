package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "data.gob")

	assert.False(t, FileExists(filename), "FileExists should return false before the file is created")

	require.NoError(t, os.WriteFile(filename, []byte{1}, 0o600))
	assert.True(t, FileExists(filename), "FileExists should return true once the file is created")
	assert.True(t, FileExists(dir), "FileExists should return true for a directory")
}
