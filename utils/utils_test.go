package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateDirIfNotExist(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dev", "config")

	assert.Nil(t, CreateDirIfNotExist(dir))
	assert.DirExists(t, dir)

	assert.Nil(t, CreateDirIfNotExist(dir), "Should be a no-op when dir exists")
}

func TestFileExist(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "server.yml")

	assert.False(t, FileExist(filePath))
	assert.False(t, FileExist(dir), "A directory is not a file")

	assert.Nil(t, os.WriteFile(filePath, []byte("listener:\n  port: 3000\n"), 0600))
	assert.True(t, FileExist(filePath))
}
