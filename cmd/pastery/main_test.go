package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBodyFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paste.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	body, err := readBody(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), body)
}

func TestReadBodyMissingFile(t *testing.T) {
	_, err := readBody(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.txt")
}
