package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevel(t *testing.T) {
	lvl, err := loadLevel("village")
	require.NoError(t, err)
	assert.Equal(t, 43, lvl.Width)

	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.json")
	data := `{"name":"tiny","width":2,"height":1,"tile_size":16,
		"layers":[{"name":"ground","tileset":"terrain.png","tiles":[[1,1]]}],
		"collisions":[[0,1]]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	lvl, err = loadLevel(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", lvl.Name)

	_, err = loadLevel("nowhere")
	assert.Error(t, err)
}
