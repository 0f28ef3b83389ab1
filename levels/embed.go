package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// DefaultLevel is loaded when no level is requested.
const DefaultLevel = "village"

// ErrInvalidLevel is wrapped by every Validate failure.
var ErrInvalidLevel = errors.New("levels: invalid level")

// Level is a tile map: visual layers drawn bottom to top and a collision grid
// where 1 marks a solid tile. Grids are indexed [row][column].
type Level struct {
	Name       string  `json:"name"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	TileSize   int     `json:"tile_size"`
	Layers     []Layer `json:"layers"`
	Collisions [][]int `json:"collisions"`
}

// Layer is one visual tile layer. Tile value 0 is empty; value n draws the
// (n-1)th tile of the tileset, counted left to right, top to bottom.
type Layer struct {
	Name     string  `json:"name"`
	Tileset  string  `json:"tileset"`
	TileSize int     `json:"tile_size,omitempty"`
	Tiles    [][]int `json:"tiles"`
}

// LayerTileSize returns the layer's tile size, falling back to the level's.
func (l *Level) LayerTileSize(layer Layer) int {
	if layer.TileSize > 0 {
		return layer.TileSize
	}
	return l.TileSize
}

// PixelSize returns the map size in world pixels.
func (l *Level) PixelSize() (float64, float64) {
	return float64(l.Width * l.TileSize), float64(l.Height * l.TileSize)
}

// Validate checks that every grid matches the declared dimensions.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidLevel, l.Width, l.Height)
	}
	if l.TileSize <= 0 {
		return fmt.Errorf("%w: tile size %d", ErrInvalidLevel, l.TileSize)
	}
	if err := l.checkGrid("collisions", l.Collisions); err != nil {
		return err
	}
	for _, layer := range l.Layers {
		if layer.Tileset == "" {
			return fmt.Errorf("%w: layer %q has no tileset", ErrInvalidLevel, layer.Name)
		}
		if err := l.checkGrid("layer "+layer.Name, layer.Tiles); err != nil {
			return err
		}
	}
	return nil
}

func (l *Level) checkGrid(name string, grid [][]int) error {
	if len(grid) != l.Height {
		return fmt.Errorf("%w: %s has %d rows, want %d", ErrInvalidLevel, name, len(grid), l.Height)
	}
	for i, row := range grid {
		if len(row) != l.Width {
			return fmt.Errorf("%w: %s row %d has %d columns, want %d", ErrInvalidLevel, name, i, len(row), l.Width)
		}
	}
	return nil
}

// LoadLevelFromFS loads and validates a level from the embedded levels. The
// .json extension is optional.
func LoadLevelFromFS(name string) (*Level, error) {
	return LoadLevel(LevelsFS, name)
}

// LoadLevel loads and validates a level from fsys.
func LoadLevel(fsys fs.FS, name string) (*Level, error) {
	if name == "" {
		name = DefaultLevel
	}
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	return &lvl, nil
}
