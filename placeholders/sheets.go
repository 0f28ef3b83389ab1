package placeholders

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
)

// Terrain tile values as they appear in level layers. 0 is empty.
const (
	TerrainGrass = iota + 1
	TerrainMeadow
	TerrainPath
	TerrainWater
)

// Decoration tile values.
const (
	DecorationTree = iota + 1
	DecorationWall
	DecorationRoof
	DecorationFence
	DecorationFlower
)

// sheet columns, in the order the player clip table expects
const (
	facingDown = iota
	facingUp
	facingLeft
	facingRight
)

const walkFrames = 4

// GenerateTerrain returns the ground tileset.
func GenerateTerrain() *image.RGBA {
	grass := CreateSolidTile(Palette.Grass)
	for _, p := range [][2]int{{2, 3}, {9, 2}, {5, 9}, {12, 11}, {3, 13}} {
		FillRect(grass, p[0], p[1], 1, 2, Palette.GrassBlade)
	}

	meadow := CreateSolidTile(Palette.Meadow)
	for y := 2; y < TileSize; y += 5 {
		for x := (y / 5) % 3; x < TileSize; x += 6 {
			meadow.Set(x, y, Palette.MeadowDot)
		}
	}

	path := CreateSolidTile(Palette.Path)
	for _, p := range [][2]int{{3, 2}, {11, 5}, {6, 10}, {13, 13}} {
		FillRect(path, p[0], p[1], 2, 2, Palette.PathStone)
	}

	water := CreateSolidTile(Palette.Water)
	FillRect(water, 2, 5, 5, 1, Palette.Wave)
	FillRect(water, 9, 11, 5, 1, Palette.Wave)

	return CreateStrip([]*image.RGBA{grass, meadow, path, water})
}

// GenerateDecorations returns the tileset drawn over the terrain. Empty
// pixels stay transparent.
func GenerateDecorations() *image.RGBA {
	tree := NewTile()
	FillRect(tree, 4, 0, 8, 12, Palette.Canopy)
	FillRect(tree, 2, 2, 12, 8, Palette.Canopy)
	FillRect(tree, 7, 11, 2, 5, Palette.Trunk)

	wall := CreateSolidTile(Palette.Wall)
	for y := 3; y < TileSize; y += 4 {
		FillRect(wall, 0, y, TileSize, 1, Palette.Mortar)
	}

	roof := CreateSolidTile(Palette.Roof)
	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			if (x+y)%4 == 0 {
				roof.Set(x, y, Palette.Shingle)
			}
		}
	}

	fence := NewTile()
	FillRect(fence, 1, 4, 2, 12, Palette.Fence)
	FillRect(fence, 13, 4, 2, 12, Palette.Fence)
	FillRect(fence, 0, 6, TileSize, 2, Palette.Fence)
	FillRect(fence, 0, 11, TileSize, 2, Palette.Fence)

	flower := NewTile()
	FillRect(flower, 7, 8, 1, 5, Palette.Stem)
	FillRect(flower, 6, 6, 3, 3, Palette.Petal)
	flower.Set(7, 7, Palette.Pistil)

	return CreateStrip([]*image.RGBA{tree, wall, roof, fence, flower})
}

// GeneratePlayerSheet returns the walking sheet: one column per direction
// (down, up, left, right) with the frames stacked vertically. The left column
// is drawn facing right because left-facing sprites are mirrored on screen.
func GeneratePlayerSheet() *image.RGBA {
	sheet := image.NewRGBA(image.Rect(0, 0, 4*TileSize, walkFrames*TileSize))
	for col := facingDown; col <= facingRight; col++ {
		for frame := 0; frame < walkFrames; frame++ {
			drawWalker(sheet, col*TileSize, frame*TileSize, col, frame)
		}
	}
	return sheet
}

func drawWalker(img *image.RGBA, ox, oy, facing, frame int) {
	if facing == facingUp {
		FillRect(img, ox+4, oy+1, 8, 7, Palette.Hair)
	} else {
		FillRect(img, ox+4, oy+1, 8, 3, Palette.Hair)
		FillRect(img, ox+4, oy+4, 8, 4, Palette.Skin)
	}

	switch facing {
	case facingDown:
		img.Set(ox+6, oy+5, Palette.Eye)
		img.Set(ox+9, oy+5, Palette.Eye)
	case facingLeft, facingRight:
		img.Set(ox+10, oy+5, Palette.Eye)
	}

	FillRect(img, ox+4, oy+8, 8, 5, Palette.Tunic)

	// frames 1 and 3 lift one leg each
	left, right := 3, 3
	switch frame {
	case 1:
		left = 2
	case 3:
		right = 2
	}
	FillRect(img, ox+5, oy+13, 2, left, Palette.Legs)
	FillRect(img, ox+9, oy+13, 2, right, Palette.Legs)
}

// Sheets maps every generated file name to its image.
func Sheets() map[string]image.Image {
	return map[string]image.Image{
		"player.png":      GeneratePlayerSheet(),
		"terrain.png":     GenerateTerrain(),
		"decorations.png": GenerateDecorations(),
	}
}

// GenerateAndSave writes every sheet into dir and returns the written paths.
func GenerateAndSave(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("placeholders: create %s: %w", dir, err)
	}

	sheets := Sheets()
	names := make([]string, 0, len(sheets))
	for name := range sheets {
		names = append(names, name)
	}
	sort.Strings(names)

	written := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := SavePNG(sheets[name], path); err != nil {
			return written, fmt.Errorf("placeholders: save %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
