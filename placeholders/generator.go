// Package placeholders draws the stand-in art shipped in assets/: the player
// sheet and the two village tilesets.
package placeholders

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/colornames"

	"github.com/milk9111/tilewalk/common"
)

// TileSize is the edge of one tile or animation frame.
const TileSize = common.TileSize

// Palette holds the colors every placeholder is drawn with.
var Palette = struct {
	Grass      color.RGBA
	GrassBlade color.RGBA
	Meadow     color.RGBA
	MeadowDot  color.RGBA
	Path       color.RGBA
	PathStone  color.RGBA
	Water      color.RGBA
	Wave       color.RGBA

	Canopy  color.RGBA
	Trunk   color.RGBA
	Wall    color.RGBA
	Mortar  color.RGBA
	Roof    color.RGBA
	Shingle color.RGBA
	Fence   color.RGBA
	Stem    color.RGBA
	Petal   color.RGBA
	Pistil  color.RGBA

	Hair  color.RGBA
	Skin  color.RGBA
	Eye   color.RGBA
	Tunic color.RGBA
	Legs  color.RGBA
}{
	Grass:      colornames.Forestgreen,
	GrassBlade: colornames.Darkgreen,
	Meadow:     colornames.Seagreen,
	MeadowDot:  colornames.Mediumseagreen,
	Path:       colornames.Burlywood,
	PathStone:  colornames.Tan,
	Water:      colornames.Steelblue,
	Wave:       colornames.Lightsteelblue,

	Canopy:  colornames.Darkgreen,
	Trunk:   colornames.Saddlebrown,
	Wall:    colornames.Lightslategray,
	Mortar:  colornames.Slategray,
	Roof:    colornames.Firebrick,
	Shingle: colornames.Darkred,
	Fence:   colornames.Peru,
	Stem:    colornames.Green,
	Petal:   colornames.Gold,
	Pistil:  colornames.Orangered,

	Hair:  colornames.Sienna,
	Skin:  colornames.Peachpuff,
	Eye:   colornames.Black,
	Tunic: colornames.Royalblue,
	Legs:  colornames.Midnightblue,
}

// NewTile returns a transparent tile.
func NewTile() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
}

// FillRect paints a rectangle of img, clipped to its bounds.
func FillRect(img draw.Image, x, y, w, h int, c color.Color) {
	r := image.Rect(x, y, x+w, y+h).Intersect(img.Bounds())
	draw.Draw(img, r, &image.Uniform{c}, image.Point{}, draw.Src)
}

// CreateSolidTile creates a tile filled with one color.
func CreateSolidTile(c color.RGBA) *image.RGBA {
	img := NewTile()
	FillRect(img, 0, 0, TileSize, TileSize, c)
	return img
}

// CreateStrip lays tiles out left to right in a single row.
func CreateStrip(tiles []*image.RGBA) *image.RGBA {
	strip := image.NewRGBA(image.Rect(0, 0, len(tiles)*TileSize, TileSize))
	for i, tile := range tiles {
		if tile == nil {
			continue
		}
		dst := image.Rect(i*TileSize, 0, (i+1)*TileSize, TileSize)
		draw.Draw(strip, dst, tile, image.Point{}, draw.Src)
	}
	return strip
}

// SavePNG saves an image to a PNG file.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
