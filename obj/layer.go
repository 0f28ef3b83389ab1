package obj

import (
	"math"

	"github.com/milk9111/tilewalk/levels"
	"github.com/milk9111/tilewalk/render"
)

// Layer draws one tile layer of a level.
type Layer struct {
	Index   int
	Data    levels.Layer
	Tileset render.Texture

	// srcSize is the tile edge on the tileset, dstSize the edge in the world
	srcSize int
	dstSize int
}

// NewLayer constructs a Layer from a Level and layer index. The tileset is
// left for the caller to resolve.
func NewLayer(l *Level, idx int) *Layer {
	data := l.Data.Layers[idx]
	return &Layer{
		Index:   idx,
		Data:    data,
		srcSize: l.Data.LayerTileSize(data),
		dstSize: l.Data.TileSize,
	}
}

// TileSource returns where tile value v sits on a tileset that is
// tilesetWidth pixels wide. Values start at 1; 0 means no tile.
func TileSource(v, tilesetWidth, tileSize int) render.Rect {
	idx := v - 1
	perRow := int(math.Ceil(float64(tilesetWidth) / float64(tileSize)))
	if perRow < 1 {
		perRow = 1
	}
	return render.Rect{
		X:      float64((idx % perRow) * tileSize),
		Y:      float64((idx / perRow) * tileSize),
		Width:  float64(tileSize),
		Height: float64(tileSize),
	}
}

// Draw blits every non-empty tile of the layer.
func (ly *Layer) Draw(s render.Surface) {
	if ly == nil || ly.Tileset == nil {
		return
	}
	size := float64(ly.dstSize)
	for row, cells := range ly.Data.Tiles {
		for col, v := range cells {
			if v <= 0 {
				continue
			}
			src := TileSource(v, ly.Tileset.Width(), ly.srcSize)
			dst := render.Rect{X: float64(col) * size, Y: float64(row) * size, Width: size, Height: size}
			s.DrawImage(ly.Tileset, src, dst)
		}
	}
}
