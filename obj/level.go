package obj

import (
	"log"
	"math"

	"github.com/milk9111/tilewalk/levels"
	"github.com/milk9111/tilewalk/render"
)

// Level pairs the loaded map data with its collision world and the
// background pre-rendered from its tile layers.
type Level struct {
	Data           *levels.Level
	CollisionWorld *CollisionWorld
	Background     render.Texture

	// cache of loaded tileset textures keyed by path
	tilesets map[string]render.Texture
}

// NewLevel builds the collision world for lvl. The background stays nil
// until BuildBackground is called.
func NewLevel(lvl *levels.Level) *Level {
	return &Level{
		Data:           lvl,
		CollisionWorld: NewCollisionWorld(lvl.Collisions, float64(lvl.TileSize)),
		tilesets:       make(map[string]render.Texture),
	}
}

// PixelSize returns the map size in world pixels.
func (l *Level) PixelSize() (float64, float64) {
	return l.Data.PixelSize()
}

// BuildBackground draws every tile layer, bottom first, onto one offscreen
// target sized to the map and keeps it as the level background. A layer whose
// tileset fails to load is logged and left out.
func (l *Level) BuildBackground(loader render.TextureLoader, offscreens render.OffscreenRenderer) render.Texture {
	w, h := l.PixelSize()
	off := offscreens.NewOffscreen(int(math.Ceil(w)), int(math.Ceil(h)))
	s := off.Surface()

	for i := range l.Data.Layers {
		layer := NewLayer(l, i)
		tileset, err := l.tileset(loader, layer.Data.Tileset)
		if err != nil {
			log.Printf("level: layer %q: load tileset %s: %v", layer.Data.Name, layer.Data.Tileset, err)
			continue
		}
		layer.Tileset = tileset
		layer.Draw(s)
	}

	l.Background = off.Texture()
	return l.Background
}

func (l *Level) tileset(loader render.TextureLoader, path string) (render.Texture, error) {
	if t, ok := l.tilesets[path]; ok {
		return t, nil
	}
	t, err := loader.LoadTexture(path)
	if err != nil {
		return nil, err
	}
	l.tilesets[path] = t
	return t, nil
}
