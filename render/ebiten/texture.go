package ebiten

import (
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/tilewalk/assets"
	"github.com/milk9111/tilewalk/render"
)

// Texture wraps an *ebiten.Image.
type Texture struct {
	img *ebiten.Image
}

var _ render.Texture = (*Texture)(nil)

func NewTexture(img *ebiten.Image) *Texture {
	return &Texture{img: img}
}

func (t *Texture) Width() int  { return t.img.Bounds().Dx() }
func (t *Texture) Height() int { return t.img.Bounds().Dy() }

// Image returns the wrapped image.
func (t *Texture) Image() *ebiten.Image { return t.img }

// Loader decodes textures from an asset filesystem and keeps them by path.
type Loader struct {
	fsys  fs.FS
	cache map[string]*Texture
}

var _ render.TextureLoader = (*Loader)(nil)

func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, cache: make(map[string]*Texture)}
}

func (l *Loader) LoadTexture(path string) (render.Texture, error) {
	if t, ok := l.cache[path]; ok {
		return t, nil
	}
	img, err := assets.LoadImage(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("render: load texture %s: %w", path, err)
	}
	t := NewTexture(img)
	l.cache[path] = t
	return t, nil
}

// Forget drops a cached texture so the next load reads it again.
func (l *Loader) Forget(path string) {
	delete(l.cache, path)
}

// Offscreens allocates ebiten images as offscreen targets.
type Offscreens struct{}

var _ render.OffscreenRenderer = Offscreens{}

func (Offscreens) NewOffscreen(w, h int) render.Offscreen {
	img := ebiten.NewImage(w, h)
	return &Offscreen{surface: NewSurface(img), texture: NewTexture(img)}
}

// Offscreen is an image that can be drawn to and then drawn with.
type Offscreen struct {
	surface *Surface
	texture *Texture
}

func (o *Offscreen) Surface() render.Surface { return o.surface }
func (o *Offscreen) Texture() render.Texture { return o.texture }
