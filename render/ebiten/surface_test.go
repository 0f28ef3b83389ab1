package ebiten

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milk9111/tilewalk/render"
)

func TestSourceBounds(t *testing.T) {
	cases := []struct {
		name string
		src  render.Rect
		want image.Rectangle
	}{
		{"whole", render.Rect{X: 16, Y: 32, Width: 16, Height: 16}, image.Rect(16, 32, 32, 48)},
		{"crop_offset", render.Rect{X: 48, Y: 16.5, Width: 16, Height: 16}, image.Rect(48, 16, 64, 32)},
		{"empty", render.Rect{X: 4, Y: 4}, image.Rect(4, 4, 4, 4)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, sourceBounds(c.src))
		})
	}
}

func TestSurfaceStateStack(t *testing.T) {
	s := NewSurface(nil)
	s.Scale(2, 2)
	s.Save()
	s.Translate(-10, 5)
	s.SetGlobalAlpha(1.5)

	x, y := s.cur.geom.Apply(10, 0)
	assert.Equal(t, 0.0, x, "translate runs before the earlier scale")
	assert.Equal(t, 10.0, y)
	assert.Equal(t, 1.0, s.cur.alpha, "alpha is clamped")

	s.Restore()
	x, y = s.cur.geom.Apply(10, 0)
	assert.Equal(t, 20.0, x)
	assert.Equal(t, 0.0, y)

	s.Restore()
	s.Restore()
	assert.Empty(t, s.stack)

	s.Reset(nil)
	x, _ = s.cur.geom.Apply(10, 0)
	assert.Equal(t, 10.0, x)
}
