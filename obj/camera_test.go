package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testViewW = 1024.0 / 3
	testViewH = 576.0 / 3
)

func newVillageCamera() *Camera {
	c := NewCamera(testViewW, testViewH)
	c.SetWorldBounds(43*16, 38*16)
	return c
}

func TestCameraStaysInBounds(t *testing.T) {
	c := newVillageCamera()
	maxX, maxY := 43*16-testViewW, 38*16-testViewH

	for x := 0.0; x <= 43*16; x += 7.5 {
		for y := 0.0; y <= 38*16; y += 7.5 {
			c.Update(x, y)
			assert.GreaterOrEqual(t, c.X, 0.0)
			assert.LessOrEqual(t, c.X, maxX)
			assert.GreaterOrEqual(t, c.Y, 0.0)
			assert.LessOrEqual(t, c.Y, maxY)
		}
	}
}

func TestCameraFollow(t *testing.T) {
	cases := []struct {
		name   string
		tx, ty float64
		x, y   float64
	}{
		{"at_scene_center", testViewW / 2, testViewH / 2, 0, 0},
		{"top_left_corner", 0, 0, 0, 0},
		{"scrolling", 300, 250, 300 - testViewW/2, 250 - testViewH/2},
		{"bottom_right_corner", 43 * 16, 38 * 16, 43*16 - testViewW, 38*16 - testViewH},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := newVillageCamera()
			cam.Update(c.tx, c.ty)
			assert.InDelta(t, c.x, cam.X, 1e-9)
			assert.InDelta(t, c.y, cam.Y, 1e-9)
		})
	}
}

func TestCameraUpdateIsIdempotent(t *testing.T) {
	c := newVillageCamera()
	c.Update(412.5, 301.25)
	x, y := c.X, c.Y
	c.Update(412.5, 301.25)
	assert.Equal(t, x, c.X)
	assert.Equal(t, y, c.Y)
}

func TestCameraOffset(t *testing.T) {
	c := newVillageCamera()
	c.SetOffset(10, 20)
	assert.Equal(t, 10.0, c.X)
	assert.Equal(t, 20.0, c.Y)

	sx, sy := c.SceneCenter()
	assert.InDelta(t, testViewW/2+10, sx, 1e-9)
	assert.InDelta(t, testViewH/2+20, sy, 1e-9)

	// the target sitting on the scene center rests the camera on the offset
	c.Update(sx, sy)
	assert.InDelta(t, 10, c.X, 1e-9)
	assert.InDelta(t, 20, c.Y, 1e-9)

	c.Update(sx+50, sy+30)
	assert.InDelta(t, 60, c.X, 1e-9)
	assert.InDelta(t, 50, c.Y, 1e-9)
}

func TestCameraSmallWorld(t *testing.T) {
	// a map narrower than the view pins the camera left of the origin
	c := NewCamera(200, 100)
	c.SetWorldBounds(160, 160)
	c.Update(80, 80)
	assert.Equal(t, -40.0, c.X)
	assert.Equal(t, 30.0, c.Y)
}

func TestCameraSetViewSize(t *testing.T) {
	c := newVillageCamera()
	c.SetViewSize(200, 100)
	w, h := c.ViewSize()
	assert.Equal(t, 200.0, w)
	assert.Equal(t, 100.0, h)

	c.Update(43*16, 38*16)
	assert.Equal(t, 43*16-200.0, c.X)
	assert.Equal(t, 38*16-100.0, c.Y)
}
