package obj

import "math"

// Camera is the top-left of the view in world pixels. It follows a target
// point and never shows anything past the right or bottom of the world.
type Camera struct {
	X float64
	Y float64

	viewW float64
	viewH float64
	// offsets shift both the follow point and the resting position
	offsetX float64
	offsetY float64
	worldW  float64
	worldH  float64
}

// NewCamera creates a camera for a view of the given size in world pixels.
func NewCamera(viewW, viewH float64) *Camera {
	return &Camera{viewW: viewW, viewH: viewH}
}

// SetOffset sets the scene offset and moves the camera to it.
func (c *Camera) SetOffset(x, y float64) {
	c.offsetX = x
	c.offsetY = y
	c.X = x
	c.Y = y
}

// SetWorldBounds sets the world size in pixels.
func (c *Camera) SetWorldBounds(w, h float64) {
	c.worldW = w
	c.worldH = h
}

// SetViewSize updates the view size, e.g. after a zoom change.
func (c *Camera) SetViewSize(w, h float64) {
	c.viewW = w
	c.viewH = h
}

// ViewSize returns the view size in world pixels.
func (c *Camera) ViewSize() (float64, float64) {
	return c.viewW, c.viewH
}

// SceneCenter is the world point the target must pass before the view starts
// scrolling.
func (c *Camera) SceneCenter() (float64, float64) {
	return c.viewW/2 + c.offsetX, c.viewH/2 + c.offsetY
}

// Update recomputes the view from the target's center point.
func (c *Camera) Update(targetX, targetY float64) {
	sceneX, sceneY := c.SceneCenter()
	maxX := c.worldW - c.viewW
	maxY := c.worldH - c.viewH

	scrollX := math.Max(0, targetX-sceneX)
	c.X = math.Min(c.offsetX+scrollX, maxX)

	scrollY := targetY - sceneY
	c.Y = math.Min(math.Max(0, c.offsetY+scrollY), maxY)
}
