// Package render holds the drawing contracts the simulation depends on. The
// game logic never talks to a graphics library directly; each backend
// implements these interfaces once.
package render

import "image/color"

// Rect is a rectangle in source-texture or world coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Texture is an already-loaded image.
type Texture interface {
	Width() int
	Height() int
}

// Surface is a 2D drawing target with a canvas-style state stack. Scale and
// Translate apply before the transforms already on the stack, so a draw
// issued after Scale(2, 2) then Translate(-10, 0) is first moved, then scaled.
type Surface interface {
	// Save pushes the current transform and alpha.
	Save()
	// Restore pops the last saved state. Unbalanced calls are ignored.
	Restore()

	SetGlobalAlpha(alpha float64)
	Scale(x, y float64)
	Translate(x, y float64)

	// ClearRect makes the transformed rectangle fully transparent.
	ClearRect(x, y, width, height float64)
	FillRect(x, y, width, height float64, clr color.Color)

	// DrawImage copies src out of t into dst.
	DrawImage(t Texture, src, dst Rect)
}

// TextureLoader resolves a texture by path.
type TextureLoader interface {
	LoadTexture(path string) (Texture, error)
}

// Offscreen is a surface whose contents can be reused as a texture.
type Offscreen interface {
	Surface() Surface
	Texture() Texture
}

// OffscreenRenderer allocates offscreen targets.
type OffscreenRenderer interface {
	NewOffscreen(width, height int) Offscreen
}

// FullRect returns the rectangle covering all of t.
func FullRect(t Texture) Rect {
	if t == nil {
		return Rect{}
	}
	return Rect{Width: float64(t.Width()), Height: float64(t.Height())}
}
