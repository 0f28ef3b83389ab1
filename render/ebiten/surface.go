// Package ebiten implements the render contracts on top of Ebitengine.
package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/tilewalk/common"
	"github.com/milk9111/tilewalk/render"
)

type state struct {
	geom  ebiten.GeoM
	alpha float64
}

// Surface draws onto an *ebiten.Image with canvas-style transforms.
type Surface struct {
	dst   *ebiten.Image
	cur   state
	stack []state
}

var _ render.Surface = (*Surface)(nil)

// NewSurface wraps dst with an identity transform and full opacity.
func NewSurface(dst *ebiten.Image) *Surface {
	return &Surface{dst: dst, cur: state{alpha: 1}}
}

// Reset retargets the surface and drops any saved state, so one Surface can
// be reused across frames.
func (s *Surface) Reset(dst *ebiten.Image) {
	s.dst = dst
	s.cur = state{alpha: 1}
	s.stack = s.stack[:0]
}

func (s *Surface) Save() {
	s.stack = append(s.stack, s.cur)
}

func (s *Surface) Restore() {
	n := len(s.stack)
	if n == 0 {
		return
	}
	s.cur = s.stack[n-1]
	s.stack = s.stack[:n-1]
}

func (s *Surface) SetGlobalAlpha(alpha float64) {
	s.cur.alpha = common.Clamp(alpha, 0, 1)
}

func (s *Surface) Scale(x, y float64) {
	var m ebiten.GeoM
	m.Scale(x, y)
	s.prepend(m)
}

func (s *Surface) Translate(x, y float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	s.prepend(m)
}

// prepend applies m before the current transform.
func (s *Surface) prepend(m ebiten.GeoM) {
	m.Concat(s.cur.geom)
	s.cur.geom = m
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	op := s.rectOptions(x, y, w, h)
	op.Blend = ebiten.BlendClear
	s.dst.DrawImage(pixel(), op)
}

func (s *Surface) FillRect(x, y, w, h float64, clr color.Color) {
	op := s.rectOptions(x, y, w, h)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(s.cur.alpha))
	s.dst.DrawImage(pixel(), op)
}

func (s *Surface) rectOptions(x, y, w, h float64) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(s.cur.geom)
	return op
}

// DrawImage blits src of t into dst. Textures from other backends and empty
// source rects are ignored.
func (s *Surface) DrawImage(t render.Texture, src, dst render.Rect) {
	tex, ok := t.(*Texture)
	if !ok || tex == nil || tex.img == nil {
		return
	}
	r := sourceBounds(src).Intersect(tex.img.Bounds())
	if r.Empty() {
		return
	}
	sub := tex.img.SubImage(r).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.Width/float64(r.Dx()), dst.Height/float64(r.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	op.GeoM.Concat(s.cur.geom)
	op.ColorScale.ScaleAlpha(float32(s.cur.alpha))
	op.Filter = ebiten.FilterNearest
	s.dst.DrawImage(sub, op)
}

// sourceBounds snaps a source rect to whole pixels. Fractional crop offsets
// are truncated, which keeps sampling inside the intended frame.
func sourceBounds(src render.Rect) image.Rectangle {
	return image.Rect(
		int(src.X),
		int(src.Y),
		int(src.X+src.Width),
		int(src.Y+src.Height),
	)
}

var whitePixel *ebiten.Image

func pixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}
