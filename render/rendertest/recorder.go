// Package rendertest provides in-memory render implementations for tests.
package rendertest

import (
	"fmt"
	"image/color"

	"github.com/milk9111/tilewalk/render"
)

// Texture is a sized stand-in for a loaded image.
type Texture struct {
	Name string
	W, H int
}

func (t *Texture) Width() int  { return t.W }
func (t *Texture) Height() int { return t.H }

// Op is one recorded surface call.
type Op struct {
	Kind    string
	X, Y    float64
	W, H    float64
	Color   color.Color
	Texture render.Texture
	Src     render.Rect
	Dst     render.Rect
	// Alpha is the global alpha in effect when the call was made.
	Alpha float64
}

// Recorder is a render.Surface that remembers every call.
type Recorder struct {
	Ops   []Op
	alpha float64
	stack []float64
}

var _ render.Surface = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{alpha: 1}
}

func (r *Recorder) record(op Op) {
	op.Alpha = r.alpha
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) Save() {
	r.stack = append(r.stack, r.alpha)
	r.record(Op{Kind: "save"})
}

func (r *Recorder) Restore() {
	if n := len(r.stack); n > 0 {
		r.alpha = r.stack[n-1]
		r.stack = r.stack[:n-1]
	}
	r.record(Op{Kind: "restore"})
}

func (r *Recorder) SetGlobalAlpha(alpha float64) {
	r.alpha = alpha
	r.record(Op{Kind: "alpha", X: alpha})
}

func (r *Recorder) Scale(x, y float64) {
	r.record(Op{Kind: "scale", X: x, Y: y})
}

func (r *Recorder) Translate(x, y float64) {
	r.record(Op{Kind: "translate", X: x, Y: y})
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.record(Op{Kind: "clear", X: x, Y: y, W: w, H: h})
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.record(Op{Kind: "fill", X: x, Y: y, W: w, H: h, Color: clr})
}

func (r *Recorder) DrawImage(t render.Texture, src, dst render.Rect) {
	r.record(Op{Kind: "draw", Texture: t, Src: src, Dst: dst})
}

// Kinds lists the recorded call kinds in order.
func (r *Recorder) Kinds() []string {
	out := make([]string, 0, len(r.Ops))
	for _, op := range r.Ops {
		out = append(out, op.Kind)
	}
	return out
}

// Draws returns only the DrawImage calls.
func (r *Recorder) Draws() []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == "draw" {
			out = append(out, op)
		}
	}
	return out
}

// Loader serves textures from a map; paths missing from it fail.
type Loader struct {
	Textures map[string]*Texture
	Err      error
	Calls    []string
}

func (l *Loader) LoadTexture(path string) (render.Texture, error) {
	l.Calls = append(l.Calls, path)
	t, ok := l.Textures[path]
	if !ok {
		if l.Err != nil {
			return nil, l.Err
		}
		return nil, fmt.Errorf("rendertest: no texture %q", path)
	}
	return t, nil
}

// Offscreens hands out recording offscreen targets.
type Offscreens struct {
	Created []*Offscreen
}

func (o *Offscreens) NewOffscreen(w, h int) render.Offscreen {
	off := &Offscreen{Recorder: NewRecorder(), Tex: &Texture{Name: "offscreen", W: w, H: h}}
	o.Created = append(o.Created, off)
	return off
}

// Offscreen pairs a recorder with the texture it stands for.
type Offscreen struct {
	Recorder *Recorder
	Tex      *Texture
}

func (o *Offscreen) Surface() render.Surface { return o.Recorder }
func (o *Offscreen) Texture() render.Texture { return o.Tex }
