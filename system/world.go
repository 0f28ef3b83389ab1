package system

import (
	"fmt"
	"image/color"
	"log"

	"github.com/milk9111/tilewalk/levels"
	"github.com/milk9111/tilewalk/obj"
	"github.com/milk9111/tilewalk/render"
)

// DefaultObstacleColor tints collision blocks in debug mode.
var DefaultObstacleColor = color.NRGBA{R: 255, A: 128}

// Textures are the rendering collaborators a world draws with. Either may be
// nil, in which case the matching texture is simply never drawn.
type Textures struct {
	Loader     render.TextureLoader
	Offscreens render.OffscreenRenderer
}

// World owns the level, the player and the camera, and runs one tick of the
// simulation at a time.
type World struct {
	Level  *obj.Level
	Player *obj.Player
	Camera *obj.Camera
	Input  *obj.Input

	Debug         bool
	ObstacleColor color.Color

	loader     render.TextureLoader
	sprite     string
	sceneScale float64
	canvasW    float64
	canvasH    float64
}

// NewWorld builds a world for lvl. The player starts on the camera's scene
// center, and the background is composited once up front.
func NewWorld(lvl *levels.Level, specs Specs, tex Textures) (*World, error) {
	if lvl == nil {
		return nil, fmt.Errorf("system: new world: level is nil")
	}
	specs = specs.withDefaults()

	viewW, viewH := specs.Camera.ViewSize()
	cam := obj.NewCamera(viewW, viewH)
	cam.SetOffset(specs.Camera.OffsetX, specs.Camera.OffsetY)

	level := obj.NewLevel(lvl)
	cam.SetWorldBounds(level.PixelSize())

	startX, startY := cam.SceneCenter()
	w := &World{
		Level:         level,
		Player:        obj.NewPlayer(startX, startY, obj.DefaultSize),
		Camera:        cam,
		Input:         obj.NewInput(),
		ObstacleColor: DefaultObstacleColor,
		loader:        tex.Loader,
	}
	if err := w.ApplySpecs(specs); err != nil {
		return nil, err
	}

	if tex.Loader != nil && tex.Offscreens != nil {
		level.BuildBackground(tex.Loader, tex.Offscreens)
	}
	return w, nil
}

// ApplySpecs pushes tuning onto the running world. Position, velocity and the
// active clip are kept so it is safe to call after a hot reload.
func (w *World) ApplySpecs(specs Specs) error {
	specs = specs.withDefaults()

	clips, err := specs.Player.Animation.ClipSet()
	if err != nil {
		return err
	}
	interval := specs.Player.Animation.FrameInterval
	if interval <= 0 {
		interval = obj.DefaultFrameInterval
	}

	p := w.Player
	p.SetClips(clips, interval)
	p.Invincible = specs.Player.Invincible
	p.MoveSpeed = positiveOr(specs.Player.MoveSpeed, obj.DefaultMoveSpeed)
	p.CropOffset = positiveOr(specs.Player.Sprite.CropOffset, obj.DefaultCropOffset)
	size := positiveOr(specs.Player.Size, obj.DefaultSize)
	p.Width, p.Height = size, size

	if img := specs.Player.Sprite.Image; img != w.sprite && w.loader != nil {
		t, err := w.loader.LoadTexture(img)
		if err != nil {
			log.Printf("world: load player sprite %s: %v", img, err)
		} else {
			p.Texture = t
			w.sprite = img
		}
	}

	w.sceneScale = specs.Camera.SceneScale()
	w.canvasW, w.canvasH = specs.Camera.CanvasSize()
	w.Camera.SetViewSize(specs.Camera.ViewSize())
	w.Camera.SetOffset(specs.Camera.OffsetX, specs.Camera.OffsetY)
	w.Camera.Update(p.Center())

	if c := specs.World.Debug.ObstacleColor; c != nil && c.Color != nil {
		w.ObstacleColor = c.Color
	}
	return nil
}

// SceneScale is the world-to-canvas zoom.
func (w *World) SceneScale() float64 {
	return w.sceneScale
}

// CanvasSize is the drawing area in device pixels.
func (w *World) CanvasSize() (float64, float64) {
	return w.canvasW, w.canvasH
}

// Step advances the simulation by dt seconds: input, then the player, then
// the camera.
func (w *World) Step(dt float64) {
	w.Player.HandleInput(w.Input)
	w.Player.Update(dt, w.Level.CollisionWorld)
	w.Camera.Update(w.Player.Center())
}

// Draw renders one frame in world space.
func (w *World) Draw(s render.Surface) {
	s.Save()
	s.Scale(w.sceneScale, w.sceneScale)
	s.Translate(-w.Camera.X, -w.Camera.Y)
	s.ClearRect(0, 0, w.canvasW, w.canvasH)

	if bg := w.Level.Background; bg != nil {
		s.DrawImage(bg, render.FullRect(bg), render.FullRect(bg))
	}

	if w.Debug {
		for _, o := range w.Level.CollisionWorld.Obstacles() {
			s.FillRect(o.X, o.Y, o.Width, o.Height, w.ObstacleColor)
		}
	}

	w.Player.Draw(s)
	s.Restore()
}

func positiveOr(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}
