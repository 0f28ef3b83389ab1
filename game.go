package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/tilewalk/assets"
	"github.com/milk9111/tilewalk/common"
	"github.com/milk9111/tilewalk/levels"
	"github.com/milk9111/tilewalk/prefabs"
	ebitenrender "github.com/milk9111/tilewalk/render/ebiten"
	"github.com/milk9111/tilewalk/system"
)

// Options are the command line settings.
type Options struct {
	Level     string
	AssetsDir string
	Debug     bool
	Watch     bool
	DPR       float64
}

type Game struct {
	frames int

	world    *system.World
	specs    system.Specs
	keyboard *Keyboard
	clock    *common.Clock
	surface  *ebitenrender.Surface
	watcher  *prefabs.Watcher

	pauseUI *ebitenui.UI
	paused  bool
	focused bool
	quit    bool
	debug   bool
}

func NewGame(opts Options) (*Game, error) {
	specs, err := system.LoadSpecs()
	if err != nil {
		return nil, err
	}
	switch {
	case opts.DPR > 0:
		specs.Camera.DevicePixelRatio = opts.DPR
	case specs.Camera.DevicePixelRatio <= 0:
		specs.Camera.DevicePixelRatio = ebiten.Monitor().DeviceScaleFactor()
	}

	name := opts.Level
	if name == "" {
		name = specs.World.Level
	}
	lvl, err := loadLevel(name)
	if err != nil {
		return nil, err
	}

	tex := system.Textures{
		Loader:     ebitenrender.NewLoader(assets.FS(opts.AssetsDir)),
		Offscreens: ebitenrender.Offscreens{},
	}
	world, err := system.NewWorld(lvl, specs, tex)
	if err != nil {
		return nil, err
	}
	world.Debug = opts.Debug

	g := &Game{
		world:    world,
		specs:    specs,
		keyboard: NewKeyboard(),
		clock:    common.NewClock(nil),
		surface:  ebitenrender.NewSurface(nil),
		focused:  true,
		debug:    opts.Debug,
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("game: watch %s: %v", prefabs.Dir, err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// loadLevel prefers a level file on disk and falls back to the embedded
// levels.
func loadLevel(name string) (*levels.Level, error) {
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return levels.LoadLevel(os.DirFS(filepath.Dir(name)), filepath.Base(name))
	}
	return levels.LoadLevelFromFS(name)
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++
	g.reloadSpecs()

	if !ebiten.IsFocused() {
		if g.focused {
			g.world.Input.ReleaseAll()
			g.paused = true
		}
		g.focused = false
		return nil
	}
	if !g.focused {
		g.focused = true
		g.clock.Reset()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.keyboard.Update(g.world.Input)
	g.world.Step(g.clock.Tick())
	return nil
}

func (g *Game) setPaused(paused bool) {
	if paused {
		g.world.Input.ReleaseAll()
	} else {
		g.keyboard.Sync(g.world.Input)
		g.clock.Reset()
	}
	g.paused = paused
}

func (g *Game) reloadSpecs() {
	if g.watcher == nil {
		return
	}
	g.logWatchErrors()

	changed := g.watcher.Drain()
	if len(changed) == 0 {
		return
	}
	specs, err := g.specs.Reload(changed...)
	if err != nil {
		log.Printf("game: %v", err)
		return
	}
	if err := g.world.ApplySpecs(specs); err != nil {
		log.Printf("game: apply %s: %v", strings.Join(changed, ", "), err)
		return
	}
	g.specs = specs
	for _, name := range changed {
		if path, modified, ok := prefabs.Override(name); ok {
			log.Printf("game: reloaded %s (%s)", path, modified.Format(time.TimeOnly))
		} else {
			log.Printf("game: reloaded embedded %s", name)
		}
	}
}

func (g *Game) logWatchErrors() {
	for {
		select {
		case err, ok := <-g.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("game: watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Reset(screen)
	g.world.Draw(g.surface)

	if g.debug {
		p := g.world.Player
		anim := p.Animation()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"Frames: %d  FPS: %.2f\nPos: %.1f, %.1f  Vel: %.0f, %.0f\nFacing: %s  Clip: %s/%d\nCamera: %.1f, %.1f",
			g.frames, ebiten.ActualFPS(),
			p.X, p.Y, p.VelocityX, p.VelocityY,
			p.Facing, anim.Clip(), anim.Frame(),
			g.world.Camera.X, g.world.Camera.Y,
		))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.world.CanvasSize()
	return int(w), int(h)
}

// Close stops the spec watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
