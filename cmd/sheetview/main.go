package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/tilewalk/assets"
	"github.com/milk9111/tilewalk/component"
	"github.com/milk9111/tilewalk/prefabs"
	"github.com/milk9111/tilewalk/render"
	ebitenrender "github.com/milk9111/tilewalk/render/ebiten"
)

const viewSize = 256

type viewer struct {
	sheet   render.Texture
	anim    component.Animator
	scale   float64
	surface *ebitenrender.Surface
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.anim.Play(v.anim.Clip().Next())
	}
	v.anim.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	def := v.anim.Current()
	src := render.Rect{
		X:      float64(def.X),
		Y:      float64(def.Y + def.Height*v.anim.Frame()),
		Width:  float64(def.Width),
		Height: float64(def.Height),
	}
	w, h := src.Width*v.scale, src.Height*v.scale

	v.surface.Reset(screen)
	v.surface.DrawImage(v.sheet, src, render.Rect{X: (viewSize - w) / 2, Y: (viewSize - h) / 2, Width: w, Height: h})

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s %d/%d\nspace: next clip", v.anim.Clip(), v.anim.Frame()+1, def.Frames))
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	assetsDir := flag.String("assets", "", "directory whose images override the embedded assets")
	clipName := flag.String("clip", component.ClipWalkDown.String(), "clip to start on")
	scale := flag.Float64("scale", 8, "zoom applied to each frame")
	flag.Parse()

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}
	clips, err := spec.Animation.ClipSet()
	if err != nil {
		log.Fatal(err)
	}
	clip, err := component.ParseClip(*clipName)
	if err != nil {
		log.Fatal(err)
	}

	sheetPath := spec.Sprite.Image
	if sheetPath == "" {
		sheetPath = assets.PlayerSheet
	}
	sheet, err := ebitenrender.NewLoader(assets.FS(*assetsDir)).LoadTexture(sheetPath)
	if err != nil {
		log.Fatal(err)
	}

	interval := spec.Animation.FrameInterval
	if interval <= 0 {
		interval = 0.1
	}
	v := &viewer{
		sheet:   sheet,
		anim:    component.NewAnimator(clips, interval),
		scale:   *scale,
		surface: ebitenrender.NewSurface(nil),
	}
	v.anim.Play(clip)

	ebiten.SetWindowSize(viewSize*2, viewSize*2)
	ebiten.SetWindowTitle("tilewalk sheet viewer")
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
