package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/tilewalk/common"
)

func main() {
	var opts Options
	flag.StringVar(&opts.Level, "level", "", "level name in levels/ or a path to a level file (default from prefabs/world.yaml)")
	flag.StringVar(&opts.AssetsDir, "assets", "", "directory whose images override the embedded assets")
	flag.BoolVar(&opts.Debug, "debug", false, "draw collision blocks and a status line")
	flag.BoolVar(&opts.Watch, "watch", false, "reload prefabs/*.yaml when they change on disk")
	flag.Float64Var(&opts.DPR, "dpr", 0, "device pixel ratio; 0 uses prefabs/camera.yaml or the monitor")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("tilewalk")

	game, err := NewGame(opts)
	if err != nil {
		log.Fatal(err)
	}

	err = ebiten.RunGame(game)
	if cerr := game.Close(); cerr != nil {
		log.Printf("close: %v", cerr)
	}
	if err != nil {
		log.Fatal(err)
	}
}
