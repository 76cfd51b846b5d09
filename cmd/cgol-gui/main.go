//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"cgol/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	logger := log.New(os.Stderr, "cgol ", log.LstdFlags)
	game, err := app.New(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("cgol")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(160*game.Scale(), 90*game.Scale())
	if cfg.FPS > 0 {
		ebiten.SetTPS(cfg.FPS)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	game.Controller().Release()
}
