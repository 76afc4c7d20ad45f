//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"sandtris/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	b, err := app.NewBoard(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(b, cfg.Scale, cfg.Rate, cfg.Seed)
	size := b.Size()

	ebiten.SetWindowTitle("sandtris")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
