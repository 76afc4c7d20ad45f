package app

import (
	"fmt"
	"os"

	"sandtris/internal/board"
	"sandtris/internal/core"
	pcore "sandtris/pkg/core"
)

// NewBoard builds the board described by cfg: the layout file if one is
// given, an empty grid otherwise, optionally sprinkled with loose blocks.
func NewBoard(cfg *Config) (*board.Board, error) {
	g, err := initialGrid(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Scatter > 0 {
		Scatter(g, cfg.Scatter, pcore.NewRNG(cfg.Seed))
	}
	b, err := board.NewSeeded(g, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	return b, nil
}

// LoadLayout reads and parses a layout file.
func LoadLayout(path string) (core.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Grid{}, fmt.Errorf("app: read layout: %w", err)
	}
	g, err := core.ParseGrid(string(data))
	if err != nil {
		return core.Grid{}, fmt.Errorf("app: %s: %w", path, err)
	}
	return g, nil
}

// Scatter fills empty cells with random colored blocks, each with
// probability density. Existing blocks are kept.
func Scatter(g core.Grid, density float64, rng *pcore.RNG) int {
	if density > 1 {
		density = 1
	}
	placed := 0
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.At(row, col).Occupied || rng.Float64() >= density {
				continue
			}
			g.Set(row, col, core.Block(core.Color(rng.IntN(core.ColorCount))))
			placed++
		}
	}
	return placed
}

func initialGrid(cfg *Config) (core.Grid, error) {
	if cfg.Layout != "" {
		return LoadLayout(cfg.Layout)
	}
	g, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return core.Grid{}, fmt.Errorf("app: %w", err)
	}
	return g, nil
}
