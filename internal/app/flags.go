package app

import (
	"flag"

	"sandtris/internal/board"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Width   int
	Height  int
	Scale   int
	TPS     int
	Rate    int
	Seed    int64
	Layout  string
	Scatter float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := board.DefaultConfig()
	return &Config{
		Width:  def.Width,
		Height: def.Height,
		Scale:  24,
		TPS:    60,
		Rate:   1,
		Seed:   def.Seed,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "board ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for piece selection")
	fs.StringVar(&c.Layout, "layout", c.Layout, "initial layout file (overrides -w and -h)")
	fs.Float64Var(&c.Scatter, "scatter", c.Scatter, "fraction of cells to fill with random loose blocks")
}

// Board returns the board-level part of the configuration.
func (c *Config) Board() board.Config {
	return board.Config{Width: c.Width, Height: c.Height, Seed: c.Seed}
}
