package app

import (
	"flag"

	"ca1d/internal/automaton"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Rules      string
	Meta       uint
	Reversible bool
	Width      int
	Height     int
	Init       string
	Scale      int
	RPS        int
	TPS        int
	Seed       int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Rules: "110", Width: 1, Height: 64, Scale: 8, RPS: 30, TPS: 60, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Rules, "rules", c.Rules, "rule numbers cycled across words, e.g. 110,30")
	fs.UintVar(&c.Meta, "meta", c.Meta, "meta rule picking rules by word density, 0 disables")
	fs.BoolVar(&c.Reversible, "reversible", c.Reversible, "XOR each row with the row two generations back")
	fs.IntVar(&c.Width, "width", c.Width, "width in 64-cell words")
	fs.IntVar(&c.Height, "height", c.Height, "number of generations")
	fs.StringVar(&c.Init, "init", c.Init, "bytes seeding the first row, empty for a single center cell")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.RPS, "rps", c.RPS, "rows revealed per second")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random initial rows")
}

// Automaton converts the parsed flags into an engine configuration.
// Values outside the engine's ranges fall back to the defaults.
func (c *Config) Automaton() automaton.Config {
	cfg := automaton.Config{
		Width:      c.Width,
		Height:     c.Height,
		Reversible: c.Reversible,
		Init:       []byte(c.Init),
	}
	if rules := automaton.ParseRules(c.Rules); rules != nil {
		cfg.Rules = rules
	} else {
		cfg.Rules = automaton.DefaultConfig().Rules
	}
	if c.Meta <= 255 {
		cfg.Meta = uint8(c.Meta)
	}
	return cfg
}
