package automaton

// Config holds the parameters of one simulation run.
type Config struct {
	Width      int     // words per row, 64 cells each
	Height     int     // generations to compute, the initial row included
	Rules      []uint8 // rule table, cycled per column unless Meta overrides it
	Meta       uint8   // adaptive meta rule selecting by density, zero disables
	Reversible bool    // XOR each row with the one two generations back
	Init       []byte  // initial row bytes, empty seeds the single center cell
}

// DefaultConfig returns a single-word automaton running 64 generations of
// rule 110.
func DefaultConfig() Config {
	return Config{Width: 1, Height: 64, Rules: []uint8{110}}
}

// normalized returns a copy with dimensions clamped to the matrix limits and
// an empty rule table replaced by the default.
func (c Config) normalized() Config {
	if c.Width < 1 {
		c.Width = 1
	} else if c.Width > MaxWidth {
		c.Width = MaxWidth
	}
	if c.Height < 2 {
		c.Height = 2
	} else if c.Height > MaxHeight {
		c.Height = MaxHeight
	}
	if len(c.Rules) == 0 {
		c.Rules = []uint8{110}
	}
	return c
}
