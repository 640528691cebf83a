package automaton

import "ca1d/pkg/bitrow"

// ruleSelector resolves the rule applied to one word of the next
// generation.
type ruleSelector interface {
	rule(col int, left, center, right bitrow.Word) uint8
}

// fixedSelector cycles the configured rule table by column.
type fixedSelector struct {
	rules []uint8
}

func (s fixedSelector) rule(col int, _, _, _ bitrow.Word) uint8 {
	return s.rules[col%len(s.rules)]
}

// adaptiveSelector picks a table slot by neighborhood density under the
// meta rule. Slots beyond the configured table hold rule zero.
type adaptiveSelector struct {
	meta  uint8
	slots [8]uint8
}

func newAdaptiveSelector(meta uint8, rules []uint8) adaptiveSelector {
	s := adaptiveSelector{meta: meta}
	copy(s.slots[:], rules)
	return s
}

func (s adaptiveSelector) rule(_ int, left, center, right bitrow.Word) uint8 {
	return s.slots[bitrow.Select(s.meta, left, center, right)]
}

// Run executes the configured simulation and returns the populated matrix.
// Rows are computed strictly in generation order: row g derives from row
// g-1 with toroidal word wraparound, and when the run is reversible every
// row from generation 2 on is additionally XORed with the row two
// generations back. The result is a pure function of the configuration.
func Run(cfg Config) *Matrix {
	cfg = cfg.normalized()
	m := NewMatrix(cfg.Width, cfg.Height)
	seedRow(m.Row(0), cfg.Init)

	var sel ruleSelector = fixedSelector{rules: cfg.Rules}
	if cfg.Meta != 0 {
		sel = newAdaptiveSelector(cfg.Meta, cfg.Rules)
	}

	w := m.Width()
	for g := 1; g < m.Height(); g++ {
		cur := m.Row(g - 1)
		next := m.Row(g)
		var prev []bitrow.Word
		if cfg.Reversible && g >= 2 {
			prev = m.Row(g - 2)
		}
		for i := 0; i < w; i++ {
			left := cur[(i-1+w)%w]
			right := cur[(i+1)%w]
			var carry bitrow.Word
			if prev != nil {
				carry = prev[i]
			}
			next[i] = bitrow.Apply(sel.rule(i, left, cur[i], right), left, cur[i], right, carry)
		}
	}
	return m
}
