package automaton

import (
	"slices"
	"testing"

	"ca1d/pkg/bitrow"
)

// rowBytes packs words into the byte form Config.Init expects, first word
// first, big-endian within each word.
func rowBytes(words ...bitrow.Word) []byte {
	buf := make([]byte, 0, len(words)*8)
	for _, w := range words {
		for shift := 56; shift >= 0; shift -= 8 {
			buf = append(buf, byte(w>>uint(shift)))
		}
	}
	return buf
}

func TestRule110Triangle(t *testing.T) {
	m := Run(Config{
		Width:  1,
		Height: 8,
		Rules:  []uint8{110},
		Init:   rowBytes(0x1),
	})

	// First eight generations of rule 110 grown from the rightmost cell.
	want := []bitrow.Word{0x01, 0x03, 0x07, 0x0D, 0x1F, 0x31, 0x73, 0xD7}
	for g, w := range want {
		if got := m.Row(g)[0]; got != w {
			t.Fatalf("generation %d = %#x, want %#x", g, got, w)
		}
	}
}

func TestDefaultSeedCenterCell(t *testing.T) {
	cases := []struct {
		width int
		want  []bitrow.Word
	}{
		{1, []bitrow.Word{1 << 31}},
		{2, []bitrow.Word{0, 1 << 63}},
		{3, []bitrow.Word{0, 1 << 31, 0}},
		{4, []bitrow.Word{0, 0, 1 << 63, 0}},
	}
	for _, tc := range cases {
		m := Run(Config{Width: tc.width, Height: 2, Rules: []uint8{110}})
		if !slices.Equal(m.Row(0), tc.want) {
			t.Fatalf("width %d: seed row %#x, want %#x", tc.width, m.Row(0), tc.want)
		}
	}
}

func TestSeedBytesFillLeftToRight(t *testing.T) {
	m := Run(Config{Width: 1, Height: 2, Rules: []uint8{110}, Init: []byte("AB")})
	if got := m.Row(0)[0]; got != 0x4142000000000000 {
		t.Fatalf("seed row = %#x, want %#x", got, bitrow.Word(0x4142000000000000))
	}
	// 'A' is 0x41, so cells 1 and 7 of the first byte are set.
	for _, tc := range []struct {
		cell int
		want bool
	}{
		{0, false}, {1, true}, {7, true}, {8, false}, {9, true}, {16, false},
	} {
		if got := m.Bit(tc.cell, 0); got != tc.want {
			t.Fatalf("cell %d = %v, want %v", tc.cell, got, tc.want)
		}
	}
}

func TestSeedBytesTruncateAndPad(t *testing.T) {
	long := Run(Config{
		Width:  1,
		Height: 2,
		Rules:  []uint8{110},
		Init:   []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	})
	if got := long.Row(0)[0]; got != 0x0102030405060708 {
		t.Fatalf("truncated seed = %#x, want %#x", got, bitrow.Word(0x0102030405060708))
	}

	short := Run(Config{Width: 2, Height: 2, Rules: []uint8{110}, Init: []byte{0xFF}})
	if !slices.Equal(short.Row(0), []bitrow.Word{0xFF00000000000000, 0}) {
		t.Fatalf("padded seed = %#x", short.Row(0))
	}
}

func TestToroidalWraparound(t *testing.T) {
	// Rule 16 fires only on pattern 100, so a lone cell propagates one
	// step to the right each generation, across word and row boundaries.
	m := Run(Config{
		Width:  2,
		Height: 2,
		Rules:  []uint8{16},
		Init:   rowBytes(0, 0x1),
	})
	if !slices.Equal(m.Row(1), []bitrow.Word{0x8000000000000000, 0}) {
		t.Fatalf("last cell did not wrap to the row head, row 1 = %#x", m.Row(1))
	}

	// A single word is its own left and right neighbor.
	single := Run(Config{
		Width:  1,
		Height: 2,
		Rules:  []uint8{16},
		Init:   rowBytes(0x1),
	})
	if got := single.Row(1)[0]; got != 0x8000000000000000 {
		t.Fatalf("self-wrap row 1 = %#x, want %#x", got, bitrow.Word(0x8000000000000000))
	}
}

func TestReversibleRoundTrip(t *testing.T) {
	m := Run(Config{
		Width:      1,
		Height:     5,
		Rules:      []uint8{110},
		Reversible: true,
	})

	// Reapplying the rule to row g-1 with row g as the carry must
	// reconstruct row g-2, since the XOR perturbation is involutive.
	for g := 2; g < m.Height(); g++ {
		c := m.Row(g - 1)[0]
		back := bitrow.Apply(110, c, c, c, m.Row(g)[0])
		if want := m.Row(g - 2)[0]; back != want {
			t.Fatalf("generation %d: reconstructed %#x, want %#x", g, back, want)
		}
	}
}

func TestReversibleFirstStepCarriesZero(t *testing.T) {
	rev := Run(Config{Width: 1, Height: 3, Rules: []uint8{30}, Reversible: true})
	plain := Run(Config{Width: 1, Height: 3, Rules: []uint8{30}})
	if rev.Row(1)[0] != plain.Row(1)[0] {
		t.Fatalf("row 1 must ignore the flag: reversible %#x, plain %#x", rev.Row(1)[0], plain.Row(1)[0])
	}
	if rev.Row(2)[0] == plain.Row(2)[0] {
		t.Fatal("row 2 should differ once the carry row exists")
	}
}

func TestRulesCycleByColumn(t *testing.T) {
	m := Run(Config{
		Width:  3,
		Height: 3,
		Rules:  []uint8{255, 0},
	})
	want := []bitrow.Word{^bitrow.Word(0), 0, ^bitrow.Word(0)}
	for g := 1; g < m.Height(); g++ {
		if !slices.Equal(m.Row(g), want) {
			t.Fatalf("generation %d = %#x, want %#x", g, m.Row(g), want)
		}
	}
}

func TestMetaSelectsSlotByDensity(t *testing.T) {
	// One sparse and one dense word give word 0 density context 101 and
	// word 1 context 010. With meta 1 both meta bits are clear, so each
	// word selects the slot named by its own context, and slots past the
	// two configured rules hold rule zero.
	padded := Run(Config{
		Width:  2,
		Height: 2,
		Rules:  []uint8{3, 110},
		Meta:   1,
		Init:   rowBytes(0, ^bitrow.Word(0)),
	})
	if !slices.Equal(padded.Row(1), []bitrow.Word{0, 0}) {
		t.Fatalf("padding slots must apply rule 0, row 1 = %#x", padded.Row(1))
	}

	// Setting the meta bits of both contexts sends both words to slot 0,
	// which holds rule 3.
	base := Run(Config{
		Width:  2,
		Height: 2,
		Rules:  []uint8{3, 110},
		Meta:   0b00100100,
		Init:   rowBytes(0, ^bitrow.Word(0)),
	})
	if !slices.Equal(base.Row(1), []bitrow.Word{0x7FFFFFFFFFFFFFFF, 0}) {
		t.Fatalf("slot 0 must apply rule 3, row 1 = %#x", base.Row(1))
	}
}

func TestMetaAllBitsSetMatchesFixedRule(t *testing.T) {
	init := RandomInit(2, 7)
	adaptive := Run(Config{Width: 2, Height: 16, Rules: []uint8{110}, Meta: 0xFF, Init: init})
	fixed := Run(Config{Width: 2, Height: 16, Rules: []uint8{110}, Init: init})
	for g := 0; g < fixed.Height(); g++ {
		if !slices.Equal(adaptive.Row(g), fixed.Row(g)) {
			t.Fatalf("generation %d diverged: %#x vs %#x", g, adaptive.Row(g), fixed.Row(g))
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	cfg := Config{
		Width:      3,
		Height:     32,
		Rules:      []uint8{110, 30},
		Meta:       105,
		Reversible: true,
		Init:       RandomInit(3, 99),
	}
	a := Run(cfg)
	b := Run(cfg)
	for g := 0; g < a.Height(); g++ {
		if !slices.Equal(a.Row(g), b.Row(g)) {
			t.Fatalf("generation %d not deterministic", g)
		}
	}
}

func TestRunClampsDimensions(t *testing.T) {
	m := Run(Config{Width: 0, Height: 0})
	if m.Width() != 1 || m.Height() != 2 {
		t.Fatalf("clamped run is %dx%d, want 1x2", m.Width(), m.Height())
	}

	neg := Run(Config{Width: -3, Height: 1, Rules: []uint8{110}})
	if neg.Width() != 1 || neg.Height() != 2 {
		t.Fatalf("negative width run is %dx%d, want 1x2", neg.Width(), neg.Height())
	}

	wide := Run(Config{Width: MaxWidth + 7, Height: 2, Rules: []uint8{110}})
	if wide.Width() != MaxWidth {
		t.Fatalf("oversize width run is %d words, want %d", wide.Width(), MaxWidth)
	}

	tall := Run(Config{Width: 1, Height: MaxHeight + 7, Rules: []uint8{110}})
	if tall.Height() != MaxHeight {
		t.Fatalf("oversize height run is %d rows, want %d", tall.Height(), MaxHeight)
	}
}

func TestEmptyRulesFallBackToDefault(t *testing.T) {
	implicit := Run(Config{Width: 1, Height: 8})
	explicit := Run(Config{Width: 1, Height: 8, Rules: []uint8{110}})
	for g := 0; g < implicit.Height(); g++ {
		if !slices.Equal(implicit.Row(g), explicit.Row(g)) {
			t.Fatalf("generation %d differs from the rule 110 default", g)
		}
	}
}
