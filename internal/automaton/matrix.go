package automaton

import "ca1d/pkg/bitrow"

// Matrix stores the simulation history as bit-packed rows in generation
// order, one backing slice for the whole run.
type Matrix struct {
	width  int
	height int
	words  []bitrow.Word
}

// MaxWidth and MaxHeight bound a matrix, so a run allocates at most
// MaxWidth*MaxHeight words.
const (
	MaxWidth  = 1 << 10 // words per row
	MaxHeight = 1 << 14 // generations
)

// NewMatrix allocates a matrix of height rows of width words each. Width is
// clamped between one word and MaxWidth, height between two rows and
// MaxHeight.
func NewMatrix(width, height int) *Matrix {
	if width < 1 {
		width = 1
	} else if width > MaxWidth {
		width = MaxWidth
	}
	if height < 2 {
		height = 2
	} else if height > MaxHeight {
		height = MaxHeight
	}
	return &Matrix{width: width, height: height, words: make([]bitrow.Word, width*height)}
}

// Width returns the number of words per row.
func (m *Matrix) Width() int { return m.width }

// Height returns the number of generations, the initial row included.
func (m *Matrix) Height() int { return m.height }

// CellWidth returns the number of cells per row.
func (m *Matrix) CellWidth() int { return m.width * bitrow.WordBits }

// Row exposes the backing words of generation g so callers can read or
// write them directly.
func (m *Matrix) Row(g int) []bitrow.Word {
	return m.words[g*m.width : (g+1)*m.width]
}

// Bit reports whether cell x of generation y is set.
func (m *Matrix) Bit(x, y int) bool {
	w := m.words[y*m.width+x/bitrow.WordBits]
	return w>>uint(bitrow.WordBits-1-x%bitrow.WordBits)&1 == 1
}

// Population counts the set cells in generation g.
func (m *Matrix) Population(g int) int {
	return bitrow.Population(m.Row(g))
}
