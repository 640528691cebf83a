package bitrow

import "math/bits"

// Word packs 64 automaton cells. Cell 0 occupies the most-significant bit,
// cell 63 the least-significant one.
type Word uint64

// WordBits is the number of cells packed into one Word.
const WordBits = 64

// broadcast spreads bit n of v across a full word: all ones when set,
// all zeros otherwise.
func broadcast(v, n uint64) Word {
	return Word(v>>n&1) * ^Word(0)
}

// Apply computes the next generation of the 64 cells in center. The left
// and right neighbor words supply the carries at the word edges: the last
// cell of left borders cell 0 of center, the first cell of right borders
// cell 63. Every cell looks up its 3-cell neighborhood pattern in rule at
// once, with no per-cell branching, and carry is XORed into the result
// last so that reversible dynamics can feed the row two generations back
// through it.
func Apply(rule uint8, left, center, right, carry Word) Word {
	l := center>>1 ^ left<<63
	r := center<<1 ^ right>>63

	var next Word
	for i := uint64(0); i < 8; i++ {
		active := broadcast(uint64(rule), i)
		next |= active &^ (broadcast(i, 2) ^ l) &^ (broadcast(i, 1) ^ center) &^ (broadcast(i, 0) ^ r)
	}

	return next ^ carry
}

// Dense reports the density symbol of w: 1 when more than half of its 64
// cells are set, else 0. The count is exact.
func Dense(w Word) uint64 {
	if bits.OnesCount64(uint64(w)) > WordBits/2 {
		return 1
	}
	return 0
}

// Context packs the density symbols of a word neighborhood into a 3-bit
// pattern, left in the high bit.
func Context(left, center, right Word) uint64 {
	return Dense(left)<<2 | Dense(center)<<1 | Dense(right)
}

// Select resolves the rule-table slot for a word neighborhood under the
// adaptive meta rule, using the same masked-OR scheme as Apply over the
// density context. A context whose meta bit is set resolves to slot 0, any
// other context selects the slot matching its own pattern. The result is
// always in [0,7].
func Select(meta uint8, left, center, right Word) int {
	ctx := Context(left, center, right)
	l := broadcast(ctx, 2)
	c := broadcast(ctx, 1)
	r := broadcast(ctx, 0)

	var slot Word
	for i := uint64(0); i < 8; i++ {
		idle := ^broadcast(uint64(meta), i)
		slot |= Word(i) & idle &^ (broadcast(i, 2) ^ l) &^ (broadcast(i, 1) ^ c) &^ (broadcast(i, 0) ^ r)
	}

	return int(slot)
}

// Population counts the set cells in a row.
func Population(row []Word) int {
	total := 0
	for _, w := range row {
		total += bits.OnesCount64(uint64(w))
	}
	return total
}
