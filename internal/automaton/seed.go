package automaton

import (
	"encoding/binary"

	"ca1d/pkg/bitrow"
	"ca1d/pkg/core"
)

// seedRow writes the initial generation. Empty data seeds the single cell
// at the logical center of the row, otherwise the bytes fill the words
// left to right, truncated or zero-padded to the row's capacity.
func seedRow(row []bitrow.Word, data []byte) {
	if len(data) == 0 {
		row[len(row)/2] = 1 << uint(63-len(row)*32%64)
		return
	}
	buf := make([]byte, len(row)*8)
	copy(buf, data)
	for i := range row {
		row[i] = bitrow.Word(binary.BigEndian.Uint64(buf[i*8:]))
	}
}

// RandomInit derives a random initial row of width words from seed,
// suitable for Config.Init.
func RandomInit(width int, seed int64) []byte {
	if width < 1 {
		width = 1
	}
	buf := make([]byte, width*8)
	core.FillBytes(core.NewRNG(seed).Source(), buf)
	return buf
}
