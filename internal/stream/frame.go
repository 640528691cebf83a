package stream

import (
	"encoding/binary"

	"ca1d/internal/automaton"
	"ca1d/pkg/bitrow"

	"github.com/golang/snappy"
)

// Frame type tags, the first byte of every decoded frame.
const (
	FrameMatrix = 'M'
	FrameRow    = 'R'
)

// EncodeMatrix packs the whole matrix and the current reveal position into a
// snappy-compressed frame.
func EncodeMatrix(m *automaton.Matrix, reveal int) []byte {
	w := m.Width()
	h := m.Height()
	raw := make([]byte, 13+w*h*8)
	raw[0] = FrameMatrix
	binary.BigEndian.PutUint32(raw[1:5], uint32(w))
	binary.BigEndian.PutUint32(raw[5:9], uint32(h))
	binary.BigEndian.PutUint32(raw[9:13], uint32(reveal))
	off := 13
	for g := 0; g < h; g++ {
		for _, word := range m.Row(g) {
			binary.BigEndian.PutUint64(raw[off:], uint64(word))
			off += 8
		}
	}
	return snappy.Encode(nil, raw)
}

// EncodeRow packs a single generation into a snappy-compressed frame.
func EncodeRow(g int, row []bitrow.Word) []byte {
	raw := make([]byte, 5+len(row)*8)
	raw[0] = FrameRow
	binary.BigEndian.PutUint32(raw[1:5], uint32(g))
	off := 5
	for _, word := range row {
		binary.BigEndian.PutUint64(raw[off:], uint64(word))
		off += 8
	}
	return snappy.Encode(nil, raw)
}

// DecodeMatrix unpacks a matrix frame. It reports false on malformed input.
func DecodeMatrix(frame []byte) (*automaton.Matrix, int, bool) {
	raw, err := snappy.Decode(nil, frame)
	if err != nil || len(raw) < 13 || raw[0] != FrameMatrix {
		return nil, 0, false
	}
	w := int(binary.BigEndian.Uint32(raw[1:5]))
	h := int(binary.BigEndian.Uint32(raw[5:9]))
	// The caps keep 13+w*h*8 within int range.
	if w < 1 || w > automaton.MaxWidth || h < 2 || h > automaton.MaxHeight {
		return nil, 0, false
	}
	if len(raw) != 13+w*h*8 {
		return nil, 0, false
	}
	reveal := int(binary.BigEndian.Uint32(raw[9:13]))
	if reveal < 1 {
		reveal = 1
	}
	if reveal > h {
		reveal = h
	}
	m := automaton.NewMatrix(w, h)
	off := 13
	for g := 0; g < h; g++ {
		row := m.Row(g)
		for i := range row {
			row[i] = bitrow.Word(binary.BigEndian.Uint64(raw[off:]))
			off += 8
		}
	}
	return m, reveal, true
}

// DecodeRow unpacks a row frame. It reports false on malformed input.
func DecodeRow(frame []byte) (int, []bitrow.Word, bool) {
	raw, err := snappy.Decode(nil, frame)
	if err != nil || len(raw) < 5 || raw[0] != FrameRow {
		return 0, nil, false
	}
	if len(raw) == 5 || (len(raw)-5)%8 != 0 {
		return 0, nil, false
	}
	g := int(binary.BigEndian.Uint32(raw[1:5]))
	row := make([]bitrow.Word, (len(raw)-5)/8)
	off := 5
	for i := range row {
		row[i] = bitrow.Word(binary.BigEndian.Uint64(raw[off:]))
		off += 8
	}
	return g, row, true
}
