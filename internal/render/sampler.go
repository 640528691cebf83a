package render

import (
	"errors"
	"image"
	"image/color"

	"ca1d/internal/automaton"
)

// ErrOversized reports a raster smaller than the simulated extent.
var ErrOversized = errors.New("automaton larger than raster")

// Sampler maps raster pixels onto matrix cells by nearest-bit lookup.
type Sampler struct {
	m      *automaton.Matrix
	scaleW float64
	scaleH float64
}

// NewSampler validates the raster extent against the matrix. A raster
// narrower than the cell width or shorter than the generation count is
// rejected with ErrOversized so callers never produce a partial render.
func NewSampler(m *automaton.Matrix, rasterW, rasterH int) (*Sampler, error) {
	if m.CellWidth() > rasterW || m.Height() > rasterH {
		return nil, ErrOversized
	}
	return &Sampler{
		m:      m,
		scaleW: float64(m.CellWidth()) / float64(rasterW),
		scaleH: float64(m.Height()) / float64(rasterH),
	}, nil
}

// Bit reports the matrix cell backing raster pixel (x, y).
func (s *Sampler) Bit(x, y int) bool {
	return s.m.Bit(int(float64(x)*s.scaleW), int(float64(y)*s.scaleH))
}

// Render samples the matrix into a freshly allocated RGBA image, fg where
// a cell is set and bg elsewhere.
func Render(m *automaton.Matrix, rasterW, rasterH int, fg, bg color.Color) (*image.RGBA, error) {
	s, err := NewSampler(m, rasterW, rasterH)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, rasterW, rasterH))
	rFg, gFg, bFg, aFg := fg.RGBA()
	rBg, gBg, bBg, aBg := bg.RGBA()
	for y := 0; y < rasterH; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < rasterW; x++ {
			base := x * 4
			if s.Bit(x, y) {
				row[base+0] = uint8(rFg >> 8)
				row[base+1] = uint8(gFg >> 8)
				row[base+2] = uint8(bFg >> 8)
				row[base+3] = uint8(aFg >> 8)
				continue
			}
			row[base+0] = uint8(rBg >> 8)
			row[base+1] = uint8(gBg >> 8)
			row[base+2] = uint8(bBg >> 8)
			row[base+3] = uint8(aBg >> 8)
		}
	}
	return img, nil
}
