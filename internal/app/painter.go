//go:build ebiten

package app

import (
	"image/color"

	"ca1d/internal/automaton"
	"ca1d/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// matrixPainter uploads automaton rows into a single RGBA image.
type matrixPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

func newMatrixPainter(w, h int) *matrixPainter {
	p := &matrixPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	p.img = ebiten.NewImage(w, h)
	return p
}

// blit uploads the first reveal rows of m into the image and draws it scaled.
func (p *matrixPainter) blit(dst *ebiten.Image, m *automaton.Matrix, reveal int, on, off color.Color, scale int) {
	if m.CellWidth() != p.w || m.Height() != p.h {
		return
	}
	render.FillMatrixRGBA(p.buf, m, reveal, on, off)
	p.img.ReplacePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}
