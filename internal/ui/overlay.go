//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the status line and key help on top of the automaton view.
type Overlay struct {
	showHelp bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Update allows the overlay to update internal state.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, st Status) {
	face := basicfont.Face7x13
	text.Draw(screen, st.Line(), face, statusPadding, statusBaseline, textColor)
	if !o.showHelp {
		return
	}
	y := statusBaseline + lineHeight
	for _, line := range helpLines {
		y += lineHeight
		text.Draw(screen, line, face, statusPadding, y, textColor)
	}
}

var textColor = color.RGBA{R: 200, G: 40, B: 40, A: 255}

var helpLines = []string{
	"space  pause reveal",
	"n      reveal one row",
	"r      restart reveal",
	"s      random initial row",
	"v      toggle reversible",
	"m      toggle meta rule",
	"h      toggle this help",
	"q/esc  quit",
}

const (
	statusPadding  = 6
	statusBaseline = 14
	lineHeight     = 14
)
