//go:build ebiten

package app

import (
	"image/color"

	"ca1d/internal/automaton"
	"ca1d/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game reveals a precomputed automaton row by row as an ebiten.Game.
type Game struct {
	cfg     automaton.Config
	matrix  *automaton.Matrix
	painter *matrixPainter
	overlay *ui.Overlay
	clock   *RevealClock

	onColor  color.Color
	offColor color.Color

	scale    int
	reveal   int
	paused   bool
	stepOnce bool
	seed     int64
	meta     uint8
}

// New constructs a Game from the parsed command-line configuration.
func New(c *Config) *Game {
	cfg := c.Automaton()
	m := automaton.Run(cfg)
	g := &Game{
		cfg:      cfg,
		matrix:   m,
		painter:  newMatrixPainter(m.CellWidth(), m.Height()),
		overlay:  ui.NewOverlay(),
		clock:    NewRevealClock(c.RPS),
		onColor:  color.Black,
		offColor: color.White,
		scale:    c.Scale,
		reveal:   1,
		seed:     c.Seed,
		meta:     cfg.Meta,
	}
	if g.scale <= 0 {
		g.scale = 1
	}
	return g
}

// Reseed recomputes the matrix from a random initial row.
func (g *Game) Reseed(seed int64) {
	g.seed = seed
	g.cfg.Init = automaton.RandomInit(g.cfg.Width, seed)
	g.rerun()
}

func (g *Game) rerun() {
	g.matrix = automaton.Run(g.cfg)
	g.reveal = 1
	g.stepOnce = false
}

// Update handles per-frame input and advances the reveal.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reveal = 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reseed(g.seed + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.cfg.Reversible = !g.cfg.Reversible
		g.rerun()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.meta != 0 {
		if g.cfg.Meta != 0 {
			g.cfg.Meta = 0
		} else {
			g.cfg.Meta = g.meta
		}
		g.rerun()
	}

	if g.overlay != nil {
		g.overlay.Update()
	}

	if g.reveal < g.matrix.Height() && (g.stepOnce || (!g.paused && g.clock.ShouldReveal())) {
		g.reveal++
		g.stepOnce = false
	}
	return nil
}

// Draw renders the revealed rows and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.blit(screen, g.matrix, g.reveal, g.onColor, g.offColor, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen, g.status())
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.matrix.CellWidth() * g.scale, g.matrix.Height() * g.scale
}

func (g *Game) status() ui.Status {
	return ui.Status{
		Rules:      g.cfg.Rules,
		Meta:       g.cfg.Meta,
		Reversible: g.cfg.Reversible,
		Paused:     g.paused,
		Reveal:     g.reveal,
		Height:     g.matrix.Height(),
	}
}
