package stream

import (
	"slices"
	"testing"

	"ca1d/internal/automaton"
)

func TestCommandConfigKeepsCurrentDimensions(t *testing.T) {
	cur := automaton.Config{Width: 4, Height: 128, Rules: []uint8{110}}
	cfg := Command{Rules: "30"}.config(cur)
	if cfg.Width != 4 || cfg.Height != 128 {
		t.Fatalf("dimensions %dx%d, want 4x128", cfg.Width, cfg.Height)
	}
	if !slices.Equal(cfg.Rules, []uint8{30}) {
		t.Fatalf("rules %v, want [30]", cfg.Rules)
	}
}

func TestCommandConfigRejectsOutOfRange(t *testing.T) {
	cfg := Command{Rules: "abc", Meta: 999, Width: 2, Height: 32}.config(automaton.Config{Width: 1, Height: 2})
	if !slices.Equal(cfg.Rules, []uint8{110}) {
		t.Fatalf("rules %v, want the default 110", cfg.Rules)
	}
	if cfg.Meta != 0 {
		t.Fatalf("Meta = %d, want 0", cfg.Meta)
	}

	cur := automaton.Config{Width: 2, Height: 32, Rules: []uint8{110}}
	cfg = Command{Width: automaton.MaxWidth + 1, Height: automaton.MaxHeight + 1}.config(cur)
	if cfg.Width != 2 || cfg.Height != 32 {
		t.Fatalf("dimensions %dx%d, want the current 2x32", cfg.Width, cfg.Height)
	}
	cfg = Command{Width: -4, Height: 1}.config(cur)
	if cfg.Width != 2 || cfg.Height != 32 {
		t.Fatalf("dimensions %dx%d, want the current 2x32", cfg.Width, cfg.Height)
	}
}

func TestHandleCommandRebuildsMatrix(t *testing.T) {
	srv := NewServer(automaton.Config{Width: 1, Height: 8, Rules: []uint8{110}}, 1)
	srv.handleCommand([]byte(`{"rules":"90","width":2,"height":16}`))
	if srv.matrix.Width() != 2 || srv.matrix.Height() != 16 {
		t.Fatalf("matrix %dx%d, want 2x16", srv.matrix.Width(), srv.matrix.Height())
	}
	if !slices.Equal(srv.cfg.Rules, []uint8{90}) {
		t.Fatalf("rules %v, want [90]", srv.cfg.Rules)
	}
	if srv.reveal != 1 {
		t.Fatalf("reveal = %d, want 1", srv.reveal)
	}
}

func TestHandleCommandRandomMatchesSeed(t *testing.T) {
	cfg := automaton.Config{Width: 1, Height: 8, Rules: []uint8{30}}
	srv := NewServer(cfg, 7)
	srv.handleCommand([]byte("random"))

	want := cfg
	want.Init = automaton.RandomInit(1, 8)
	expected := automaton.Run(want)
	for g := 0; g < 8; g++ {
		if !slices.Equal(srv.matrix.Row(g), expected.Row(g)) {
			t.Fatalf("row %d = %#x, want %#x", g, srv.matrix.Row(g), expected.Row(g))
		}
	}
}

func TestHandleCommandRestartResetsReveal(t *testing.T) {
	srv := NewServer(automaton.Config{Width: 1, Height: 4, Rules: []uint8{110}}, 1)
	for i := 0; i < 10; i++ {
		srv.tickReveal()
	}
	if srv.reveal != 4 {
		t.Fatalf("reveal = %d, want 4 after ticking past the bottom", srv.reveal)
	}
	srv.handleCommand([]byte("restart"))
	if srv.reveal != 1 {
		t.Fatalf("reveal = %d, want 1", srv.reveal)
	}
}

func TestHandleCommandKeepsDimensionsInBounds(t *testing.T) {
	srv := NewServer(automaton.Config{Width: 1, Height: 8, Rules: []uint8{110}}, 1)
	srv.handleCommand([]byte(`{"width":2147483648,"height":2147483648}`))
	if srv.matrix.Width() != 1 || srv.matrix.Height() != 8 {
		t.Fatalf("matrix %dx%d, want the current 1x8", srv.matrix.Width(), srv.matrix.Height())
	}
}

func TestHandleCommandIgnoresBadJSON(t *testing.T) {
	srv := NewServer(automaton.Config{Width: 1, Height: 8, Rules: []uint8{110}}, 1)
	before := srv.matrix
	srv.handleCommand([]byte(`{"rules":`))
	if srv.matrix != before {
		t.Fatalf("matrix rebuilt on a malformed command")
	}
}
