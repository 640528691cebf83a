package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ca1d/internal/automaton"
	"ca1d/internal/render"

	"github.com/guptarohit/asciigraph"
)

func main() {
	rules := flag.String("rules", "110", "rule numbers cycled across words, e.g. 110,30")
	meta := flag.Uint("meta", 0, "meta rule picking rules by word density, 0 disables")
	reversible := flag.Bool("reversible", false, "XOR each row with the row two generations back")
	width := flag.Int("width", 4, "width in 64-cell words")
	height := flag.Int("height", 256, "number of generations")
	initText := flag.String("init", "", "bytes seeding the first row, empty for a single center cell")
	random := flag.Bool("random", false, "seed the first row with random bytes")
	seed := flag.Int64("seed", 42, "seed for -random")
	rasterW := flag.Int("pw", 0, "raster width in pixels, 0 for one pixel per cell")
	rasterH := flag.Int("ph", 0, "raster height in pixels, 0 for one pixel per row")
	graph := flag.Bool("graph", false, "print the population per generation as an ascii graph")
	out := flag.String("o", "ca1d.png", "output image path, format by extension (png, gif, jpeg)")
	flag.Parse()

	cfg := automaton.Config{
		Width:      *width,
		Height:     *height,
		Reversible: *reversible,
		Init:       []byte(*initText),
	}
	if parsed := automaton.ParseRules(*rules); parsed != nil {
		cfg.Rules = parsed
	}
	if *meta <= 255 {
		cfg.Meta = uint8(*meta)
	}
	if *random {
		cfg.Init = automaton.RandomInit(*width, *seed)
	}

	start := time.Now()
	m := automaton.Run(cfg)
	fmt.Printf("Automata time %s\n", time.Since(start).Round(time.Microsecond))

	if *graph {
		pops := make([]float64, m.Height())
		for g := range pops {
			pops[g] = float64(m.Population(g))
		}
		fmt.Println(asciigraph.Plot(pops, asciigraph.Height(10), asciigraph.Caption("population per generation")))
	}

	w := *rasterW
	if w <= 0 {
		w = m.CellWidth()
	}
	h := *rasterH
	if h <= 0 {
		h = m.Height()
	}
	img, err := render.Render(m, w, h, color.Black, color.White)
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	if err := save(*out, img); err != nil {
		log.Fatalf("save: %v", err)
	}
	fmt.Printf("Wrote %s (%dx%d)\n", *out, w, h)
}

func save(path string, img image.Image) error {
	var encode func(io.Writer, image.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = png.Encode
	case ".gif":
		encode = func(w io.Writer, m image.Image) error { return gif.Encode(w, m, nil) }
	case ".jpg", ".jpeg":
		encode = func(w io.Writer, m image.Image) error { return jpeg.Encode(w, m, nil) }
	default:
		return fmt.Errorf("unsupported image format %q", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return encode(f, img)
}
