package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"math/bits"
	"runtime"
	"sort"
	"sync"
	"time"

	"ca1d/internal/automaton"
)

type paramSet struct {
	rules []uint8
	meta  uint8
}

func (p paramSet) String() string {
	if p.meta == 0 {
		return fmt.Sprintf("rules=%v", p.rules)
	}
	return fmt.Sprintf("rules=%v meta=%d", p.rules, p.meta)
}

type sweepResult struct {
	params       paramSet
	distinctRows int
	activity     float64
	meanDensity  float64
}

func main() {
	rules := flag.String("rules", "", "fixed rule list, sweep all 256 meta bytes over it; empty sweeps the 256 single rules")
	width := flag.Int("width", 1, "width in 64-cell words")
	height := flag.Int("height", 256, "number of generations")
	reversible := flag.Bool("reversible", false, "XOR each row with the row two generations back")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 10, "result rows to print")
	flag.Parse()

	base := automaton.Config{Width: *width, Height: *height, Reversible: *reversible}

	var sets []paramSet
	if parsed := automaton.ParseRules(*rules); parsed != nil {
		// Meta 0 is the fixed-rule baseline row of the table.
		for meta := 0; meta <= 255; meta++ {
			sets = append(sets, paramSet{rules: parsed, meta: uint8(meta)})
		}
	} else {
		for rule := 0; rule <= 255; rule++ {
			sets = append(sets, paramSet{rules: []uint8{uint8(rule)}})
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d generations)\n", len(sets), *workers, *height)

	jobs := make(chan paramSet)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runSweep(base, params)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []sweepResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].distinctRows != all[j].distinctRows {
			return all[i].distinctRows > all[j].distinctRows
		}
		return all[i].activity > all[j].activity
	})
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) distinct=%d activity=%.3f density=%.3f %s\n",
			i+1, res.distinctRows, res.activity, res.meanDensity, res.params)
	}
}

func runSweep(base automaton.Config, params paramSet) sweepResult {
	cfg := base
	cfg.Rules = params.rules
	cfg.Meta = params.meta

	m := automaton.Run(cfg)
	cells := m.CellWidth()
	gens := m.Height()

	seen := make(map[string]bool, gens)
	key := make([]byte, m.Width()*8)
	var flips, population int
	for g := 0; g < gens; g++ {
		row := m.Row(g)
		for i, word := range row {
			binary.BigEndian.PutUint64(key[i*8:], uint64(word))
		}
		seen[string(key)] = true
		population += m.Population(g)
		if g > 0 {
			prev := m.Row(g - 1)
			for i := range row {
				flips += bits.OnesCount64(uint64(row[i] ^ prev[i]))
			}
		}
	}

	return sweepResult{
		params:       params,
		distinctRows: len(seen),
		activity:     float64(flips) / float64(cells*(gens-1)),
		meanDensity:  float64(population) / float64(cells*gens),
	}
}
