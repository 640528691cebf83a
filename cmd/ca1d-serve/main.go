package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ca1d/internal/automaton"
	"ca1d/internal/stream"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	rules := flag.String("rules", "110", "rule numbers cycled across words, e.g. 110,30")
	meta := flag.Uint("meta", 0, "meta rule picking rules by word density, 0 disables")
	reversible := flag.Bool("reversible", false, "XOR each row with the row two generations back")
	width := flag.Int("width", 4, "width in 64-cell words")
	height := flag.Int("height", 256, "number of generations")
	initText := flag.String("init", "", "bytes seeding the first row, empty for a single center cell")
	tick := flag.Duration("tick", 50*time.Millisecond, "delay between revealed rows")
	seed := flag.Int64("seed", 42, "seed for random initial rows")
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

	srv := stream.NewServer(cfg, *seed)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.HandleWS)
	server := &http.Server{Addr: *addr, Handler: mux}

	ctx, cancel := context.WithCancel(context.Background())
	go srv.Run(ctx, *tick)

	go func() {
		log.Printf("listening on %s", *addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v", *addr, err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server...")
	cancel()
	if err := server.Close(); err != nil {
		log.Fatalf("Server Close: %v", err)
	}
}
