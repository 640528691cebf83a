package stream

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"ca1d/internal/automaton"

	"github.com/gorilla/websocket"
)

// Server streams automaton rows to websocket clients and applies their
// commands. Every connected client sees the same reveal.
type Server struct {
	mu     sync.Mutex
	cfg    automaton.Config
	matrix *automaton.Matrix
	reveal int
	seed   int64

	hub      *Hub
	upgrader websocket.Upgrader
}

// Command is the JSON message clients send to rebuild the automaton. Width
// and height outside the matrix limits, zero included, keep the current
// dimensions.
type Command struct {
	Rules      string `json:"rules"`
	Meta       uint   `json:"meta"`
	Reversible bool   `json:"reversible"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Init       string `json:"init"`
}

// NewServer computes the initial matrix and prepares the hub.
func NewServer(cfg automaton.Config, seed int64) *Server {
	return &Server{
		cfg:    cfg,
		matrix: automaton.Run(cfg),
		reveal: 1,
		seed:   seed,
		hub:    NewHub(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleWS upgrades the connection and serves it until it drops.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Error upgrading websocket:", err)
		return
	}
	defer conn.Close()

	s.hub.Add(conn)
	log.Printf("client connected, %d online", s.hub.Count())

	if err := s.hub.Send(conn, s.snapshot()); err != nil {
		log.Println("Error writing snapshot to client:", err)
		s.hub.Remove(conn)
		return
	}

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			s.hub.Remove(conn)
			log.Printf("client disconnected, %d online", s.hub.Count())
			return
		}
		s.handleCommand(p)
	}
}

// Run reveals one row per tick while clients are connected. It returns once
// ctx is done.
func (s *Server) Run(ctx context.Context, tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.hub.CloseAll()
			return
		case <-ticker.C:
			if s.hub.Count() > 0 {
				s.tickReveal()
			}
		}
	}
}

func (s *Server) snapshot() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return EncodeMatrix(s.matrix, s.reveal)
}

func (s *Server) tickReveal() {
	s.mu.Lock()
	if s.reveal >= s.matrix.Height() {
		s.mu.Unlock()
		return
	}
	frame := EncodeRow(s.reveal, s.matrix.Row(s.reveal))
	s.reveal++
	s.mu.Unlock()
	s.hub.Broadcast(frame)
}

func (s *Server) handleCommand(p []byte) {
	s.mu.Lock()
	switch string(p) {
	case "restart":
		s.reveal = 1
	case "random":
		s.seed++
		s.cfg.Init = automaton.RandomInit(s.cfg.Width, s.seed)
		s.matrix = automaton.Run(s.cfg)
		s.reveal = 1
	default:
		var cmd Command
		if err := json.Unmarshal(p, &cmd); err != nil {
			s.mu.Unlock()
			log.Println("Error unmarshaling command:", err)
			return
		}
		s.cfg = cmd.config(s.cfg)
		s.matrix = automaton.Run(s.cfg)
		s.reveal = 1
	}
	frame := EncodeMatrix(s.matrix, s.reveal)
	s.mu.Unlock()
	s.hub.Broadcast(frame)
}

func (c Command) config(cur automaton.Config) automaton.Config {
	cfg := automaton.Config{
		Width:      c.Width,
		Height:     c.Height,
		Reversible: c.Reversible,
		Init:       []byte(c.Init),
	}
	if cfg.Width < 1 || cfg.Width > automaton.MaxWidth {
		cfg.Width = cur.Width
	}
	if cfg.Height < 2 || cfg.Height > automaton.MaxHeight {
		cfg.Height = cur.Height
	}
	if rules := automaton.ParseRules(c.Rules); rules != nil {
		cfg.Rules = rules
	} else {
		cfg.Rules = automaton.DefaultConfig().Rules
	}
	if c.Meta <= 255 {
		cfg.Meta = uint8(c.Meta)
	}
	return cfg
}
