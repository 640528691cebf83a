package stream

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks connected clients and fans frames out to them. All writes go
// through the hub so no connection sees concurrent writers.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

// NewHub constructs an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// Add registers a connection.
func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
}

// Remove forgets a connection.
func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Send writes the frame to a single client.
func (h *Hub) Send(conn *websocket.Conn, frame []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return conn.WriteMessage(websocket.BinaryMessage, frame)
}

// Broadcast writes the frame to every client, dropping the ones that fail.
func (h *Hub) Broadcast(frame []byte) {
	h.mu.Lock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
			log.Println("Error writing frame to client:", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
	h.mu.Unlock()
}

// CloseAll closes every connection and empties the hub.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	for conn := range h.clients {
		conn.Close()
	}
	h.clients = make(map[*websocket.Conn]bool)
	h.mu.Unlock()
}
