package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"smoke-server/entities"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const writeTimeout = 5 * time.Second

// client pairs a connection with its own write mutex so broadcasts never
// interleave frames on one socket.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Hub keeps track of dashboard websocket connections and fans each accepted
// reading out to all of them.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client // clientID -> client
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*client)}
}

// Register adds a client connection and returns its generated id.
func (h *Hub) Register(conn *websocket.Conn) string {
	id := uuid.New().String()
	h.mu.Lock()
	h.clients[id] = &client{conn: conn}
	h.mu.Unlock()
	return id
}

// Unregister removes and closes a client connection.
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[id]; ok {
		_ = c.conn.Close()
		delete(h.clients, id)
	}
}

// BroadcastReading sends a reading to every connected client. The client map
// is snapshotted first so the hub lock is never held across a network write;
// each write carries a deadline, and clients whose write fails or times out
// are dropped so a dead dashboard cannot wedge ingestion.
func (h *Hub) BroadcastReading(reading *entities.SmokeLog) {
	payload, err := json.Marshal(reading)
	if err != nil {
		log.Printf("Failed to marshal reading for broadcast: %v", err)
		return
	}

	h.mu.RLock()
	snapshot := make(map[string]*client, len(h.clients))
	for id, c := range h.clients {
		snapshot[id] = c
	}
	h.mu.RUnlock()

	for id, c := range snapshot {
		c.mu.Lock()
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		err := c.conn.WriteMessage(websocket.TextMessage, payload)
		c.mu.Unlock()

		if err != nil {
			log.Printf("Dropping live feed client %s: %v", id, err)
			h.Unregister(id)
		}
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
