// Package network exposes a running game over HTTP: a small JSON API for
// ticking and querying the game, and a websocket stream of snapshots.
package network

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/universal-elevators/internal/game"
)

// Hub maintains the set of active clients and broadcasts snapshots to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.Mutex
	logger     *log.Logger
}

// NewHub initializes a new websocket hub.
func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run handles registrations and broadcasts until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			h.logger.Info("websocket hub stopped")
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Debug("websocket client connected", "remote", client.remote)
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Debug("websocket client disconnected", "remote", client.remote)
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow reader.
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends a snapshot to every connected client. It never blocks;
// when the hub is backed up the snapshot is dropped.
func (h *Hub) Broadcast(snap game.StateSnapshot) {
	payload, err := game.MarshalSnapshot(snap)
	if err != nil {
		h.logger.Error("cannot encode snapshot", "error", err)
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		h.logger.Warn("hub backed up, dropping snapshot", "tick", snap.Tick)
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) add(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) remove(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}
