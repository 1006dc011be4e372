package network

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/universal-elevators/internal/game"
	"github.com/vovakirdan/universal-elevators/internal/host"
)

const maxBodySize = 4096

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server serves one game over HTTP and websockets.
type Server struct {
	host   *host.Host
	driver *host.Driver
	hub    *Hub
	logger *log.Logger
}

// NewServer wires the driver's ticks into the hub.
func NewServer(h *host.Host, d *host.Driver, hub *Hub, logger *log.Logger) *Server {
	d.OnTick(func(snap game.StateSnapshot, _ game.TickReport) {
		hub.Broadcast(snap)
	})
	return &Server{host: h, driver: d, hub: hub, logger: logger}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/state", s.handleState)
	mux.HandleFunc("/api/tick", s.handleTick)
	mux.HandleFunc("/api/command", s.handleCommand)
	mux.HandleFunc("/ws", s.handleWs)
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("stopping http server")
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writeSnapshot(w, s.host.Snapshot())
}

func (s *Server) handleTick(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		http.Error(w, "Cannot read body", http.StatusBadRequest)
		return
	}

	cmd, err := game.ParseCommand(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// Ticks go through the driver so queued commands and tick callbacks
	// see them, including the hub broadcast.
	report, snap := s.driver.Apply(cmd)
	s.logger.Debug("tick over http", "tick", report.Tick, "purchased", report.Purchased)
	s.writeSnapshot(w, snap)
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		http.Error(w, "Cannot read body", http.StatusBadRequest)
		return
	}

	cmd, err := game.ParseCommand(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.driver.Queue(cmd)
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := newClient(s.hub, conn, s.driver.Queue)
	if payload, err := game.MarshalSnapshot(s.host.Snapshot()); err == nil {
		client.send <- payload
	}
	if !s.hub.add(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

func (s *Server) writeSnapshot(w http.ResponseWriter, snap game.StateSnapshot) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		s.logger.Error("cannot write snapshot", "error", err)
	}
}
