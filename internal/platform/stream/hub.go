// Package stream broadcasts simulation frames to remote renderers over
// websockets. Frames are msgpack-encoded binary messages; the stream is
// one-way and clients never influence the session.
package stream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/bunny-dash/internal/sim"
)

const (
	maxClients    = 32
	broadcastSize = 8
)

// Hub tracks connected clients and fans frames out to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}

	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	done       chan struct{}

	upgrader websocket.Upgrader
	logger   *log.Logger
}

// NewHub creates a hub. Call Run before serving connections.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client, 16),
		broadcast:  make(chan []byte, broadcastSize),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Renderers are local tools, not browsers on foreign origins.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Run processes registrations and broadcasts until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			h.mu.Unlock()
			h.logger.Debug("stream client connected", "remote", c.remote)

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			h.logger.Debug("stream client disconnected", "remote", c.remote)

		case msg := <-h.broadcast:
			h.mu.RLock()
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// Slow renderer, drop the frame.
				}
			}
			h.mu.RUnlock()
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish encodes a frame and queues it for every client. It never blocks
// the caller; frames are dropped when the queue is full.
func (h *Hub) Publish(f sim.Frame) error {
	if h.ClientCount() == 0 {
		return nil
	}
	data, err := msgpack.Marshal(&f)
	if err != nil {
		return fmt.Errorf("stream: encode frame: %w", err)
	}
	select {
	case h.broadcast <- data:
	default:
	}
	return nil
}

// ServeHTTP upgrades the request to a websocket and attaches the client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	select {
	case <-h.done:
		http.Error(w, "stream closed", http.StatusServiceUnavailable)
		return
	default:
	}
	if h.ClientCount() >= maxClients {
		http.Error(w, "too many clients", http.StatusServiceUnavailable)
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("stream upgrade failed", "err", err)
		return
	}
	c := newClient(h, conn, r.RemoteAddr)
	// register is unbuffered: a send only completes while Run is still
	// looping, so every registered client has its send channel closed.
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

// Serve runs an HTTP server exposing the hub at /frames until ctx is done.
func (h *Hub) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/frames", h)

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	h.logger.Info("frame stream listening", "addr", addr)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("stream: listen %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("stream: shutdown: %w", err)
		}
		return nil
	}
}
