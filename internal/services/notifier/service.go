package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fairdraw/sweepstakes/internal/common/clock"
)

const (
	// sendBufferSize is the per-client outbound queue; a client that falls
	// this far behind is disconnected rather than allowed to block the hub
	sendBufferSize = 16

	writeWait = 10 * time.Second
)

// Config holds configuration for the websocket hub
type Config struct {
	Clock clock.Clock
}

// Hub implements the Service interface by broadcasting JSON event frames to
// every connected websocket client. All sends are non-blocking.
type Hub struct {
	clock clock.Clock

	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*hubClient]struct{}
	closed  bool
}

type hubClient struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates a new websocket broadcast hub
func NewHub(cfg *Config) (*Hub, error) {
	if cfg == nil || cfg.Clock == nil {
		return nil, errors.New("config and clock cannot be nil")
	}

	return &Hub{
		clock: cfg.Clock,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The audit surface is public; so are the events
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*hubClient]struct{}),
	}, nil
}

// HandleConnection upgrades an HTTP request into a subscribed websocket client
func (h *Hub) HandleConnection(w http.ResponseWriter, r *http.Request) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := &hubClient{
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return errors.New("hub is shut down")
	}
	h.clients[client] = struct{}{}
	h.mu.Unlock()

	go h.writeLoop(client)
	go h.readLoop(client)

	return nil
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

// Shutdown disconnects every client. Pending notifications are dropped; the
// hub is best effort by contract.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
}

// SweepstakeStateChanged announces a status transition
func (h *Hub) SweepstakeStateChanged(ctx context.Context, input *SweepstakeStateChangedInput) {
	if input == nil {
		return
	}

	h.broadcast(&event{
		Type:         EventStateChanged,
		SweepstakeID: input.SweepstakeID,
		Status:       string(input.Status),
		Timestamp:    h.clock.Now(),
	})
}

// SweepstakeFinished announces a settled draw and its winner
func (h *Hub) SweepstakeFinished(ctx context.Context, input *SweepstakeFinishedInput) {
	if input == nil {
		return
	}

	h.broadcast(&event{
		Type:                EventFinished,
		SweepstakeID:        input.SweepstakeID,
		WinnerParticipantID: input.WinnerParticipantID,
		WinnerUserID:        input.WinnerUserID,
		PrizeAmount:         input.PrizeAmount.String(),
		Timestamp:           h.clock.Now(),
	})
}

// broadcast queues a frame to every client without ever blocking; slow
// clients are dropped.
func (h *Hub) broadcast(evt *event) {
	data, err := json.Marshal(evt)
	if err != nil {
		log.Printf("notifier: failed to marshal event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			close(client.send)
			delete(h.clients, client)
		}
	}
}

func (h *Hub) writeLoop(client *hubClient) {
	defer client.conn.Close()

	for data := range client.send {
		client.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := client.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.remove(client)
			return
		}
	}

	client.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// readLoop discards inbound frames; its job is to notice the peer going away
func (h *Hub) readLoop(client *hubClient) {
	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			h.remove(client)
			return
		}
	}
}

func (h *Hub) remove(client *hubClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		close(client.send)
		delete(h.clients, client)
	}
}
