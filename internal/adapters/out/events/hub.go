package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/domain/model/order"

	"github.com/gorilla/websocket"
)

const (
	sendBuffer     = 32
	writeWait      = 5 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxInboundSize = 512
)

// Hub is the live order feed. Each websocket connection belongs to one actor and only
// receives the orders that actor may read: admins see everything, customers their own
// orders, drivers the orders assigned to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	logger  *slog.Logger
}

type client struct {
	conn  *websocket.Conn
	actor auth.Actor
	send  chan []byte
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger.With("component", "order-feed"),
	}
}

// Serve registers conn and blocks until the peer goes away or the hub is closed.
// Inbound frames other than pongs are ignored.
func (h *Hub) Serve(ctx context.Context, conn *websocket.Conn, actor auth.Actor) {
	c := &client{conn: conn, actor: actor, send: make(chan []byte, sendBuffer)}
	h.add(c)
	h.logger.InfoContext(ctx, "feed client connected", "role", actor.Role, "user_id", actor.UserID.String())

	go h.writePump(c)

	conn.SetReadLimit(maxInboundSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.remove(c)
	h.logger.InfoContext(ctx, "feed client disconnected", "role", actor.Role, "user_id", actor.UserID.String())
}

// Publish queues every event for the clients allowed to see it. A client whose
// buffer is full is disconnected instead of slowing the publisher down.
func (h *Hub) Publish(ctx context.Context, events ...order.ChangedEvent) error {
	for _, e := range events {
		msg := NewOrderChangedMessage(e)
		body, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("marshal order event: %w", err)
		}

		var slow []*client
		h.mu.RLock()
		for c := range h.clients {
			if !visibleTo(c.actor, msg) {
				continue
			}
			select {
			case c.send <- body:
			default:
				slow = append(slow, c)
			}
		}
		h.mu.RUnlock()

		for _, c := range slow {
			h.logger.WarnContext(ctx, "dropping slow feed client", "user_id", c.actor.UserID.String())
			h.remove(c)
		}
	}
	return nil
}

// Clients is the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// writePump is the only writer of c.conn.
func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case body, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, body); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func visibleTo(actor auth.Actor, msg OrderChangedMessage) bool {
	switch actor.Role {
	case auth.RoleAdmin:
		return true
	case auth.RoleCustomer:
		return msg.CustomerID == actor.UserID.String()
	case auth.RoleDriver:
		return msg.DriverID != nil && *msg.DriverID == actor.UserID.String()
	default:
		return false
	}
}
