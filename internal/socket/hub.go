// Package socket streams pending orders register snapshots to websocket
// clients.
package socket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rookgm/bobis/internal/logger"
	"github.com/rookgm/bobis/internal/models"
	"go.uber.org/zap"
)

const (
	// PongWait is max time between two messages from client
	PongWait   = 30 * time.Second
	pingPeriod = PongWait * 9 / 10
	writeWait  = 10 * time.Second
	sendBuffer = 16
)

// Conn is websocket connection used by hub
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	ReadMessage() (messageType int, p []byte, err error)
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
	Close() error
}

type client struct {
	id   string
	conn Conn
	send chan []byte
}

// Hub keeps connected clients and fans out snapshots
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	last    []byte
}

// NewHub creates Hub with empty snapshot
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		last:    []byte("[]"),
	}
}

// Publish sends snapshot to every client. It never blocks: a client
// whose buffer is full is disconnected.
func (h *Hub) Publish(orders []models.PendingOrder) {
	msg, err := json.Marshal(orders)
	if err != nil {
		logger.Log.Error("marshal pending orders", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = msg
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			logger.Log.Warn("websocket client is slow, dropping", zap.String("operator", c.id))
			delete(h.clients, c)
			close(c.send)
		}
	}
}

// Len returns number of connected clients
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

func (h *Hub) register(id string, conn Conn) *client {
	c := &client{id: id, conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[c] = struct{}{}
	c.send <- h.last

	logger.Log.Debug("websocket client registered", zap.String("operator", id), zap.Int("clients", len(h.clients)))
	return c
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		logger.Log.Debug("websocket client unregistered", zap.String("operator", c.id))
	}
}

// Serve streams snapshots to conn until client goes away.
// Current snapshot is sent first.
func (h *Hub) Serve(id string, conn Conn) {
	c := h.register(id, conn)

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.writeLoop()
	}()

	c.readLoop()
	h.unregister(c)
	<-done
	conn.Close()
}

// readLoop consumes client messages to keep read deadline moving
func (c *client) readLoop() {
	c.conn.SetReadDeadline(time.Now().Add(PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(PongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Debug("unexpected websocket close", zap.String("operator", c.id), zap.Error(err))
			}
			return
		}
		c.conn.SetReadDeadline(time.Now().Add(PongWait))
	}
}

func (c *client) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				c.conn.Close()
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.conn.Close()
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.conn.Close()
				return
			}
		}
	}
}
