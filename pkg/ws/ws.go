// Package ws streams server events to connected dashboards over
// gorilla/websocket.
//
// The hub is one-way: clients subscribe and receive JSON frames, any
// inbound frames beyond control messages are discarded.
//
//	var OrderFeed = ws.NewHub()
//	func init() { go OrderFeed.Run() }
//
//	// In a handler:
//	OrderFeed.Serve(w, r)
//
//	// From anywhere:
//	OrderFeed.BroadcastJSON(map[string]any{"event": "order.paid"})
package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/shashiranjanraj/goldenaura/pkg/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins by default — restrict in production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// SetCheckOrigin replaces the default (allow-all) origin checker.
func SetCheckOrigin(fn func(r *http.Request) bool) {
	upgrader.CheckOrigin = fn
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// readPump drains the connection so pongs are processed, then
// unregisters on close.
func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(4 * 1024)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("ws: unexpected close", "error", err)
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Hub maintains the set of subscribed connections and fans frames out
// to all of them. Besides websocket clients, plain channel subscribers
// (e.g. an SSE handler) can attach via Subscribe.
type Hub struct {
	clients     map[*client]bool
	subscribers map[chan []byte]bool
	broadcast   chan []byte
	register    chan *client
	unregister  chan *client
	subscribe   chan chan []byte
	unsubscribe chan chan []byte
}

// NewHub creates a new Hub. Call hub.Run() in a goroutine at startup.
func NewHub() *Hub {
	return &Hub{
		clients:     make(map[*client]bool),
		subscribers: make(map[chan []byte]bool),
		broadcast:   make(chan []byte, 256),
		register:    make(chan *client),
		unregister:  make(chan *client),
		subscribe:   make(chan chan []byte),
		unsubscribe: make(chan chan []byte),
	}
}

// Run starts the hub event loop. Must be run in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			logger.Info("ws: client connected", "total", len(h.clients))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				logger.Info("ws: client disconnected", "total", len(h.clients))
			}

		case ch := <-h.subscribe:
			h.subscribers[ch] = true

		case ch := <-h.unsubscribe:
			if _, ok := h.subscribers[ch]; ok {
				delete(h.subscribers, ch)
				close(ch)
			}

		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					close(c.send)
					delete(h.clients, c)
				}
			}
			for ch := range h.subscribers {
				select {
				case ch <- msg:
				default: // slow subscriber, drop the frame
				}
			}
		}
	}
}

// Subscribe attaches a channel that receives every broadcast frame.
// Callers must drain the channel and call Unsubscribe when done.
func (h *Hub) Subscribe() chan []byte {
	ch := make(chan []byte, 16)
	h.subscribe <- ch
	return ch
}

// Unsubscribe detaches and closes a channel returned by Subscribe.
func (h *Hub) Unsubscribe(ch chan []byte) {
	h.unsubscribe <- ch
}

// Broadcast fans a raw frame out to every subscribed client. Drops the
// frame when the hub's buffer is full rather than blocking the caller.
func (h *Hub) Broadcast(msg []byte) {
	select {
	case h.broadcast <- msg:
	default:
	}
}

// BroadcastJSON marshals v and broadcasts it.
func (h *Hub) BroadcastJSON(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Error("ws: marshal broadcast", "error", err)
		return
	}
	h.Broadcast(data)
}

// ClientCount returns the number of currently connected clients.
func (h *Hub) ClientCount() int { return len(h.clients) }

// Serve upgrades the HTTP connection and subscribes it to the hub.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("ws: upgrade failed", "error", err)
		return
	}
	c := &client{hub: h, conn: conn, send: make(chan []byte, 256)}
	h.register <- c
	go c.writePump()
	go c.readPump()
}
