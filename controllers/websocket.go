package controllers

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Client struct {
	conn  *websocket.Conn
	mutex sync.Mutex
}

// Hub pushes HTML fragments to every connected browser. It holds no feed
// state; fragments tell the page to pull its own view.
type Hub struct {
	clients   map[*Client]bool
	broadcast chan string
	mutex     sync.Mutex
	log       *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:   make(map[*Client]bool),
		broadcast: make(chan string, 16),
		log:       logger,
	}
}

// Broadcast queues msg for RunSocket. When the queue is full the message is
// dropped; fragments are refresh triggers, so a later one supersedes it.
func (h *Hub) Broadcast(msg string) {
	select {
	case h.broadcast <- msg:
	default:
		h.log.Warn("broadcast queue full, dropping message")
	}
}

func (h *Hub) RunSocket() {
	for msg := range h.broadcast {
		h.mutex.Lock()
		for client := range h.clients {
			client.mutex.Lock()
			err := client.conn.WriteMessage(websocket.TextMessage, []byte(msg))
			client.mutex.Unlock()
			if err != nil {
				h.log.Debug("websocket write failed", "error", err)
				client.conn.Close()
				delete(h.clients, client)
			}
		}
		h.mutex.Unlock()
	}
}

// Close stops RunSocket. Broadcast must not be called afterwards.
func (h *Hub) Close() {
	close(h.broadcast)
}

// CloseAll disconnects every client. Their read loops see the error and
// exit.
func (h *Hub) CloseAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for client := range h.clients {
		client.mutex.Lock()
		client.conn.Close()
		client.mutex.Unlock()
		delete(h.clients, client)
	}
}

func (h *Hub) Len() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

func (h *Hub) add(client *Client) {
	h.mutex.Lock()
	h.clients[client] = true
	h.mutex.Unlock()
}

func (h *Hub) remove(client *Client) {
	h.mutex.Lock()
	delete(h.clients, client)
	h.mutex.Unlock()
}

func (ctl *Controller) WebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		ctl.log.Debug("websocket upgrade failed", "error", err)
		return
	}

	client := &Client{conn: conn}
	ctl.Hub.add(client)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			ctl.Hub.remove(client)
			client.mutex.Lock()
			client.conn.Close()
			client.mutex.Unlock()
			return
		}
	}
}
