package services

import (
	"encoding/json"
	"log"
	"sync"

	"testhub/models"

	"github.com/gorilla/websocket"
)

// FeedHub fans freshly submitted results out to connected websocket clients.
type FeedHub struct {
	clients    map[*FeedClient]bool
	broadcast  chan []byte
	register   chan *FeedClient
	unregister chan *FeedClient
	mutex      sync.RWMutex
}

type FeedClient struct {
	hub    *FeedHub
	socket *websocket.Conn
	send   chan []byte
}

type FeedMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

func NewFeedHub() *FeedHub {
	return &FeedHub{
		clients:    make(map[*FeedClient]bool),
		broadcast:  make(chan []byte),
		register:   make(chan *FeedClient),
		unregister: make(chan *FeedClient),
	}
}

func (h *FeedHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()
			log.Printf("Feed client connected - total clients: %d", h.clientCount())

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mutex.Unlock()
			log.Printf("Feed client disconnected - total clients: %d", h.clientCount())

		case message := <-h.broadcast:
			h.mutex.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mutex.Unlock()
		}
	}
}

func (h *FeedHub) clientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// BroadcastResult pushes a submitted result to every connected client. Safe to
// call from any request goroutine.
func (h *FeedHub) BroadcastResult(result *models.Result) {
	if h == nil {
		return
	}

	message := FeedMessage{
		Type:    "result_submitted",
		Payload: result,
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshaling result feed message: %v", err)
		return
	}

	h.broadcast <- data
}

func (h *FeedHub) RegisterClient(conn *websocket.Conn) *FeedClient {
	client := &FeedClient{
		hub:    h,
		socket: conn,
		send:   make(chan []byte, 256),
	}

	h.register <- client

	go client.writePump()
	go client.readPump()

	return client
}

func (c *FeedClient) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.socket.Close()
	}()

	for {
		_, message, err := c.socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			break
		}

		var msg FeedMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("Error unmarshaling feed message: %v", err)
			continue
		}

		if msg.Type == "ping" {
			response := FeedMessage{Type: "pong", Payload: "pong"}
			data, _ := json.Marshal(response)
			c.trySend(data)
		}
	}
}

// trySend queues a message for the write pump. The hub closes the send
// channel when it drops a slow client, which can race with the read pump
// replying to a ping, so the send has to survive a closed channel.
func (c *FeedClient) trySend(data []byte) {
	defer func() {
		_ = recover()
	}()

	select {
	case c.send <- data:
	default:
	}
}

func (c *FeedClient) writePump() {
	defer func() {
		c.socket.Close()
	}()

	for message := range c.send {
		w, err := c.socket.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}

		w.Write(message)

		if err := w.Close(); err != nil {
			return
		}
	}

	c.socket.WriteMessage(websocket.CloseMessage, []byte{})
}
