package kds

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/foodpoint-pos/utils"
)

// Event types
const (
	EventMenuItemCreated = "menu_item_created"
	EventMenuItemDeleted = "menu_item_deleted"
	EventOrderCreated    = "order_created"
	EventOrderUpdated    = "order_updated"
	EventOrderPaid       = "order_paid"
	EventOrderDeleted    = "order_deleted"
	EventSaleRecorded    = "sale_recorded"
)

const (
	writeWait  = 5 * time.Second
	sendBuffer = 32
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// client owns one socket. Only its write loop touches the connection for writes.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub holds the connected kitchen and counter screens and fans events out to them.
type Hub struct {
	clients map[*websocket.Conn]*client
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]*client),
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mutex.Lock()
	h.clients[conn] = c
	h.mutex.Unlock()

	go h.writeLoop(c)
}

// Unregister drops the client; its write loop closes the socket.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.removeLocked(conn)
}

func (h *Hub) removeLocked(conn *websocket.Conn) {
	if c, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		close(c.send)
	}
}

func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

func (h *Hub) writeLoop(c *client) {
	defer c.conn.Close()

	for payload := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			utils.ErrorLogger.WithError(err).Warn("dropping websocket client")
			h.Unregister(c.conn)
			// drain until Unregister closes the channel
			for range c.send {
			}
			return
		}
	}
}

// Publish queues one event for every client without blocking. A client whose
// queue is full is dropped.
func (h *Hub) Publish(event string, data interface{}) {
	payload, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		utils.ErrorLogger.WithError(err).WithField("event", event).Error("marshal hub message")
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	utils.InfoLogger.WithFields(logrus.Fields{
		"event":   event,
		"clients": len(h.clients),
	}).Debug("broadcasting")

	for conn, c := range h.clients {
		select {
		case c.send <- payload:
		default:
			utils.ErrorLogger.WithField("event", event).Warn("websocket client too slow, dropping")
			h.removeLocked(conn)
		}
	}
}
