package server

import (
	"encoding/json"
	"log"

	"github.com/jvs-dev/memory-game-guadalupe/internal/protocol"

	"github.com/gorilla/websocket"
)

// Client represents a single WebSocket connection. Each client owns at most
// one game session; solo and hot-seat two-player games both run in one
// browser.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	ID   string // unique identifier assigned on registration
}

// ReadPump handles incoming messages from the WebSocket connection.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	for {
		_, messageBytes, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Unexpected close from client %s: %v", c.ID, err)
			}
			break
		}

		var msg protocol.Message
		if err := json.Unmarshal(messageBytes, &msg); err != nil {
			log.Printf("Error unmarshalling message from client %s: %v", c.ID, err)
			continue
		}

		c.hub.processMessage <- clientMessage{client: c, message: msg}
	}
}

// WritePump handles outgoing messages to the WebSocket connection.
func (c *Client) WritePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("Write error to client %s: %v", c.ID, err)
			break
		}
	}
}
