package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs attaches an upgraded operator connection to the hub.
func ServeWs(hub *Hub, c *websocket.Conn, operatorID uuid.UUID) {
	client := &Client{Hub: hub, Conn: c, OperatorID: operatorID, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	go client.writePump()
	client.readPump() // blocks until the connection drops
}
