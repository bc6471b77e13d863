package ws

import (
	"log"

	"github.com/gorilla/websocket"
)

type Client struct {
	ID      string
	Conn    *websocket.Conn
	Message chan *Envelope
}

func (c *Client) writeMessage() {
	defer func() {
		err := c.Conn.Close()
		if err != nil {
			return
		}
	}()

	for {
		message, ok := <-c.Message
		if !ok {
			_ = c.Conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}

		if err := c.Conn.WriteJSON(message); err != nil {
			log.Printf("[WS] erro ao escrever para %s: %v", c.ID, err)
			return
		}
	}
}

// readMessage only watches for the viewer going away; viewers do not send
// anything the painel acts on.
func (c *Client) readMessage(hub *Hub) {
	defer hub.leave(c)

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] visualizador %s fechou: %v", c.ID, err)
			}
			return
		}
	}
}
