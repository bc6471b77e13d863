package ws

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	hub *Hub
}

func NewWsHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

var upgrade = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) HandleWs(c echo.Context) error {
	conn, err := upgrade.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Printf("[WS] erro no upgrade: %v", err)
		return nil
	}

	cl := &Client{
		ID:      uuid.NewString(),
		Conn:    conn,
		Message: make(chan *Envelope, 16),
	}

	if !h.hub.join(cl) {
		_ = conn.Close()
		return nil
	}

	go cl.writeMessage()

	cl.readMessage(h.hub)

	return nil
}
