package ws

import (
	"context"
	"log"
	"sync"

	"simai/internal/notifications"
	"simai/internal/page"
)

const (
	TypePainel = "painel"
	TypeAlerta = "alerta"
)

// Envelope is what viewers receive: a full page snapshot or an alert.
type Envelope struct {
	Type   string                      `json:"type"`
	Painel *page.Snapshot              `json:"painel,omitempty"`
	Alerta *notifications.Notification `json:"alerta,omitempty"`
}

type Hub struct {
	Clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	Broadcast  chan *Envelope
	Mu         *sync.RWMutex
	Page       *page.Page

	// latest holds the newest snapshot not yet fanned out; pending wakes Run.
	latestMu sync.Mutex
	latest   *page.Snapshot
	pending  chan struct{}

	done chan struct{}
}

func NewHub(p *page.Page) *Hub {
	return &Hub{
		Clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Broadcast:  make(chan *Envelope, 32),
		Mu:         &sync.RWMutex{},
		Page:       p,
		pending:    make(chan struct{}, 1),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.Mu.Lock()
			for id, cl := range h.Clients {
				delete(h.Clients, id)
				close(cl.Message)
			}
			h.Mu.Unlock()
			return

		case cl := <-h.Register:
			h.Mu.Lock()
			if _, ok := h.Clients[cl.ID]; !ok {
				h.Clients[cl.ID] = cl
				if h.Page != nil {
					snap := h.Page.Snapshot()
					cl.Message <- &Envelope{Type: TypePainel, Painel: &snap}
				}
			}
			h.Mu.Unlock()

		case cl := <-h.Unregister:
			h.Mu.Lock()
			if _, ok := h.Clients[cl.ID]; ok {
				delete(h.Clients, cl.ID)
				close(cl.Message)
			}
			h.Mu.Unlock()

		case <-h.pending:
			if snap := h.takeLatest(); snap != nil {
				h.broadcast(&Envelope{Type: TypePainel, Painel: snap})
			}

		case m := <-h.Broadcast:
			h.broadcast(m)
		}
	}
}

func (h *Hub) broadcast(m *Envelope) {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	for id, cl := range h.Clients {
		select {
		case cl.Message <- m:
		default:
			log.Printf("[WS] visualizador %s lento, desconectando", id)
			delete(h.Clients, id)
			close(cl.Message)
		}
	}
}

// PublishSnapshot hands a page snapshot to every viewer. It never blocks:
// a snapshot still waiting for Run is replaced by the newer one.
func (h *Hub) PublishSnapshot(s page.Snapshot) {
	h.latestMu.Lock()
	h.latest = &s
	h.latestMu.Unlock()

	select {
	case h.pending <- struct{}{}:
	default:
	}
}

func (h *Hub) takeLatest() *page.Snapshot {
	h.latestMu.Lock()
	defer h.latestMu.Unlock()
	snap := h.latest
	h.latest = nil
	return snap
}

// Alert queues a notification for every viewer.
func (h *Hub) Alert(ctx context.Context, n notifications.Notification) error {
	select {
	case h.Broadcast <- &Envelope{Type: TypeAlerta, Alerta: &n}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// join registers cl unless the hub has stopped.
func (h *Hub) join(cl *Client) bool {
	select {
	case h.Register <- cl:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(cl *Client) {
	select {
	case h.Unregister <- cl:
	case <-h.done:
	}
}

func (h *Hub) Count() int {
	h.Mu.RLock()
	defer h.Mu.RUnlock()
	return len(h.Clients)
}
