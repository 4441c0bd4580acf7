package realtime

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/24KD1A0503/jn/internal/models"
)

type Message struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

const sendBuffer = 16

// Hub fans SOS alerts out to connected responder consoles. A single
// goroutine (Run) owns the client set.
type Hub struct {
	register   chan *client
	unregister chan *client
	broadcast  chan Message
	count      chan chan int
	done       chan struct{} // closed when Run returns
	log        zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan Message, 64),
		count:      make(chan chan int),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run serves the hub until ctx is done, then closes every client.
// Run must be called at most once.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	clients := make(map[*client]struct{})
	drop := func(c *client) {
		if _, ok := clients[c]; ok {
			delete(clients, c)
			close(c.send)
			h.log.Info().Str("client", c.id).Int("clients", len(clients)).Msg("realtime client disconnected")
		}
	}

	for {
		select {
		case <-ctx.Done():
			for c := range clients {
				drop(c)
			}
			return
		case c := <-h.register:
			clients[c] = struct{}{}
			h.log.Info().Str("client", c.id).Str("role", string(c.role)).Int("clients", len(clients)).Msg("realtime client connected")
		case c := <-h.unregister:
			drop(c)
		case msg := <-h.broadcast:
			for c := range clients {
				select {
				case c.send <- msg:
				default:
					h.log.Warn().Str("client", c.id).Msg("realtime client too slow, dropping")
					drop(c)
				}
			}
		case reply := <-h.count:
			reply <- len(clients)
		}
	}
}

// PublishSOS queues an alert for every connected client. It never blocks
// the caller; when the queue is full the alert is dropped and logged.
func (h *Hub) PublishSOS(a models.SOSAlert) {
	select {
	case h.broadcast <- Message{Event: "sos", Data: a}:
	default:
		h.log.Warn().Str("alertId", a.AlertID).Msg("realtime queue full, alert not broadcast")
	}
}

// Clients reports the number of connected clients.
func (h *Hub) Clients(ctx context.Context) int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-ctx.Done():
		return 0
	}
}

func newClient(role models.Role) *client {
	return &client{id: uuid.NewString(), role: role, send: make(chan Message, sendBuffer)}
}
