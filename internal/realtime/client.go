package realtime

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/24KD1A0503/jn/internal/models"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

type client struct {
	id   string
	role models.Role
	conn *websocket.Conn
	send chan Message
}

// Server upgrades HTTP requests and attaches them to a hub.
type Server struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

func NewServer(hub *Hub, origins []string) *Server {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	return &Server{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				o := r.Header.Get("Origin")
				if o == "" {
					return true
				}
				_, ok := allowed[o]
				return ok
			},
		},
	}
}

// Serve upgrades the connection and blocks until the peer goes away.
func (s *Server) Serve(w http.ResponseWriter, r *http.Request, role models.Role) error {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	c := newClient(role)
	c.conn = conn

	select {
	case s.hub.register <- c:
	case <-s.hub.done:
		return conn.Close()
	case <-r.Context().Done():
		return conn.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		c.writePump()
		cancel()
	}()
	c.readPump(ctx, s.hub)
	return nil
}

// readPump discards inbound frames; the feed is server-to-client only.
func (c *client) readPump(ctx context.Context, h *Hub) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		case <-ctx.Done():
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
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
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
