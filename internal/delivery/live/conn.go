package live

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	maxMessage = 64 << 10
)

// conn serialises writes to one socket. Reads happen on the handler goroutine only.
type conn struct {
	ws     *websocket.Conn
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
}

func newConn(ws *websocket.Conn, logger *slog.Logger) *conn {
	ws.SetReadLimit(maxMessage)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	return &conn{ws: ws, logger: logger}
}

// send writes one JSON frame. Frames for a closed socket are dropped.
func (c *conn) send(v any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.ws.WriteJSON(v); err != nil {
		c.logger.Debug("[Live] Dropping frame", slog.Any("error", err))
	}
}

// heartbeat pings the client until ctx ends.
func (c *conn) heartbeat(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.mu.Lock()
			if c.closed {
				c.mu.Unlock()

				return
			}
			err := c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			c.mu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

// close sends a close frame with reason and releases the socket.
func (c *conn) close(code int, reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	_ = c.ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), time.Now().Add(writeWait))
	_ = c.ws.Close()
}
