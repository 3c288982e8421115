package internal

import (
	"context"
	"io"
	"time"

	"github.com/coder/websocket"
)

// Conn wraps websocket.Conn with timeouts. Reads return the raw frame so
// the caller can treat a malformed payload as a per-message error instead
// of a connection error.
type Conn struct {
	ws           *websocket.Conn
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func NewConn(ws *websocket.Conn, readTimeout, writeTimeout time.Duration) *Conn {
	return &Conn{ws: ws, readTimeout: readTimeout, writeTimeout: writeTimeout}
}

// Read returns the next frame's bytes.
func (c *Conn) Read(ctx context.Context) ([]byte, error) {
	if c.readTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.readTimeout)
		defer cancel()
	}
	_, r, err := c.ws.Reader(ctx)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

// Write sends one text frame.
func (c *Conn) Write(ctx context.Context, data []byte) error {
	if c.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.writeTimeout)
		defer cancel()
	}
	return c.ws.Write(ctx, websocket.MessageText, data)
}

func (c *Conn) Close(code websocket.StatusCode, reason string) error {
	return c.ws.Close(code, reason)
}

// CloseNow releases the underlying connection without a close handshake.
// Used for cleanup after the transport has already failed.
func (c *Conn) CloseNow() error {
	return c.ws.CloseNow()
}
