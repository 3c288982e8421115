package trivia

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config controls how the SDK connects. All values are explicit; the SDK
// never reads the environment itself.
type Config struct {
	// HTTPBaseURL is the base URL of the game service,
	// e.g. "http://localhost:8000".
	HTTPBaseURL string

	// WSBaseURL overrides the WebSocket base URL. When empty it is derived
	// from HTTPBaseURL by swapping the scheme (http -> ws, https -> wss).
	WSBaseURL string

	HandshakeTimeout time.Duration
	// ReadTimeout bounds a single read. Zero disables it; the service sends
	// no pings and waiting rooms can idle for minutes between frames.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// AutoReconnect enables reconnection after an abnormal close.
	AutoReconnect bool

	// ReconnectInterval is the base delay before a reconnect attempt.
	ReconnectInterval time.Duration

	// ReconnectBackoffFactor grows the delay between attempts. 1 keeps the
	// interval fixed.
	ReconnectBackoffFactor float64

	// MaxReconnectDelay caps the grown delay. Zero means no growth beyond
	// ReconnectInterval.
	MaxReconnectDelay time.Duration

	// MaxReconnectTries caps reconnect attempts per connection. Negative
	// means retry forever; zero disables retries even with AutoReconnect.
	MaxReconnectTries int
}

// DefaultConfig returns sensible defaults. Set timeouts to 0 to disable.
func DefaultConfig() Config {
	return Config{
		HandshakeTimeout:       10 * time.Second,
		WriteTimeout:           10 * time.Second,
		AutoReconnect:          true,
		ReconnectInterval:      5 * time.Second,
		ReconnectBackoffFactor: 1,
		MaxReconnectTries:      5,
	}
}

// WebSocketBaseURL resolves the effective WebSocket base URL.
func (c Config) WebSocketBaseURL() string {
	if c.WSBaseURL != "" {
		return c.WSBaseURL
	}
	u, err := url.Parse(c.HTTPBaseURL)
	if err != nil {
		return c.HTTPBaseURL
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}
	return u.String()
}

// socketURL builds the connection URL for an identity pair.
func (c Config) socketURL(id Identity) string {
	base := strings.TrimRight(c.WebSocketBaseURL(), "/")
	return fmt.Sprintf("%s/ws/%s/%s", base, url.PathEscape(id.GameID), url.PathEscape(id.UserID))
}
