package trivia

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWebSocketBaseURLDerived(t *testing.T) {
	cfg := Config{HTTPBaseURL: "http://localhost:8000"}
	require.Equal(t, "ws://localhost:8000", cfg.WebSocketBaseURL())

	cfg.HTTPBaseURL = "https://trivia.example.com/api"
	require.Equal(t, "wss://trivia.example.com/api", cfg.WebSocketBaseURL())
}

func TestWebSocketBaseURLOverride(t *testing.T) {
	cfg := Config{
		HTTPBaseURL: "https://trivia.example.com",
		WSBaseURL:   "wss://realtime.example.com",
	}
	require.Equal(t, "wss://realtime.example.com", cfg.WebSocketBaseURL())
}

func TestSocketURL(t *testing.T) {
	cfg := Config{HTTPBaseURL: "http://localhost:8000/"}
	got := cfg.socketURL(Identity{GameID: "G1", UserID: "U1"})
	require.Equal(t, "ws://localhost:8000/ws/G1/U1", got)
}

func TestIdentityComplete(t *testing.T) {
	require.False(t, Identity{}.Complete())
	require.False(t, Identity{GameID: "G1"}.Complete())
	require.False(t, Identity{UserID: "U1"}.Complete())
	require.True(t, Identity{GameID: "G1", UserID: "U1"}.Complete())
}

func TestNewGuestUserID(t *testing.T) {
	a, b := NewGuestUserID(), NewGuestUserID()
	require.True(t, strings.HasPrefix(a, "guest-"))
	require.NotEqual(t, a, b)
}
