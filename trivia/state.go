package trivia

// ConnectionState represents the current state of the game-service connection.
type ConnectionState int

const (
	// StateDisconnected means no connection exists and none is being opened.
	StateDisconnected ConnectionState = iota

	// StateConnecting means a dial is in flight.
	StateConnecting

	// StateConnected means the socket is open and delivering events.
	StateConnected

	// StateError marks a transport error. It is transient: the close that
	// follows the error drives the transition to StateDisconnected.
	StateError
)

// String returns the string representation of a ConnectionState.
func (s ConnectionState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// StateEvent represents a state change event.
type StateEvent struct {
	OldState ConnectionState
	NewState ConnectionState
	Error    error // Optional error that caused the state change
}
