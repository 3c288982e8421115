package trivia

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/sanjaykbiswas/trivia-app-sub001/trivia/internal"

	"github.com/coder/websocket"
	"github.com/jpillora/backoff"
)

// Client maintains one logical game-service connection per identity pair.
// It owns the socket and the retry timer exclusively; consumers observe the
// connection only through State, the state-change callback, and the typed
// event callbacks.
//
// Register callbacks before the first Connect.
type Client struct {
	cfg        Config
	logger     Logger
	dispatcher Dispatcher

	onState           func(StateEvent)
	onReconnecting    func(attempt int)
	onReconnectFailed func(attempts int)

	mu       sync.Mutex
	identity Identity
	state    ConnectionState
	conn     *internal.Conn
	cancel   context.CancelFunc
	retry    *time.Timer
	backoff  *backoff.Backoff
	attempts int
	manual   bool
	dialing  bool
	// gen increments on every new attempt and on teardown. Handlers for a
	// superseded socket compare their generation against it and bail, which
	// stands in for a lock around the socket's async callbacks.
	gen uint64
}

// NewClient constructs a client with provided config.
// Use DefaultConfig() as a starting point and modify as needed.
func NewClient(cfg Config) *Client {
	if cfg.ReconnectInterval <= 0 {
		cfg.ReconnectInterval = 5 * time.Second
	}
	factor := cfg.ReconnectBackoffFactor
	if factor < 1 {
		factor = 1
	}
	maxDelay := cfg.MaxReconnectDelay
	if maxDelay < cfg.ReconnectInterval {
		maxDelay = cfg.ReconnectInterval
	}
	return &Client{
		cfg:    cfg,
		logger: noopLogger{},
		state:  StateDisconnected,
		backoff: &backoff.Backoff{
			Min:    cfg.ReconnectInterval,
			Max:    maxDelay,
			Factor: factor,
		},
	}
}

// SetLogger overrides logger (optional).
func (c *Client) SetLogger(l Logger) {
	if l == nil {
		return
	}
	c.logger = l
}

// OnStateChanged registers callback for connection state transitions.
func (c *Client) OnStateChanged(fn func(StateEvent)) { c.onState = fn }

// OnReconnecting registers callback fired when a reconnect attempt is
// scheduled, with the attempt number (1-based).
func (c *Client) OnReconnecting(fn func(attempt int)) { c.onReconnecting = fn }

// OnReconnectFailed registers callback fired when reconnect attempts are
// exhausted.
func (c *Client) OnReconnectFailed(fn func(attempts int)) { c.onReconnectFailed = fn }

// OnParticipantUpdate registers callback for roster updates.
func (c *Client) OnParticipantUpdate(fn func(ParticipantUpdateEvent)) {
	c.dispatcher.SetOnParticipantUpdate(fn)
}

// OnParticipantLeft registers callback for players leaving.
func (c *Client) OnParticipantLeft(fn func(ParticipantLeftEvent)) {
	c.dispatcher.SetOnParticipantLeft(fn)
}

// OnUserNameUpdated registers callback for display-name changes.
func (c *Client) OnUserNameUpdated(fn func(UserNameUpdatedEvent)) {
	c.dispatcher.SetOnUserNameUpdated(fn)
}

// OnGameStarted registers callback for the game-started event.
func (c *Client) OnGameStarted(fn func(GameStartedEvent)) { c.dispatcher.SetOnGameStarted(fn) }

// OnNextQuestion registers callback for question transitions.
func (c *Client) OnNextQuestion(fn func(NextQuestionEvent)) { c.dispatcher.SetOnNextQuestion(fn) }

// OnGameOver registers callback for the final standings.
func (c *Client) OnGameOver(fn func(GameOverEvent)) { c.dispatcher.SetOnGameOver(fn) }

// OnGameCancelled registers callback for host cancellation.
func (c *Client) OnGameCancelled(fn func(GameCancelledEvent)) { c.dispatcher.SetOnGameCancelled(fn) }

// OnError registers callback for transport, protocol, and decode errors.
func (c *Client) OnError(fn func(error)) { c.dispatcher.SetOnError(fn) }

// State returns the current connection state.
func (c *Client) State() ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Identity returns the identity of the current connection, if any.
func (c *Client) Identity() Identity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.identity
}

// Connect opens a connection for the given identity. It returns after
// validation; dialing proceeds asynchronously and the outcome is reported
// through the state and error callbacks. Calling Connect again for the same
// identity while an attempt is in flight or the socket is open is a no-op.
// A different identity supersedes the previous connection: the pending
// retry is cancelled, the old socket closed, and the retry counter reset.
func (c *Client) Connect(ctx context.Context, id Identity) error {
	if !id.Complete() {
		return NewError(ErrorInvalidIdentity, "both game id and user id are required")
	}

	c.mu.Lock()
	if c.identity == id && (c.dialing || c.state == StateConnecting || c.state == StateConnected) {
		c.mu.Unlock()
		c.logger.Debug("connect ignored, attempt already in flight", map[string]any{"identity": id.String()})
		return nil
	}
	old, conn, cancel := c.supersedeLocked()
	c.identity = id
	c.manual = false
	c.attempts = 0
	c.backoff.Reset()
	c.dialing = true
	gen := c.gen
	c.state = StateConnecting
	fn := c.onState
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if conn != nil {
		_ = conn.Close(websocket.StatusGoingAway, "superseded")
	}
	if fn != nil && old != StateConnecting {
		fn(StateEvent{OldState: old, NewState: StateConnecting})
	}
	go c.dial(ctx, id, gen)
	return nil
}

// Disconnect closes any open or opening connection and cancels any pending
// retry. The state flips to StateDisconnected before Disconnect returns and
// no retry will fire afterwards. Safe to call repeatedly or when no
// connection exists.
func (c *Client) Disconnect() {
	c.mu.Lock()
	c.manual = true
	old, conn, cancel := c.supersedeLocked()
	c.state = StateDisconnected
	fn := c.onState
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if conn != nil {
		_ = conn.Close(websocket.StatusNormalClosure, "client disconnect")
	}
	if fn != nil && old != StateDisconnected {
		fn(StateEvent{OldState: old, NewState: StateDisconnected})
	}
}

// supersedeLocked invalidates the current attempt: it stops the retry
// timer, detaches the socket and its read-loop cancel, and bumps the
// generation so late callbacks from the old socket are discarded. The
// caller must release the returned resources after unlocking.
func (c *Client) supersedeLocked() (ConnectionState, *internal.Conn, context.CancelFunc) {
	c.stopRetryLocked()
	conn := c.conn
	c.conn = nil
	cancel := c.cancel
	c.cancel = nil
	c.dialing = false
	c.gen++
	return c.state, conn, cancel
}

func (c *Client) stopRetryLocked() {
	if c.retry != nil {
		c.retry.Stop()
		c.retry = nil
	}
}

func (c *Client) dial(ctx context.Context, id Identity, gen uint64) {
	addr := c.cfg.socketURL(id)
	dialCtx := ctx
	if c.cfg.HandshakeTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, c.cfg.HandshakeTimeout)
		defer cancel()
	}
	ws, _, err := websocket.Dial(dialCtx, addr, nil)

	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		if err == nil {
			// A superseded socket that managed to open must not leak.
			_ = ws.Close(websocket.StatusGoingAway, "stale connection")
		}
		c.logger.Debug("ignoring stale dial result", map[string]any{"identity": id.String()})
		return
	}
	if err != nil {
		c.dialing = false
		c.mu.Unlock()
		c.logger.Warn("dial failed", map[string]any{"url": addr, "error": err.Error()})
		c.dispatcher.fireError(WrapError(ErrorConnection, "dial "+addr, err))
		// A socket that never opened counts as an abnormal close.
		c.closeTransition(gen, err, true)
		return
	}
	runCtx, cancel := context.WithCancel(context.Background())
	conn := internal.NewConn(ws, c.cfg.ReadTimeout, c.cfg.WriteTimeout)
	c.conn = conn
	c.cancel = cancel
	c.dialing = false
	c.attempts = 0
	c.backoff.Reset()
	c.stopRetryLocked()
	old := c.state
	c.state = StateConnected
	fn := c.onState
	c.mu.Unlock()

	c.logger.Info("connected", map[string]any{"identity": id.String()})
	if fn != nil && old != StateConnected {
		fn(StateEvent{OldState: old, NewState: StateConnected})
	}
	go c.readLoop(runCtx, conn, gen)
}

func (c *Client) readLoop(ctx context.Context, conn *internal.Conn, gen uint64) {
	for {
		data, err := conn.Read(ctx)
		if err != nil {
			c.handleReadError(ctx, gen, err)
			return
		}
		c.mu.Lock()
		current := gen == c.gen
		c.mu.Unlock()
		if !current {
			c.logger.Debug("dropping frame from stale socket", nil)
			return
		}
		var f Frame
		if jsonErr := json.Unmarshal(data, &f); jsonErr != nil {
			// Per-message failure: drop the frame, keep the connection.
			c.logger.Warn("dropping malformed frame", map[string]any{"error": jsonErr.Error()})
			c.dispatcher.fireError(WrapError(ErrorSerialization, "malformed frame", jsonErr))
			continue
		}
		c.dispatcher.Dispatch(f)
	}
}

func (c *Client) handleReadError(ctx context.Context, gen uint64, err error) {
	c.mu.Lock()
	current := gen == c.gen
	c.mu.Unlock()
	if !current || ctx.Err() != nil {
		// Superseded or torn down locally; whoever did that owns the
		// state transition.
		c.logger.Debug("stale read loop exit", map[string]any{"error": err.Error()})
		return
	}
	status := websocket.CloseStatus(err)
	abnormal := status != websocket.StatusNormalClosure
	if abnormal {
		c.logger.Warn("connection lost", map[string]any{"error": err.Error(), "close_status": int(status)})
		c.errorTransition(gen, err)
		c.dispatcher.fireError(WrapError(ErrorDisconnected, "connection lost", err))
	} else {
		c.logger.Info("server closed connection", map[string]any{"identity": c.Identity().String()})
	}
	c.closeTransition(gen, err, abnormal)
}

// errorTransition marks the transient error state. The close that follows
// drives the transition to StateDisconnected.
func (c *Client) errorTransition(gen uint64, cause error) {
	c.mu.Lock()
	if gen != c.gen || c.state == StateDisconnected {
		c.mu.Unlock()
		return
	}
	old := c.state
	c.state = StateError
	fn := c.onState
	c.mu.Unlock()
	if fn != nil {
		fn(StateEvent{OldState: old, NewState: StateError, Error: cause})
	}
}

func (c *Client) closeTransition(gen uint64, cause error, abnormal bool) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	conn := c.conn
	c.conn = nil
	cancel := c.cancel
	c.cancel = nil
	c.dialing = false
	manual := c.manual
	old := c.state
	c.state = StateDisconnected
	fn := c.onState
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if conn != nil {
		_ = conn.CloseNow()
	}
	if fn != nil && old != StateDisconnected {
		ev := StateEvent{OldState: old, NewState: StateDisconnected}
		if abnormal {
			ev.Error = cause
		}
		fn(ev)
	}
	if !abnormal || manual || !c.cfg.AutoReconnect {
		return
	}
	c.scheduleRetry(gen, cause)
}

func (c *Client) scheduleRetry(gen uint64, cause error) {
	c.mu.Lock()
	if gen != c.gen || c.manual {
		c.mu.Unlock()
		return
	}
	if maxTries := c.cfg.MaxReconnectTries; maxTries >= 0 && c.attempts >= maxTries {
		n := c.attempts
		fn := c.onReconnectFailed
		c.mu.Unlock()
		c.logger.Error("reconnect attempts exhausted", map[string]any{"attempts": n})
		c.dispatcher.fireError(WrapError(ErrorReconnectFailed, fmt.Sprintf("gave up after %d attempts", n), cause))
		if fn != nil {
			fn(n)
		}
		return
	}
	c.attempts++
	n := c.attempts
	delay := c.backoff.Duration()
	id := c.identity
	c.stopRetryLocked()
	c.retry = time.AfterFunc(delay, func() { c.redial(id, gen) })
	fn := c.onReconnecting
	c.mu.Unlock()

	c.logger.Info("scheduling reconnect", map[string]any{"attempt": n, "delay": delay.String()})
	if fn != nil {
		fn(n)
	}
}

func (c *Client) redial(id Identity, gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.manual || c.identity != id {
		c.mu.Unlock()
		return
	}
	c.retry = nil
	c.gen++
	newGen := c.gen
	c.dialing = true
	old := c.state
	c.state = StateConnecting
	fn := c.onState
	c.mu.Unlock()

	if fn != nil && old != StateConnecting {
		fn(StateEvent{OldState: old, NewState: StateConnecting})
	}
	go c.dial(context.Background(), id, newGen)
}
