// Package gateway maintains the websocket session with the chat gateway:
// it decodes pushed events into typed values, correlates command replies by
// sync id, and reconnects with backoff when the connection drops.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/chatstreams/config"
	"github.com/c360/chatstreams/errors"
	"github.com/c360/chatstreams/event"
	"github.com/c360/chatstreams/pkg/buffer"
	"github.com/c360/chatstreams/pkg/retry"
)

// pushSyncID marks server-initiated envelopes. Everything else is a reply
// to a command the client sent.
const pushSyncID = "-1"

// dispatchBatch bounds how many buffered events one drain pass takes, so a
// long backlog cannot starve the shutdown check.
const dispatchBatch = 32

// envelope is the wire frame for both directions: pushes and replies carry
// SyncID and Data, outgoing commands carry SyncID, Command, and Content.
type envelope struct {
	SyncID     string          `json:"syncId"`
	Command    string          `json:"command,omitempty"`
	SubCommand string          `json:"subCommand,omitempty"`
	Content    any             `json:"content,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
}

// Client is a gateway session. Create one with NewClient, start it with
// Connect, consume pushed events from Events, and issue commands through
// the Send and Respond methods. All methods are safe for concurrent use.
type Client struct {
	cfg    *config.Config
	logger *slog.Logger
	dialer *websocket.Dialer

	conn   *websocket.Conn
	connMu sync.Mutex

	// writeMu serializes writes; gorilla/websocket allows one writer.
	writeMu sync.Mutex

	inbound *buffer.Ring[event.Event]
	wake    chan struct{}
	events  chan event.Event

	pending   map[string]chan json.RawMessage
	pendingMu sync.Mutex

	shutdown     chan struct{}
	shutdownOnce sync.Once
	started      atomic.Bool
	wg           sync.WaitGroup

	metrics  *Metrics
	registry prometheus.Registerer
}

// Option configures a Client.
type Option func(*Client) error

// WithLogger sets the structured logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}

// WithMetrics registers client metrics with the given registry.
func WithMetrics(registry prometheus.Registerer) Option {
	return func(c *Client) error {
		m, err := newMetrics(registry)
		if err != nil {
			return errors.WrapFatal(err, "gateway", "NewClient", "register metrics")
		}
		c.metrics = m
		c.registry = registry
		return nil
	}
}

// NewClient creates a client for the configured gateway. The configuration
// must already be validated; see config.Load.
func NewClient(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, errors.WrapInvalid(errors.ErrMissingConfig, "gateway", "NewClient", "nil config")
	}

	c := &Client{
		cfg:      cfg,
		logger:   slog.Default(),
		dialer:   &websocket.Dialer{HandshakeTimeout: cfg.Gateway.ConnectTimeout},
		wake:     make(chan struct{}, 1),
		events:   make(chan event.Event),
		pending:  make(map[string]chan json.RawMessage),
		shutdown: make(chan struct{}),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	ringOpts := []buffer.Option[event.Event]{
		buffer.WithDropCallback[event.Event](func(ev event.Event) {
			c.logger.Warn("dropping buffered event", "type", ev.Type())
		}),
	}
	if c.registry != nil {
		ringOpts = append(ringOpts, buffer.WithMetrics[event.Event](c.registry, "chatstreams_gateway"))
	}
	c.inbound = buffer.NewRing[event.Event](cfg.Session.BufferSize, ringOpts...)

	return c, nil
}

// Connect dials the gateway and starts the read and dispatch loops. The
// context bounds the initial dial only; the session itself lives until
// Close.
func (c *Client) Connect(ctx context.Context) error {
	if !c.started.CompareAndSwap(false, true) {
		return errors.WrapInvalid(errors.ErrAlreadyStarted, "gateway", "Connect", "already connected")
	}

	conn, err := c.dial(ctx)
	if err != nil {
		c.started.Store(false)
		return errors.WrapTransient(err, "gateway", "Connect", "dial gateway")
	}
	c.setConn(conn)
	if c.metrics != nil {
		c.metrics.connectsTotal.Inc()
		c.metrics.connected.Set(1)
	}
	c.logger.Info("connected to gateway", "url", c.cfg.Gateway.URL())

	c.wg.Add(2)
	go c.runLoop(conn)
	go c.dispatchLoop()
	return nil
}

// Events returns the stream of pushed events. The channel is closed when
// the session ends, either through Close or after reconnection gives up.
func (c *Client) Events() <-chan event.Event {
	return c.events
}

// Close shuts the session down and waits for the loops to exit.
func (c *Client) Close() error {
	if !c.started.Load() {
		return errors.WrapInvalid(errors.ErrNotStarted, "gateway", "Close", "not connected")
	}

	c.shutdownOnce.Do(func() { close(c.shutdown) })
	if conn := c.currentConn(); conn != nil {
		_ = conn.Close()
	}
	c.wg.Wait()
	c.inbound.Clear()
	return nil
}

// dial establishes the websocket connection, retrying per the configured
// retry policy.
func (c *Client) dial(ctx context.Context) (*websocket.Conn, error) {
	url := fmt.Sprintf("%s/all?verifyKey=%s&qq=%d",
		c.cfg.Gateway.URL(), c.cfg.Gateway.AuthKey, c.cfg.Gateway.BotQQ)

	retryCfg := errors.RetryConfig{
		MaxRetries:    c.cfg.Retry.MaxAttempts,
		InitialDelay:  c.cfg.Retry.InitialDelay,
		MaxDelay:      c.cfg.Retry.MaxDelay,
		BackoffFactor: 2.0,
	}.ToRetryConfig()

	return retry.DoWithResult(ctx, retryCfg, func() (*websocket.Conn, error) {
		conn, resp, err := c.dialer.DialContext(ctx, url, nil)
		if err != nil {
			c.metrics.trackError("connect")
			c.logger.Warn("gateway dial failed", "error", err)
			if resp != nil && resp.StatusCode >= 400 && resp.StatusCode < 500 {
				// The handshake was rejected outright; the same
				// credentials will not succeed on a retry.
				return nil, retry.NonRetryable(err)
			}
			return nil, err
		}
		return conn, nil
	})
}

// runLoop reads until the connection drops, then reconnects until either
// the retry budget is exhausted or Close is called.
func (c *Client) runLoop(conn *websocket.Conn) {
	defer c.wg.Done()
	defer close(c.events)

	for {
		c.readLoop(conn)

		c.setConn(nil)
		if c.metrics != nil {
			c.metrics.connected.Set(0)
		}

		select {
		case <-c.shutdown:
			return
		default:
		}

		c.logger.Warn("gateway connection lost, reconnecting")
		var err error
		conn, err = c.dial(context.Background())
		if err != nil {
			c.logger.Error("gateway reconnection failed", "error", err)
			c.metrics.trackError("reconnect")
			return
		}
		c.setConn(conn)
		if c.metrics != nil {
			c.metrics.reconnects.Inc()
			c.metrics.connected.Set(1)
		}
		c.logger.Info("reconnected to gateway")
	}
}

// readLoop decodes frames from one connection until it fails.
func (c *Client) readLoop(conn *websocket.Conn) {
	for {
		select {
		case <-c.shutdown:
			return
		default:
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			c.metrics.trackError("bad_frame")
			c.logger.Warn("undecodable gateway frame", "error", err)
			continue
		}

		if env.SyncID == pushSyncID || env.SyncID == "" {
			c.handlePush(env.Data)
			continue
		}
		c.deliverReply(env.SyncID, env.Data)
	}
}

// handlePush decodes a pushed event and buffers it for dispatch.
func (c *Client) handlePush(data []byte) {
	ev, err := event.Parse(data)
	if err != nil {
		c.metrics.trackError("bad_event")
		c.logger.Warn("undecodable gateway event", "error", err)
		return
	}
	if c.metrics != nil {
		c.metrics.eventsReceived.WithLabelValues(string(ev.Type())).Inc()
	}

	c.inbound.Write(ev)
	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// dispatchLoop drains the inbound buffer onto the events channel. The
// buffer absorbs bursts so the read loop never blocks on a slow consumer.
func (c *Client) dispatchLoop() {
	defer c.wg.Done()

	for {
		select {
		case <-c.shutdown:
			return
		case <-c.wake:
		}

		for {
			batch := c.inbound.ReadBatch(dispatchBatch)
			if len(batch) == 0 {
				break
			}
			for _, ev := range batch {
				select {
				case c.events <- ev:
				case <-c.shutdown:
					return
				}
			}
		}
	}
}

// commandStatus is the result header every command reply starts with.
type commandStatus struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// call sends one command and waits for its correlated reply.
func (c *Client) call(ctx context.Context, command string, content any) (json.RawMessage, error) {
	conn := c.currentConn()
	if conn == nil {
		return nil, errors.WrapTransient(errors.ErrNoConnection, "gateway", command, "send command")
	}

	syncID := uuid.NewString()
	reply := make(chan json.RawMessage, 1)
	c.pendingMu.Lock()
	c.pending[syncID] = reply
	c.pendingMu.Unlock()
	defer func() {
		c.pendingMu.Lock()
		delete(c.pending, syncID)
		c.pendingMu.Unlock()
	}()

	c.writeMu.Lock()
	err := conn.WriteJSON(envelope{SyncID: syncID, Command: command, Content: content})
	c.writeMu.Unlock()
	if err != nil {
		c.metrics.trackError("write")
		return nil, errors.WrapTransient(err, "gateway", command, "write command")
	}
	if c.metrics != nil {
		c.metrics.commandsSent.WithLabelValues(command).Inc()
	}

	select {
	case data := <-reply:
		var status commandStatus
		if err := json.Unmarshal(data, &status); err != nil {
			return nil, errors.WrapInvalid(err, "gateway", command, "decode reply")
		}
		if status.Code != 0 {
			if c.metrics != nil {
				c.metrics.commandFailures.WithLabelValues(command).Inc()
			}
			return nil, errors.WrapInvalid(
				fmt.Errorf("gateway rejected %s: code %d: %s", command, status.Code, status.Msg),
				"gateway", command, "execute command")
		}
		return data, nil
	case <-ctx.Done():
		return nil, errors.WrapTransient(ctx.Err(), "gateway", command, "await reply")
	case <-c.shutdown:
		return nil, errors.WrapTransient(errors.ErrShuttingDown, "gateway", command, "await reply")
	}
}

// deliverReply routes a correlated reply to its waiting caller. Replies
// for callers that already gave up are dropped.
func (c *Client) deliverReply(syncID string, data json.RawMessage) {
	c.pendingMu.Lock()
	reply, ok := c.pending[syncID]
	c.pendingMu.Unlock()
	if !ok {
		c.logger.Debug("reply without waiter", "sync_id", syncID)
		return
	}
	select {
	case reply <- data:
	default:
	}
}

func (c *Client) setConn(conn *websocket.Conn) {
	c.connMu.Lock()
	c.conn = conn
	c.connMu.Unlock()
}

func (c *Client) currentConn() *websocket.Conn {
	c.connMu.Lock()
	defer c.connMu.Unlock()
	return c.conn
}

// Connected reports whether the client currently holds a live connection.
func (c *Client) Connected() bool {
	return c.currentConn() != nil
}
