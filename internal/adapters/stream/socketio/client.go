package socketio

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/mindscreen-cli/internal/domain"
	"github.com/bnema/mindscreen-cli/internal/ports"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	defaultHandshakeTimeout = 10 * time.Second
	socketPath              = "/socket.io/"
	runIDParam              = "run_id"
	eventBuffer             = 8
)

type Options struct {
	// URL is the server origin, http(s) or ws(s).
	URL              string
	Dialer           *websocket.Dialer
	HandshakeTimeout time.Duration
	Logger           *zap.Logger
}

// Client subscribes to the screening server's Socket.IO status channel using
// the websocket transport only.
type Client struct {
	endpoint *url.URL
	dialer   *websocket.Dialer
	timeout  time.Duration
	log      *zap.Logger
}

var _ ports.StatusStream = (*Client)(nil)

func NewClient(opts Options) (*Client, error) {
	endpoint, err := socketEndpoint(opts.URL)
	if err != nil {
		return nil, err
	}

	dialer := opts.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}

	timeout := opts.HandshakeTimeout
	if timeout <= 0 {
		timeout = defaultHandshakeTimeout
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{endpoint: endpoint, dialer: dialer, timeout: timeout, log: log}, nil
}

func (c *Client) Subscribe(ctx context.Context, runID string) (<-chan domain.StatusEvent, error) {
	target := *c.endpoint
	query := target.Query()
	if runID != "" {
		query.Set(runIDParam, runID)
	}
	target.RawQuery = query.Encode()

	dialCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn, resp, err := c.dialer.DialContext(dialCtx, target.String(), nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("dial status channel: %w: %w", domain.ErrTransport, err)
	}

	if err := c.handshake(conn); err != nil {
		_ = conn.Close()
		return nil, err
	}

	events := make(chan domain.StatusEvent, eventBuffer)
	stop := make(chan struct{})

	go func() {
		select {
		case <-ctx.Done():
			deadline := time.Now().Add(time.Second)
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
			_ = conn.Close()
		case <-stop:
		}
	}()

	go func() {
		defer close(events)
		defer close(stop)
		defer conn.Close()
		c.readLoop(ctx, conn, events)
	}()

	return events, nil
}

// handshake waits for the Engine.IO open packet and joins the default
// namespace.
func (c *Client) handshake(conn *websocket.Conn) error {
	_ = conn.SetReadDeadline(time.Now().Add(c.timeout))
	defer conn.SetReadDeadline(time.Time{})

	_, data, err := conn.ReadMessage()
	if err != nil {
		return fmt.Errorf("read open packet: %w: %w", domain.ErrTransport, err)
	}
	if len(data) == 0 || data[0] != engineOpen {
		return fmt.Errorf("unexpected first packet %q", truncate(string(data)))
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte(connectPacket())); err != nil {
		return fmt.Errorf("join namespace: %w: %w", domain.ErrTransport, err)
	}

	return nil
}

func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn, events chan<- domain.StatusEvent) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.log.Warn("status channel closed", zap.Error(err))
			}
			return
		}

		raw := string(data)
		if raw == "" {
			continue
		}

		switch raw[0] {
		case enginePing:
			if err := conn.WriteMessage(websocket.TextMessage, []byte(pongPacket())); err != nil {
				c.log.Warn("answer ping", zap.Error(err))
				return
			}
			continue
		case engineClose:
			return
		case enginePong, engineNoop, engineOpen:
			continue
		}

		kind, body, err := splitSocketPacket(raw)
		if err != nil {
			c.log.Debug("ignoring packet", zap.String("packet", truncate(raw)))
			continue
		}

		switch kind {
		case socketConnect:
			c.log.Debug("joined status channel")
			continue
		case socketDisconnect:
			return
		case socketConnectError:
			c.log.Warn("status channel refused connection", zap.String("reason", truncate(body)))
			return
		case socketEvent:
		default:
			continue
		}

		event, err := decodeEvent(body)
		if err != nil {
			if errors.Is(err, errUnknownEvent) {
				c.log.Debug("ignoring event", zap.Error(err))
			} else {
				c.log.Warn("malformed status event", zap.Error(err))
			}
			continue
		}

		select {
		case events <- event:
		case <-ctx.Done():
			return
		}
	}
}

func socketEndpoint(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, errors.New("status channel url is required")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse status channel url: %w", err)
	}

	switch parsed.Scheme {
	case "http", "ws":
		parsed.Scheme = "ws"
	case "https", "wss":
		parsed.Scheme = "wss"
	default:
		return nil, fmt.Errorf("status channel url scheme %q is not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("status channel url host is required")
	}

	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + socketPath
	query := url.Values{}
	query.Set("EIO", "4")
	query.Set("transport", "websocket")
	parsed.RawQuery = query.Encode()

	return parsed, nil
}

func truncate(s string) string {
	const limit = 120
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
