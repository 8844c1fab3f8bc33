package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/service"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// outbound is one queued frame. done receives the result of the socket
// write, so Deliver can report real delivery instead of a queued frame.
type outbound struct {
	data []byte
	done chan error
}

// Client is one live WebSocket connection of an authenticated device.
// It implements [presence.Sink].
type Client struct {
	id       string
	identity models.Identity
	conn     *websocket.Conn
	hub      *Hub

	send      chan outbound
	closed    chan struct{}
	closeOnce sync.Once

	logger *logger.Logger
}

func newClient(conn *websocket.Conn, hub *Hub, identity models.Identity, log *logger.Logger) *Client {
	return &Client{
		identity: identity,
		conn:     conn,
		hub:      hub,
		send:     make(chan outbound, hub.cfg.SendBuffer),
		closed:   make(chan struct{}),
		logger:   log,
	}
}

func (c *Client) ID() string                { return c.id }
func (c *Client) Identity() models.Identity { return c.identity }

// Deliver writes frame to the socket and waits for the write to finish.
// It fails with [ErrConnectionClosed] once the connection left Live and
// with [ErrDeliveryTimeout] when ctx ends first.
func (c *Client) Deliver(ctx context.Context, frame models.Frame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("marshal %s frame: %w", frame.Type, err)
	}
	msg := outbound{data: data, done: make(chan error, 1)}

	select {
	case <-c.closed:
		return ErrConnectionClosed
	default:
	}

	select {
	case c.send <- msg:
	case <-c.closed:
		return ErrConnectionClosed
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrDeliveryTimeout, ctx.Err())
	}

	select {
	case err = <-msg.done:
		return err
	case <-c.closed:
		select {
		case err = <-msg.done:
			return err
		default:
			return ErrConnectionClosed
		}
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrDeliveryTimeout, ctx.Err())
	}
}

// Close moves the connection to Closed. Safe to call many times and from
// any goroutine; only the first call has an effect.
func (c *Client) Close() {
	c.closeWith(websocket.CloseNormalClosure, "")
}

func (c *Client) closeWith(code int, reason string) {
	c.closeOnce.Do(func() {
		close(c.closed)

		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(code, reason), time.Now().Add(time.Second))
		_ = c.conn.Close()

		c.hub.disconnected(c)
	})
}

// readPump reads frames until the socket fails, then closes the client.
func (c *Client) readPump(ctx context.Context) {
	defer c.Close()

	cfg := c.hub.cfg
	c.conn.SetReadLimit(cfg.MaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn().Err(err).Msg("websocket read error")
			}
			return
		}

		_ = c.conn.SetReadDeadline(time.Now().Add(cfg.PongWait))

		c.handleFrame(ctx, data)
	}
}

// writePump is the only writer of data frames on the socket.
func (c *Client) writePump() {
	ticker := time.NewTicker(c.hub.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg.data); err != nil {
				msg.done <- fmt.Errorf("%w: %w", ErrConnectionClosed, err)
				c.Close()
				return
			}
			msg.done <- nil

		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				c.Close()
				return
			}

		case <-c.closed:
			return
		}
	}
}

func (c *Client) handleFrame(ctx context.Context, data []byte) {
	var frame models.Frame
	if err := json.Unmarshal(data, &frame); err != nil {
		c.reply(ctx, "", models.ErrCodeInvalidRequest, "malformed frame")
		return
	}

	switch frame.Type {
	case models.EventClipboardPush:
		c.handlePush(ctx, frame)
	case models.EventClipboardRequestSync:
		c.handleRequestSync(ctx, frame)
	case models.EventClipboardTyping:
		c.handleTyping(ctx, frame)
	default:
		c.reply(ctx, frame.ID, models.ErrCodeInvalidRequest, fmt.Sprintf("unsupported event %q", frame.Type))
	}
}

func (c *Client) handlePush(ctx context.Context, frame models.Frame) {
	if !c.hub.limiter.Allow(c.id) {
		c.reply(ctx, frame.ID, models.ErrCodeRateLimited, "too many pushes")
		return
	}

	var payload models.ClipboardPushPayload
	if err := frame.Decode(&payload); err != nil {
		c.reply(ctx, frame.ID, models.ErrCodeInvalidRequest, err.Error())
		return
	}

	result, err := c.hub.clipboard.Push(ctx, models.NewPushRequest(c.identity.UserID, c.identity.DeviceID, payload))
	if err != nil {
		code := errorCode(err)
		if code == models.ErrCodeInternal || code == models.ErrCodePersistence {
			c.logger.Err(err).Str("func", "*Client.handlePush").Msg("push failed")
		}
		c.reply(ctx, frame.ID, code, err.Error())
		return
	}

	c.sendFrame(ctx, models.MustFrame(models.EventClipboardDelivered, frame.ID, models.ClipboardDeliveredPayload{
		ClipboardID: result.Item.ID,
		Targets:     result.Targets,
	}))
}

func (c *Client) handleRequestSync(ctx context.Context, frame models.Frame) {
	n, err := c.hub.clipboard.CatchUp(ctx, c.identity, c)
	if err != nil && !errors.Is(err, ErrConnectionClosed) {
		c.logger.Err(err).Str("func", "*Client.handleRequestSync").Int("delivered", n).Msg("catch-up interrupted")
		c.reply(ctx, frame.ID, errorCode(err), "sync interrupted")
		return
	}
	c.sendFrame(ctx, models.MustFrame(models.EventClipboardSyncComplete, frame.ID, models.SyncCompletePayload{Count: n}))
}

func (c *Client) handleTyping(ctx context.Context, frame models.Frame) {
	var payload models.TypingPayload
	if err := frame.Decode(&payload); err != nil {
		c.reply(ctx, frame.ID, models.ErrCodeInvalidRequest, err.Error())
		return
	}
	c.hub.notifier.Notify(ctx, c.identity.UserID, c.identity.DeviceID,
		models.MustFrame(models.EventClipboardUserTyping, "", models.UserTypingPayload{
			DeviceID: c.identity.DeviceID,
			IsTyping: payload.IsTyping,
		}))
}

func (c *Client) reply(ctx context.Context, id, code, message string) {
	c.sendFrame(ctx, models.MustFrame(models.EventClipboardError, id, models.ClipboardErrorPayload{
		Code:    code,
		Message: message,
	}))
}

// sendFrame delivers a frame addressed to this connection only.
func (c *Client) sendFrame(ctx context.Context, frame models.Frame) {
	ctx, cancel := context.WithTimeout(ctx, c.hub.cfg.DeliveryTimeout)
	defer cancel()

	if err := c.Deliver(ctx, frame); err != nil && !errors.Is(err, ErrConnectionClosed) {
		c.logger.Warn().Err(err).Str("event", string(frame.Type)).Msg("reply not delivered")
	}
}

// errorCode maps pipeline errors onto the codes carried by clipboard.error.
func errorCode(err error) string {
	switch {
	case errors.Is(err, service.ErrValidation):
		return models.ErrCodeValidation
	case errors.Is(err, service.ErrDuplicatePush):
		return models.ErrCodeDuplicate
	case errors.Is(err, service.ErrPersistence):
		return models.ErrCodePersistence
	case errors.Is(err, service.ErrUnauthenticated):
		return models.ErrCodeInvalidRequest
	default:
		return models.ErrCodeInternal
	}
}
