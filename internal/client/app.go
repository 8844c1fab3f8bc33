package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/adapter"
	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/gorilla/websocket"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPollInterval = 500 * time.Millisecond
	maxTextSize         = 1 << 20
	seenEntries         = 256
	writeWait           = 10 * time.Second
	reconnectMin        = time.Second
	reconnectMax        = 2 * time.Minute
	tokenSkew           = 30 * time.Second
)

// App is the clipboard agent.
type App struct {
	server    adapter.ServerAdapter
	clipboard Clipboard
	cfg       config.ClientAdapter
	dialer    *websocket.Dialer
	ids       utils.IDGenerator
	backoff   *backoff

	// seen holds clipboard IDs already applied locally, so a replayed
	// entry is not written twice.
	seen *lru.Cache[string, struct{}]

	mu           sync.Mutex
	lastDigest   string
	refreshToken string

	// clipMu orders local clipboard reads against writes coming from the
	// server.
	clipMu sync.Mutex

	connMu sync.Mutex
	conn   *websocket.Conn

	logger *logger.Logger
}

// NewApp builds an agent that talks to the server through server and
// mirrors entries into clip.
func NewApp(server adapter.ServerAdapter, clip Clipboard, cfg config.ClientAdapter, log *logger.Logger) (*App, error) {
	if cfg.Email == "" || cfg.Password == "" {
		return nil, ErrMissingCredentials
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}

	seen, err := lru.New[string, struct{}](seenEntries)
	if err != nil {
		return nil, fmt.Errorf("create seen cache: %w", err)
	}

	return &App{
		server:    server,
		clipboard: clip,
		cfg:       cfg,
		dialer:    &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
		ids:       utils.NewUUIDGenerator(),
		backoff:   newBackoff(reconnectMin, reconnectMax),
		seen:      seen,
		logger:    log,
	}, nil
}

// Run logs in, replays the backlog, then watches the local clipboard and
// the realtime channel until ctx is done. It returns an error only when
// the account rejects the agent's credentials.
func (a *App) Run(ctx context.Context) error {
	if err := a.login(ctx); err != nil {
		return err
	}

	if current, err := a.clipboard.Read(); err == nil {
		a.remember(current)
	}

	if err := a.drainPending(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.Run").Msg("backlog not drained, relying on realtime catch-up")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.watchClipboard(ctx)
		return nil
	})
	g.Go(func() error {
		return a.maintainConnection(ctx)
	})

	return g.Wait()
}

func (a *App) login(ctx context.Context) error {
	resp, err := a.server.Login(ctx, models.LoginRequest{
		Email:            a.cfg.Email,
		Password:         a.cfg.Password,
		DeviceName:       a.cfg.DeviceName,
		DeviceIdentifier: a.cfg.DeviceIdentifier,
		DeviceType:       localDeviceType(),
	})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	a.mu.Lock()
	a.refreshToken = resp.RefreshToken
	a.mu.Unlock()

	a.logger.Info().
		Str("user_id", resp.User.UserID).
		Str("device_id", resp.Device.DeviceID).
		Msg("agent logged in")
	return nil
}

// reauthenticate tries the refresh token first and falls back to a full
// login.
func (a *App) reauthenticate(ctx context.Context) error {
	a.mu.Lock()
	refresh := a.refreshToken
	a.mu.Unlock()

	if refresh != "" {
		resp, err := a.server.Refresh(ctx, refresh)
		if err == nil {
			a.mu.Lock()
			a.refreshToken = resp.RefreshToken
			a.mu.Unlock()
			return nil
		}
		a.logger.Debug().Err(err).Msg("refresh failed, logging in again")
	}

	return a.login(ctx)
}

// drainPending applies the newest inline entry of the backlog and
// acknowledges all of it.
func (a *App) drainPending(ctx context.Context) error {
	pending, err := a.server.Pending(ctx)
	if err != nil {
		return err
	}
	if len(pending.Items) == 0 {
		return nil
	}

	ids := make([]string, 0, len(pending.Items))
	var newest *models.ClipboardNewPayload
	for i := range pending.Items {
		item := &pending.Items[i]
		ids = append(ids, item.ClipboardID)
		a.seen.Add(item.ClipboardID, struct{}{})
		if item.ContentType.IsInline() {
			newest = item
		}
	}

	if newest != nil {
		if err = a.apply(newest.PayloadRef); err != nil {
			return err
		}
	}

	synced, err := a.server.Ack(ctx, ids)
	if err != nil {
		return fmt.Errorf("ack backlog: %w", err)
	}

	a.logger.Info().Int("pending", len(ids)).Int("synced", synced).Msg("backlog drained")
	return nil
}

// maintainConnection keeps one realtime session open, redialling with
// backoff. A rejected handshake triggers re-authentication; rejected
// credentials end the agent.
func (a *App) maintainConnection(ctx context.Context) error {
	for {
		err := a.ensureFreshToken(ctx)
		if err == nil {
			err = a.session(ctx)
		}
		if ctx.Err() != nil {
			return nil
		}

		if errors.Is(err, errHandshakeUnauthorized) {
			err = a.reauthenticate(ctx)
		}
		if errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrForbidden) {
			return err
		}

		wait := a.backoff.next()
		a.logger.Warn().Err(err).Dur("retry_in", wait).Msg("realtime connection lost")

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(wait):
		}
	}
}

// ensureFreshToken re-authenticates ahead of a dial when the access token
// is about to expire.
func (a *App) ensureFreshToken(ctx context.Context) error {
	claims, err := utils.ParseUnverifiedClaims(a.server.Token())
	if err != nil || claims.ExpiresAt == nil {
		return nil
	}
	if time.Until(claims.ExpiresAt.Time) > tokenSkew {
		return nil
	}
	return a.reauthenticate(ctx)
}

// session dials the server and reads frames until the connection fails
// or ctx is done.
func (a *App) session(ctx context.Context) error {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+a.server.Token())

	conn, resp, err := a.dialer.DialContext(ctx, a.server.RealtimeURL(), header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return errHandshakeUnauthorized
		}
		return fmt.Errorf("dial: %w", err)
	}

	a.setConn(conn)
	a.backoff.reset()
	a.logger.Info().Str("url", a.server.RealtimeURL()).Msg("realtime channel connected")

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
			_ = conn.Close()
		case <-stop:
		}
	}()

	defer func() {
		a.setConn(nil)
		_ = conn.Close()
	}()

	for {
		var frame models.Frame
		if err = conn.ReadJSON(&frame); err != nil {
			return err
		}
		a.handleFrame(frame)
	}
}

func (a *App) handleFrame(frame models.Frame) {
	log := a.logger.With().Str("event", string(frame.Type)).Str("frame_id", frame.ID).Logger()

	switch frame.Type {
	case models.EventClipboardNew:
		var p models.ClipboardNewPayload
		if err := frame.Decode(&p); err != nil {
			log.Warn().Err(err).Msg("malformed frame")
			return
		}
		if a.seen.Contains(p.ClipboardID) {
			return
		}
		a.seen.Add(p.ClipboardID, struct{}{})
		if !p.ContentType.IsInline() {
			log.Info().Str("clipboard_id", p.ClipboardID).Str("file", p.FileName).Msg("non-inline entry skipped")
			return
		}
		if err := a.apply(p.PayloadRef); err != nil {
			log.Error().Err(err).Msg("failed to write clipboard")
		}

	case models.EventClipboardDelivered:
		var p models.ClipboardDeliveredPayload
		if err := frame.Decode(&p); err == nil {
			log.Debug().Str("clipboard_id", p.ClipboardID).Int("targets", len(p.Targets)).Msg("push delivered")
		}

	case models.EventClipboardError:
		var p models.ClipboardErrorPayload
		_ = frame.Decode(&p)
		log.Warn().Str("code", p.Code).Msg(p.Message)

	case models.EventClipboardSyncComplete:
		var p models.SyncCompletePayload
		_ = frame.Decode(&p)
		log.Info().Int("count", p.Count).Msg("catch-up complete")

	case models.EventDeviceOnline, models.EventDeviceOffline:
		var p models.DevicePresencePayload
		_ = frame.Decode(&p)
		log.Info().Str("device_id", p.DeviceID).Msg("device presence changed")

	default:
		log.Debug().Msg("frame ignored")
	}
}

// watchClipboard polls the local clipboard and pushes every change that
// did not come from the server.
func (a *App) watchClipboard(ctx context.Context) {
	ticker := time.NewTicker(a.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			text, changed := a.poll()
			if !changed {
				continue
			}
			if err := a.push(ctx, text); err != nil {
				a.logger.Error().Err(err).Str("func", "*App.watchClipboard").Msg("push failed")
			}
		}
	}
}

// push prefers the realtime channel and falls back to REST. Both carry
// the same idempotency key so a retried entry is stored once.
func (a *App) push(ctx context.Context, text string) error {
	payload := models.ClipboardPushPayload{
		ContentType:    models.ContentText,
		PayloadRef:     text,
		IdempotencyKey: a.ids.Generate(),
	}

	frame, err := models.NewFrame(models.EventClipboardPush, a.ids.Generate(), payload)
	if err != nil {
		return err
	}
	if err = a.writeFrame(frame); err == nil {
		return nil
	}

	a.logger.Debug().Err(err).Msg("realtime push unavailable, using REST")
	result, err := a.server.Push(ctx, payload)
	if err != nil {
		return err
	}
	a.seen.Add(result.Item.ID, struct{}{})
	return nil
}

func (a *App) writeFrame(frame models.Frame) error {
	a.connMu.Lock()
	defer a.connMu.Unlock()

	if a.conn == nil {
		return errNotConnected
	}
	_ = a.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return a.conn.WriteJSON(frame)
}

func (a *App) setConn(conn *websocket.Conn) {
	a.connMu.Lock()
	a.conn = conn
	a.connMu.Unlock()
}

// poll reads the local clipboard and reports a change worth pushing.
func (a *App) poll() (string, bool) {
	a.clipMu.Lock()
	defer a.clipMu.Unlock()

	text, err := a.clipboard.Read()
	if err != nil || text == "" || len(text) > maxTextSize {
		return "", false
	}
	return text, a.remember(text)
}

// apply writes text to the local clipboard and records it so the watcher
// does not push it back.
func (a *App) apply(text string) error {
	a.clipMu.Lock()
	defer a.clipMu.Unlock()

	a.remember(text)
	return a.clipboard.Write(text)
}

// remember records text as the current clipboard content and reports
// whether it differs from the previous one.
func (a *App) remember(text string) bool {
	digest := utils.Digest([]byte(text))

	a.mu.Lock()
	defer a.mu.Unlock()
	if digest == a.lastDigest {
		return false
	}
	a.lastDigest = digest
	return true
}

func localDeviceType() models.DeviceType {
	switch runtime.GOOS {
	case "darwin":
		return models.DeviceMacOS
	case "windows":
		return models.DeviceWindows
	case "android":
		return models.DeviceAndroid
	case "ios":
		return models.DeviceIOS
	default:
		return models.DeviceLinux
	}
}
