package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/service"
	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/gorilla/websocket"
)

// bearerSubprotocol lets browsers, which cannot set headers on a WebSocket
// handshake, pass the token as "Sec-WebSocket-Protocol: bearer, <token>".
const bearerSubprotocol = "bearer"

// Hub accepts WebSocket connections and tracks them until they close.
type Hub struct {
	registry  Registry
	notifier  Notifier
	identity  service.IdentityResolver
	clipboard service.ClipboardService
	limiter   *RateLimiter

	cfg      config.Realtime
	upgrader websocket.Upgrader

	base   context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	clients map[*Client]struct{}
	closing bool
	wg      sync.WaitGroup

	logger *logger.Logger
}

func NewHub(registry Registry, notifier Notifier, services *service.Services, cfg config.Realtime, log *logger.Logger) *Hub {
	base, cancel := context.WithCancel(log.WithContext(context.Background()))

	return &Hub{
		registry:  registry,
		notifier:  notifier,
		identity:  services.IdentityResolver,
		clipboard: services.ClipboardService,
		limiter:   NewRateLimiter(cfg.PushRPM, max(1, cfg.PushRPM/6), log),
		cfg:       cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			Subprotocols:    []string{bearerSubprotocol},
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		base:    base,
		cancel:  cancel,
		clients: make(map[*Client]struct{}),
		logger:  log,
	}
}

// ServeHTTP authenticates the handshake, upgrades it and runs the
// connection until it closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	credential, err := credentialFrom(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusUnauthorized)
		return
	}
	identity, err := h.identity.Resolve(r.Context(), credential)
	if err != nil {
		log.Info().Err(err).Msg("websocket handshake refused")
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already answered the request.
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	h.run(conn, identity)
}

func (h *Hub) run(conn *websocket.Conn, identity models.Identity) {
	c := newClient(conn, h, identity, h.logger)

	registered := h.registry.Register(identity.UserID, identity.DeviceID, c)
	c.id = registered.ID

	log, ctx := h.logger.WithContextFields(h.base,
		"connection_id", c.id,
		"user_id", identity.UserID,
		"device_id", identity.DeviceID,
	)
	c.logger = log

	if !h.track(c) {
		c.closeWith(websocket.CloseGoingAway, "server shutting down")
		return
	}
	defer h.wg.Done()

	go c.writePump()
	log.Info().Msg("connection live")

	if len(h.registry.DeviceConnections(identity.UserID, identity.DeviceID)) == 1 {
		h.wg.Add(1)
		go func() {
			defer h.wg.Done()
			h.notifier.Notify(ctx, identity.UserID, identity.DeviceID,
				models.MustFrame(models.EventDeviceOnline, "", models.DevicePresencePayload{DeviceID: identity.DeviceID}))
		}()
	}

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		h.reconcile(ctx, c)
	}()

	c.readPump(ctx)
}

// reconcile replays the device backlog right after the connection went live.
func (h *Hub) reconcile(ctx context.Context, c *Client) {
	n, err := h.clipboard.CatchUp(ctx, c.identity, c)
	if err != nil {
		if !errors.Is(err, ErrConnectionClosed) {
			c.logger.Warn().Err(err).Int("delivered", n).Msg("catch-up interrupted")
		}
		return
	}
	c.logger.Debug().Int("delivered", n).Msg("catch-up done")
	c.sendFrame(ctx, models.MustFrame(models.EventClipboardSyncComplete, "", models.SyncCompletePayload{Count: n}))
}

// disconnected runs once per client, from its Close.
func (h *Hub) disconnected(c *Client) {
	h.mu.Lock()
	delete(h.clients, c)
	closing := h.closing
	h.mu.Unlock()

	h.limiter.Forget(c.id)

	conn, ok := h.registry.Unregister(c.id)
	if !ok {
		return
	}
	c.logger.Info().Msg("connection closed")

	if closing || h.registry.IsDeviceLive(conn.UserID, conn.DeviceID) {
		return
	}
	h.notifier.Notify(context.WithoutCancel(h.base), conn.UserID, conn.DeviceID,
		models.MustFrame(models.EventDeviceOffline, "", models.DevicePresencePayload{DeviceID: conn.DeviceID}))
}

func (h *Hub) track(c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closing {
		return false
	}
	h.clients[c] = struct{}{}
	h.wg.Add(1)
	return true
}

// EvictUser closes every connection of the user, for example after
// logout from all devices. It returns the number of closed connections.
func (h *Hub) EvictUser(userID string) int {
	return h.evict(func(c *Client) bool { return c.identity.UserID == userID })
}

// EvictDevice closes the connections of one device.
func (h *Hub) EvictDevice(userID, deviceID string) int {
	return h.evict(func(c *Client) bool {
		return c.identity.UserID == userID && c.identity.DeviceID == deviceID
	})
}

func (h *Hub) evict(match func(*Client) bool) int {
	h.mu.Lock()
	victims := make([]*Client, 0, 2)
	for c := range h.clients {
		if match(c) {
			victims = append(victims, c)
		}
	}
	h.mu.Unlock()

	for _, c := range victims {
		c.closeWith(websocket.ClosePolicyViolation, "session revoked")
	}
	return len(victims)
}

// Connections returns the number of live connections.
func (h *Hub) Connections() int {
	return h.registry.Count()
}

// Shutdown refuses new connections, closes the live ones and waits for
// their goroutines until ctx ends.
func (h *Hub) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	h.closing = true
	victims := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		victims = append(victims, c)
	}
	h.mu.Unlock()

	for _, c := range victims {
		c.closeWith(websocket.CloseGoingAway, "server shutting down")
	}
	h.cancel()
	h.limiter.Close()

	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		h.logger.Info().Int("closed", len(victims)).Msg("gateway stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrHubClosed, ctx.Err())
	}
}

// credentialFrom reads the access token from the Authorization header, the
// token query parameter or the bearer subprotocol, in that order.
func credentialFrom(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		return utils.ParseBearerToken(header)
	}
	if token := r.URL.Query().Get("token"); token != "" {
		return token, nil
	}
	if protocols := websocket.Subprotocols(r); len(protocols) == 2 && protocols[0] == bearerSubprotocol {
		return protocols[1], nil
	}
	return "", ErrMissingToken
}
