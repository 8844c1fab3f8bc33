package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// The base URL is taken from cfg.HTTPAddress; a missing scheme defaults to
// http. version is reported in the User-Agent header.
func NewHTTPServerAdapter(cfg config.ClientAdapter, version string, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetHeader("User-Agent", "go-clip-sync-agent/"+version)

	return &httpServerAdapter{client: client, baseURL: baseURL, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidScheme
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// RealtimeURL swaps the http scheme of the base URL for ws.
func (h *httpServerAdapter) RealtimeURL() string {
	u, _ := url.Parse(h.baseURL)
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/ws"
	return u.String()
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/login", req)
}

func (h *httpServerAdapter) Refresh(ctx context.Context, refreshToken string) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/refresh", models.RefreshRequest{RefreshToken: refreshToken})
}

// authenticate posts body to path and stores the token from the
// Authorization response header, falling back to the body.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&auth).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	token := auth.Token
	if header := resp.Header().Get("Authorization"); header != "" {
		token, err = utils.ParseBearerToken(header)
		if err != nil {
			return models.AuthResponse{}, fmt.Errorf("%s parse bearer token: %w", path, err)
		}
	}

	h.SetToken(token)
	auth.Token = token
	return auth, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

// Push sends the idempotency key both in the body and as the
// Idempotency-Key header so a retried request is deduplicated.
func (h *httpServerAdapter) Push(ctx context.Context, payload models.ClipboardPushPayload) (models.PushResult, error) {
	var result models.PushResult

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&result)
	if payload.IdempotencyKey != "" {
		req.SetHeader("Idempotency-Key", payload.IdempotencyKey)
	}

	resp, err := req.Post("/api/clipboard")
	if err != nil {
		return models.PushResult{}, fmt.Errorf("push request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PushResult{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) Pending(ctx context.Context) (models.PendingResponse, error) {
	var pending models.PendingResponse

	resp, err := h.authedRequest(ctx).SetResult(&pending).Get("/api/sync/pending")
	if err != nil {
		return models.PendingResponse{}, fmt.Errorf("pending request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PendingResponse{}, err
	}

	return pending, nil
}

func (h *httpServerAdapter) Ack(ctx context.Context, clipboardIDs []string) (int, error) {
	var ack models.AckResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AckRequest{ClipboardIDs: clipboardIDs}).
		SetResult(&ack).
		Post("/api/sync/ack")
	if err != nil {
		return 0, fmt.Errorf("ack request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return ack.Synced, nil
}

func (h *httpServerAdapter) Devices(ctx context.Context) ([]models.Device, error) {
	var devices []models.Device

	resp, err := h.authedRequest(ctx).SetResult(&devices).Get("/api/devices")
	if err != nil {
		return nil, fmt.Errorf("devices request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return devices, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
