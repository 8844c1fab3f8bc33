package http

import (
	"net/http"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/gateway"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/service"
)

// Realtime is the WebSocket side of the server as seen by REST handlers:
// it serves the upgrade and drops connections whose sessions were revoked.
type Realtime interface {
	http.Handler
	EvictUser(userID string) int
	EvictDevice(userID, deviceID string) int
	Connections() int
}

type Handler struct {
	services *service.Services
	realtime Realtime
	limiter  *gateway.RateLimiter
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, realtime Realtime, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		realtime: realtime,
		limiter:  gateway.NewRateLimiter(cfg.RateLimitRPM, cfg.RateLimitBurst, logger),
		cfg:      cfg,
		logger:   logger,
	}
}

// Close releases the background resources of the handler.
func (h *Handler) Close() {
	h.limiter.Close()
}
