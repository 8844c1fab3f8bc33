package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP, h.withTraceID, h.withLogging, middleware.Recoverer)

	router.Get("/", h.health)

	// The upgrade must not be compressed or cut by the REST timeout.
	router.Get("/ws", h.realtime.ServeHTTP)

	router.Route("/api", func(api chi.Router) {
		api.Use(h.withRateLimit, middleware.Compress(5, "application/json"))
		if h.cfg.RequestTimeout > 0 {
			api.Use(middleware.Timeout(h.cfg.RequestTimeout))
		}

		api.Get("/version", h.getServerVersion)

		// routes without authorization
		api.Group(func(r chi.Router) {
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)
			r.Post("/auth/refresh", h.refresh)
		})

		api.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/auth/logout", h.logout)
			r.Post("/auth/logout-all", h.logoutAll)
			r.Get("/auth/me", h.me)

			r.Get("/devices", h.listDevices)
			r.Delete("/devices/{deviceID}", h.removeDevice)

			r.Post("/clipboard", h.push)
			r.Get("/clipboard", h.listClipboard)
			r.Get("/clipboard/favorites", h.listFavorites)
			r.Get("/clipboard/{clipboardID}", h.getClipboard)
			r.Get("/clipboard/{clipboardID}/syncs", h.clipboardSyncs)
			r.Get("/clipboard/{clipboardID}/favorite", h.favoriteState)
			r.Post("/clipboard/{clipboardID}/favorite", h.toggleFavorite)

			r.Get("/sync/pending", h.pending)
			r.Post("/sync/ack", h.ack)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
