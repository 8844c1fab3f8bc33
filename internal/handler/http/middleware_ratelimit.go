package http

import (
	"net"
	"net/http"

	"github.com/MKhiriev/go-clip-sync/internal/utils"
)

// withRateLimit applies the per-client-IP token bucket to REST requests.
// RealIP runs earlier, so RemoteAddr already honours X-Forwarded-For.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if !h.limiter.Enabled() {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.Allow(clientIP(r)) {
			w.Header().Set("Retry-After", "60")
			utils.WriteError(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
