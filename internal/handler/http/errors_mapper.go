package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/service"
	"github.com/MKhiriev/go-clip-sync/internal/utils"
)

// errorStatusMap is checked in order; the first matching error wins.
var errorStatusMap = []struct {
	target error
	status int
}{
	{service.ErrValidation, http.StatusBadRequest},
	{service.ErrUnauthenticated, http.StatusUnauthorized},
	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrConflict, http.StatusConflict},
	{service.ErrDuplicatePush, http.StatusConflict},
	{service.ErrPersistence, http.StatusInternalServerError},
	{service.ErrVersionIsNotSpecified, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError answers with the status of err. Client errors carry the
// error text; server errors are logged and answered with the status text.
func writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("request failed")
		utils.WriteError(w, http.StatusText(status), status)
		return
	}
	logger.FromRequest(r).Debug().Err(err).Str("func", funcName).Int("status", status).Send()
	utils.WriteError(w, err.Error(), status)
}
