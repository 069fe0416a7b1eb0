package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cipher-lab/internal/app"
	"github.com/MKhiriev/go-cipher-lab/internal/logger"
	"github.com/MKhiriev/go-cipher-lab/internal/service"
	"github.com/MKhiriev/go-cipher-lab/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrUnknownMethod:         http.StatusBadRequest,
	service.ErrInvalidMode:           http.StatusBadRequest,
	service.ErrInputTooLarge:         http.StatusBadRequest,
	service.ErrRecordingHistory:      http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	store.ErrEmptyHistoryEntryID: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the response body for err. The remote client
// matches these messages, see app.Msg*.
func messageFromError(err error) string {
	switch {
	case errors.Is(err, service.ErrUnknownMethod):
		return app.MsgUnknownMethod
	case errors.Is(err, service.ErrInvalidMode):
		return app.MsgInvalidMode
	case errors.Is(err, service.ErrInputTooLarge):
		return app.MsgInputTooLarge
	case errors.Is(err, service.ErrInvalidDataProvided):
		return app.MsgInvalidDataProvided
	case errors.Is(err, service.ErrVersionIsNotSpecified):
		return app.MsgVersionIsNotSpecified
	default:
		return app.MsgInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).
		Str("func", funcName).
		Int("status", status).
		Msg("request failed")

	http.Error(w, messageFromError(err), status)
}
