package http

import (
	"net/http"

	"github.com/MKhiriev/go-cipher-lab/internal/logger"
	"github.com/MKhiriev/go-cipher-lab/internal/utils"
	"github.com/MKhiriev/go-cipher-lab/models"
)

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.HistoryService.List(r.Context())
	if err != nil {
		h.writeError(w, r, err, "*Handler.history")
		return
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}

	if _, err = utils.WriteJSON(w, entries, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.history").Msg("error writing response")
	}
}

func (h *Handler) clearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HistoryService.Clear(r.Context()); err != nil {
		h.writeError(w, r, err, "*Handler.clearHistory")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
