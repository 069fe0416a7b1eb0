package http

import (
	"net/http"

	"github.com/MKhiriev/go-cipher-lab/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion, err := h.services.AppInfoService.GetAppVersion(r.Context())
	if err != nil {
		h.writeError(w, r, err, "*Handler.getServerVersion")
		return
	}

	_, _ = utils.WriteText(w, serverVersion, http.StatusOK)
}
