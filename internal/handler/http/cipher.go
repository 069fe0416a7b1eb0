package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-cipher-lab/internal/app"
	"github.com/MKhiriev/go-cipher-lab/internal/logger"
	"github.com/MKhiriev/go-cipher-lab/internal/utils"
	"github.com/MKhiriev/go-cipher-lab/models"
)

func (h *Handler) transform(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.TransformRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.transform").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.CipherService.Transform(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, "*Handler.transform")
		return
	}

	if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.transform").Msg("error writing response")
	}
}

func (h *Handler) strength(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.StrengthRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.strength").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	strength, err := h.services.CipherService.Strength(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, "*Handler.strength")
		return
	}

	if _, err = utils.WriteJSON(w, models.StrengthResponse{Strength: strength}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.strength").Msg("error writing response")
	}
}

func (h *Handler) methods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.services.CipherService.Methods(r.Context())
	if err != nil {
		h.writeError(w, r, err, "*Handler.methods")
		return
	}

	if _, err = utils.WriteJSON(w, methods, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.methods").Msg("error writing response")
	}
}
