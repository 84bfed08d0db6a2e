package http

import (
	"net/http"

	"github.com/MKhiriev/go-newsletter/internal/logger"
	"github.com/MKhiriev/go-newsletter/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	versionInfo := h.services.AppInfoService.GetVersionInfo(r.Context())

	if _, err := utils.WriteJSON(w, versionInfo, http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error writing version response")
	}
}
