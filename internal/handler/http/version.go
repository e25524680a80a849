package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
	"github.com/MKhiriev/bootcamp-webapi/internal/utils"
	"github.com/MKhiriev/bootcamp-webapi/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, models.HealthResponse{Status: "ok"})
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	appInfo := h.services.AppInfoService.GetAppInfo(r.Context())
	writeJSON(w, r, http.StatusOK, appInfo)
}

func (h *Handler) getFeatures(w http.ResponseWriter, r *http.Request) {
	features := h.services.FeatureService.Features(r.Context())
	writeJSON(w, r, http.StatusOK, models.FeaturesResponse{
		Features: features,
		Length:   len(features),
	})
}

func (h *Handler) getFeature(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	writeJSON(w, r, http.StatusOK, models.FeatureResponse{
		Name:    name,
		Enabled: h.services.FeatureService.IsEnabled(r.Context(), name),
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	if err := utils.WriteJSON(w, status, body); err != nil {
		logger.FromRequest(r).Err(err).Msg("error encoding response")
	}
}
