package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rajudas/field-sales-api/internal/entity"
	"github.com/rajudas/field-sales-api/internal/infra/http/middleware"
	"github.com/rajudas/field-sales-api/internal/usecase"
)

type LocationHandler struct {
	ResolveUC *usecase.ResolveLocationUseCase
}

func NewLocationHandler(resolveUC *usecase.ResolveLocationUseCase) *LocationHandler {
	return &LocationHandler{ResolveUC: resolveUC}
}

type resolveRequest struct {
	// Device-precision fix from the client, when the browser granted it.
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	AccuracyM float64  `json:"accuracy_m,omitempty"`
}

type resolveResponse struct {
	Available bool           `json:"available"`
	Fix       *entity.GeoFix `json:"fix,omitempty"`
	MapsURL   string         `json:"maps_url,omitempty"`
}

// HandleResolve runs the tiered source chain. Full failure is reported as a
// definitive "unavailable", never as an HTTP error.
func (h *LocationHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	// An empty body is a plain "locate me" request.
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid JSON"})
		return
	}

	var deviceFix *entity.GeoFix
	if req.Latitude != nil && req.Longitude != nil {
		deviceFix = &entity.GeoFix{
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
			AccuracyM: req.AccuracyM,
		}
	}

	fix, err := h.ResolveUC.Resolve(r.Context(), deviceFix)
	if err != nil {
		if errors.Is(err, usecase.ErrLocationUnavailable) {
			middleware.RecordGeoResolution("unavailable")
			writeJSON(w, http.StatusOK, resolveResponse{Available: false})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "location resolution failed"})
		return
	}

	middleware.RecordGeoResolution(fix.Source)
	writeJSON(w, http.StatusOK, resolveResponse{
		Available: true,
		Fix:       &fix,
		MapsURL:   entity.MapsURL(fix.Latitude, fix.Longitude),
	})
}
