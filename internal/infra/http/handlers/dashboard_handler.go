package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/rajudas/field-sales-api/internal/infra/http/middleware"
	"github.com/rajudas/field-sales-api/internal/usecase"
)

type DashboardHandler struct {
	DashboardUC *usecase.DashboardUseCase
}

func NewDashboardHandler(dashboardUC *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{DashboardUC: dashboardUC}
}

// HandleListVisits returns the viewer's records: everything for admins, own
// records for representatives.
func (h *DashboardHandler) HandleListVisits(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.UserFromContext(r.Context())

	visits, err := h.DashboardUC.Visits(r.Context(), viewer)
	if err != nil {
		log.Printf("[Dashboard] list failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "could not load visits"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"visits": visits, "total": len(visits)})
}

func (h *DashboardHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.UserFromContext(r.Context())

	summary, err := h.DashboardUC.Summary(r.Context(), viewer)
	if err != nil {
		log.Printf("[Dashboard] summary failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "could not load summary"})
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

type batchEditRequest struct {
	Edits []usecase.LeadStatusEdit `json:"edits"`
}

// HandleBatchLeadStatus applies a batch of lead-status edits best-effort and
// reports the exact success count plus per-row failures.
func (h *DashboardHandler) HandleBatchLeadStatus(w http.ResponseWriter, r *http.Request) {
	var req batchEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid JSON"})
		return
	}
	if len(req.Edits) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "no edits given"})
		return
	}

	result := h.DashboardUC.BatchUpdateLeadStatus(r.Context(), req.Edits)

	failed := make(map[int]bool, len(result.Failures))
	for _, f := range result.Failures {
		failed[f.ID] = true
	}
	for _, edit := range req.Edits {
		if !failed[edit.ID] {
			middleware.RecordLeadStatusUpdate(edit.LeadType)
		}
	}

	writeJSON(w, http.StatusOK, result)
}
