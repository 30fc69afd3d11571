package handlers

import (
	"log"
	"net/http"

	"github.com/rajudas/field-sales-api/internal/infra/export"
	"github.com/rajudas/field-sales-api/internal/infra/http/middleware"
	"github.com/rajudas/field-sales-api/internal/usecase"
)

type ExportHandler struct {
	DashboardUC *usecase.DashboardUseCase
}

func NewExportHandler(dashboardUC *usecase.DashboardUseCase) *ExportHandler {
	return &ExportHandler{DashboardUC: dashboardUC}
}

// HandleExportCSV streams the viewer's record set as a CSV download.
func (h *ExportHandler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.UserFromContext(r.Context())

	visits, err := h.DashboardUC.Visits(r.Context(), viewer)
	if err != nil {
		log.Printf("[Export] list failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "could not load visits"})
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="store_visits_export.csv"`)
	if err := export.WriteCSV(w, visits); err != nil {
		log.Printf("[Export] write failed: %v", err)
	}
}
