package handlers

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rajudas/field-sales-api/internal/entity"
	"github.com/rajudas/field-sales-api/internal/infra/http/middleware"
	"github.com/rajudas/field-sales-api/internal/usecase"
)

const maxUploadBytes = 16 << 20 // generous for phone camera JPEGs

type VisitHandler struct {
	SubmitUC  *usecase.SubmitVisitUseCase
	HistoryUC *usecase.StoreHistoryUseCase
}

func NewVisitHandler(submitUC *usecase.SubmitVisitUseCase, historyUC *usecase.StoreHistoryUseCase) *VisitHandler {
	return &VisitHandler{SubmitUC: submitUC, HistoryUC: historyUC}
}

// HandleSubmit accepts the report as multipart form data: the form fields
// plus the photograph under "photo_captured" or "photo_upload".
func (h *VisitHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid multipart form: " + err.Error()})
		return
	}

	input := usecase.SubmitVisitInput{
		SRName:         claims.FullName,
		Username:       claims.Username,
		StoreName:      r.FormValue("store_name"),
		VisitType:      r.FormValue("visit_type"),
		StoreCategory:  r.FormValue("store_category"),
		PhoneNumber:    r.FormValue("phone_number"),
		LeadType:       r.FormValue("lead_type"),
		FollowUpDate:   r.FormValue("follow_up_date"),
		Products:       r.Form["products"],
		OrderDetails:   r.FormValue("order_details"),
		LocationAnswer: r.FormValue("location_recorded_answer"),
		CapturedPhoto:  readFormFile(r, "photo_captured"),
		UploadedPhoto:  readFormFile(r, "photo_upload"),
	}

	if lat, err := strconv.ParseFloat(r.FormValue("latitude"), 64); err == nil {
		if lon, err := strconv.ParseFloat(r.FormValue("longitude"), 64); err == nil {
			fix := entity.GeoFix{Latitude: lat, Longitude: lon, Source: r.FormValue("location_source")}
			fix.AccuracyM, _ = strconv.ParseFloat(r.FormValue("accuracy_m"), 64)
			input.Location = &fix
		}
	}

	output, err := h.SubmitUC.Execute(r.Context(), input)
	if err != nil {
		var ve usecase.ValidationErrors
		if errors.As(err, &ve) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "validation failed", Errors: ve.Messages()})
			return
		}
		var pe *entity.PersistenceError
		if errors.As(err, &pe) {
			log.Printf("[Visit] save failed: %v", pe)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Database Error: " + pe.Err.Error()})
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Message: err.Error()})
		return
	}

	middleware.RecordVisitSubmitted(input.VisitType, input.LeadType)
	writeJSON(w, http.StatusCreated, output)
}

// HandleStoreNames feeds the search dropdown.
func (h *VisitHandler) HandleStoreNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.HistoryUC.StoreNames(r.Context())
	if err != nil {
		log.Printf("[Visit] store names failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "could not load stores"})
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"stores": names})
}

type prefillResponse struct {
	Found   bool           `json:"found"`
	Draft   *usecase.Draft `json:"draft,omitempty"`
	Warning string         `json:"warning,omitempty"`
}

// HandlePrefill loads the most recent visit for a store into a fresh draft.
// No history is a warning, never a blocking error.
func (h *VisitHandler) HandlePrefill(w http.ResponseWriter, r *http.Request) {
	storeName := chi.URLParam(r, "name")
	if storeName == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "store name is required"})
		return
	}

	var draft usecase.Draft
	found, err := h.HistoryUC.Prefill(r.Context(), &draft, storeName)
	if err != nil {
		log.Printf("[Visit] prefill failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "could not load store history"})
		return
	}

	if !found {
		writeJSON(w, http.StatusOK, prefillResponse{
			Found:   false,
			Warning: "No previous data found for this store name.",
		})
		return
	}

	writeJSON(w, http.StatusOK, prefillResponse{Found: true, Draft: &draft})
}

func readFormFile(r *http.Request, field string) []byte {
	file, _, err := r.FormFile(field)
	if err != nil {
		return nil
	}
	defer func(f multipart.File) { f.Close() }(file)

	data, err := io.ReadAll(file)
	if err != nil {
		return nil
	}
	return data
}
