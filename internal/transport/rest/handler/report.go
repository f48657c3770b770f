package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/outliner-coach/letmeknowme/internal/logger"
	"github.com/outliner-coach/letmeknowme/internal/model"
	"github.com/outliner-coach/letmeknowme/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler handles report endpoints
type ReportHandler struct {
	reportSvc *service.ReportService
	log       *logger.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService, log *logger.Logger) *ReportHandler {
	return &ReportHandler{
		reportSvc: reportSvc,
		log:       log.Component("handler.report"),
	}
}

// CreateReportRequest is the request body for creating a report
type CreateReportRequest struct {
	RequesterName string `json:"requesterName"`
}

// Create handles POST /v1/reports
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.reportSvc.Create(r.Context(), req.RequesterName)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// List handles GET /v1/reports
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	reports, err := h.reportSvc.List(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if reports == nil {
		reports = []*model.ReportSummary{}
	}

	writeJSON(w, http.StatusOK, reports)
}

// Get handles GET /v1/reports/{id}
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, &model.ReportSummary{
		ID:            report.ID,
		RequesterName: report.RequesterName,
		ResponseCount: report.ResponseCount(),
		CreatedAt:     report.CreatedAt,
	})
}

// Survey handles GET /v1/reports/{id}/survey
func (h *ReportHandler) Survey(w http.ResponseWriter, r *http.Request) {
	form, err := h.reportSvc.SurveyForm(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, form)
}

// Submit handles POST /v1/reports/{id}/responses
func (h *ReportHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	status, err := h.reportSvc.Submit(r.Context(), mux.Vars(r)["id"], req.ToResponse())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, status)
}

// Status handles GET /v1/reports/{id}/status
func (h *ReportHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.reportSvc.Status(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, status)
}

// Analysis handles GET /v1/reports/{id}/analysis
func (h *ReportHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	_, result, err := h.reportSvc.Analyze(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// View handles GET /v1/reports/{id}/view
func (h *ReportHandler) View(w http.ResponseWriter, r *http.Request) {
	view, err := h.reportSvc.View(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Export handles GET /v1/reports/{id}/export.xlsx
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	// Buffer so a failure can still produce a JSON error
	var buf bytes.Buffer
	if err := h.reportSvc.Export(r.Context(), id, &buf); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="report-%s.xlsx"`, id))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
