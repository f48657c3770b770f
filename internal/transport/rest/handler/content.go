package handler

import (
	"encoding/json"
	"net/http"

	"github.com/outliner-coach/letmeknowme/internal/logger"
	"github.com/outliner-coach/letmeknowme/internal/model"
	"github.com/outliner-coach/letmeknowme/internal/service"
)

// ContentHandler serves the display content table
type ContentHandler struct {
	contentSvc *service.ContentService
	log        *logger.Logger
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentSvc *service.ContentService, log *logger.Logger) *ContentHandler {
	return &ContentHandler{
		contentSvc: contentSvc,
		log:        log.Component("handler.content"),
	}
}

// Get handles GET /v1/content
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	content, err := h.contentSvc.Get(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if content == nil {
		content = model.Content{}
	}

	writeJSON(w, http.StatusOK, content)
}

// Update handles PUT /v1/content
func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var content model.Content
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(content) == 0 {
		writeError(w, http.StatusBadRequest, "no content keys given")
		return
	}

	if err := h.contentSvc.Update(r.Context(), content); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"updated": len(content)})
}
