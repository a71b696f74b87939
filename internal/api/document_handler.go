package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"docurag/backend/internal/interfaces"
)

// DocumentHandler handles HTTP requests for the ingested-document registry.
type DocumentHandler struct {
	service interfaces.DocumentService
}

func NewDocumentHandler(svc interfaces.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: svc}
}

// HandleListDocuments godoc
// @Summary      List ingested documents
// @Description  Returns the documents the backend has successfully ingested for this session, in upload order.
// @Tags         Documents
// @Produce      json
// @Param        sessionID  path  string  true  "Session ID"
// @Success      200  {array}   model.DocumentRecord
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID}/documents [get]
func (h *DocumentHandler) HandleListDocuments(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.List(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, records)
}
