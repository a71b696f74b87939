package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	app_errors "docurag/backend/internal/errors"
	"docurag/backend/internal/interfaces"
	"docurag/backend/internal/model"
)

// maxUploadBytes caps the multipart upload body, mirroring the ingestion
// backend's own 50MB limit so oversized files fail fast at the gateway.
const maxUploadBytes = 50 << 20

// SessionHandler handles HTTP requests for the document-conversation
// session lifecycle.
type SessionHandler struct {
	service interfaces.SessionService
}

func NewSessionHandler(svc interfaces.SessionService) *SessionHandler {
	return &SessionHandler{service: svc}
}

// CreateSessionRequest is the DTO for starting a new session.
type CreateSessionRequest struct {
	Model string `json:"model" validate:"omitempty,max=100" example:"gpt-3.5-turbo"`
}

// SignInRequest is the DTO for the stub sign-in endpoint.
type SignInRequest struct {
	Email    string `json:"email" validate:"required" example:"admin@example.com"`
	Password string `json:"password" validate:"required"`
}

// AskRequest is the DTO for submitting a question. It carries no validation
// tags: a blank question is a defined no-op, not a client error.
type AskRequest struct {
	Question string `json:"question" example:"What is the summary?"`
}

// AskResponse returns the messages this question appended to the transcript.
type AskResponse struct {
	Messages []model.Message `json:"messages"`
}

// UploadResponse acknowledges a processed document and returns the
// refreshed session.
type UploadResponse struct {
	Status  string         `json:"status"`
	Session *model.Session `json:"session"`
}

// HandleCreateSession godoc
// @Summary      Start a session
// @Description  Creates a fresh document-conversation session in the idle phase with the guest role.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionRequest  body  CreateSessionRequest  false  "Optional model selection"
// @Success      201  {object}  model.Session
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/sessions [post]
func (h *SessionHandler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
			return
		}
		if err := validateRequest(req); err != nil {
			respondWithError(w, err)
			return
		}
	}

	session, err := h.service.Create(r.Context(), req.Model)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, session)
}

// HandleGetSession godoc
// @Summary      Get a session
// @Description  Returns the session's phase, role, and full transcript.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path  string  true  "Session ID"
// @Success      200  {object}  model.Session
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID} [get]
func (h *SessionHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Get(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

// HandleResetSession godoc
// @Summary      Reset a session
// @Description  Starts a new document session in place: idle phase, empty history. This is the only way back from ready to idle.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path  string  true  "Session ID"
// @Success      200  {object}  model.Session
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID} [delete]
func (h *SessionHandler) HandleResetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Reset(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

// HandleSignIn godoc
// @Summary      Sign in
// @Description  Resolves credentials to a role. The configured admin pair yields admin; any other non-blank pair yields user.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        sessionID      path  string         true  "Session ID"
// @Param        signInRequest  body  SignInRequest  true  "Credentials"
// @Success      200  {object}  model.Session
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID}/sign-in [post]
func (h *SessionHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	session, err := h.service.SignIn(r.Context(), chi.URLParam(r, "sessionID"), req.Email, req.Password)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

// HandleSignOut godoc
// @Summary      Sign out
// @Description  Drops the session back to the guest role and destroys the conversation.
// @Tags         Auth
// @Produce      json
// @Param        sessionID  path  string  true  "Session ID"
// @Success      200  {object}  model.Session
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID}/sign-out [post]
func (h *SessionHandler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.SignOut(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

// HandleSkip godoc
// @Summary      Continue as guest
// @Tags         Auth
// @Produce      json
// @Param        sessionID  path  string  true  "Session ID"
// @Success      200  {object}  model.Session
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID}/skip [post]
func (h *SessionHandler) HandleSkip(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Skip(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

// HandleUploadDocument godoc
// @Summary      Upload a document
// @Description  Admits the file against the role quota, forwards it to the ingestion backend, and walks the phase machine to ready.
// @Tags         Documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        sessionID  path  string  true  "Session ID"
// @Param        file       formData  file  true  "Document to ingest"
// @Success      200  {object}  UploadResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Upload quota exceeded"
// @Failure      502  {object}  ErrorResponse "Ingestion backend failure"
// @Router       /v1/sessions/{sessionID}/documents [post]
func (h *SessionHandler) HandleUploadDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, fmt.Errorf("%w: a file part named 'file' is required", app_errors.ErrValidation))
		return
	}
	defer file.Close()

	session, err := h.service.Upload(r.Context(), chi.URLParam(r, "sessionID"), header.Filename, file)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, UploadResponse{Status: "Document processed", Session: session})
}

// HandleAskQuestion godoc
// @Summary      Ask a question
// @Description  Sends one question round trip to the RAG backend and returns the transcript entries it appended. A blank question appends nothing.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        sessionID   path  string      true  "Session ID"
// @Param        askRequest  body  AskRequest  true  "Question"
// @Success      200  {object}  AskResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Session not ready or a question is already outstanding"
// @Router       /v1/sessions/{sessionID}/questions [post]
func (h *SessionHandler) HandleAskQuestion(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
		return
	}

	messages, err := h.service.Ask(r.Context(), chi.URLParam(r, "sessionID"), req.Question)
	if err != nil {
		respondWithError(w, err)
		return
	}
	if messages == nil {
		messages = []model.Message{}
	}
	respondWithJSON(w, http.StatusOK, AskResponse{Messages: messages})
}
