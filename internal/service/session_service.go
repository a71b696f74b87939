package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"docurag/backend/internal/auth"
	app_errors "docurag/backend/internal/errors"
	"docurag/backend/internal/model"
	"docurag/backend/internal/rag"
	"docurag/backend/internal/repository"
)

// defaultTopK is the fixed number of chunks the backend retrieves per question.
const defaultTopK = 3

// answerFailureText is the fixed transcript entry for any failed question
// round trip. The raw error never reaches the transcript.
const answerFailureText = "❗️ Sorry, something went wrong. Please try again."

// uploadFailureFallback is used when a failed ingestion carries no
// structured error payload.
const uploadFailureFallback = "Upload failed. Please try again."

// documentRecorder is the slice of the registry the upload flow needs.
type documentRecorder interface {
	Record(ctx context.Context, rec *model.DocumentRecord) error
}

// SessionService orchestrates the document-conversation lifecycle: it owns
// the upload flow (admission, ingestion, phase transitions) and the question
// flow (dispatch, transcript bookkeeping), mutating session state only
// through the repository.
type SessionService struct {
	repo         repository.Repository
	rag          rag.Provider
	verifier     *auth.Verifier
	registry     documentRecorder
	defaultModel string
}

func NewSessionService(repo repository.Repository, provider rag.Provider, verifier *auth.Verifier, registry documentRecorder, defaultModel string) *SessionService {
	return &SessionService{
		repo:         repo,
		rag:          provider,
		verifier:     verifier,
		registry:     registry,
		defaultModel: defaultModel,
	}
}

// Create starts a fresh session: guest role, idle phase, empty transcript.
func (s *SessionService) Create(ctx context.Context, selectedModel string) (*model.Session, error) {
	if selectedModel == "" {
		selectedModel = s.defaultModel
	}
	session := &model.Session{
		ID:            uuid.NewString(),
		Phase:         model.PhaseIdle,
		Role:          model.RoleGuest,
		SelectedModel: selectedModel,
		Messages:      []model.Message{},
		PendingFiles:  []string{},
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("could not create session: %w", err)
	}
	slog.Info("Created session", "session_id", session.ID, "model", selectedModel)
	return session, nil
}

// Get retrieves a session with its full transcript.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*model.Session, error) {
	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: session %s", app_errors.ErrNotFound, sessionID)
		}
		return nil, fmt.Errorf("could not get session: %w", err)
	}
	return session, nil
}

// Reset starts a new document session in place: idle phase, empty history.
// This is the only sanctioned way back from ready to idle.
func (s *SessionService) Reset(ctx context.Context, sessionID string) (*model.Session, error) {
	if err := s.repo.ResetSession(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: session %s", app_errors.ErrNotFound, sessionID)
		}
		return nil, fmt.Errorf("could not reset session: %w", err)
	}
	slog.Info("Reset session", "session_id", sessionID)
	return s.Get(ctx, sessionID)
}

// SignIn resolves credentials to a role via the stub auth collaborator and
// stores it on the session.
func (s *SessionService) SignIn(ctx context.Context, sessionID, email, password string) (*model.Session, error) {
	role, err := s.verifier.SignIn(email, password)
	if err != nil {
		return nil, err
	}
	if err := s.setRole(ctx, sessionID, role); err != nil {
		return nil, err
	}
	slog.Info("Signed in", "session_id", sessionID, "role", role)
	return s.Get(ctx, sessionID)
}

// SignOut drops back to guest and destroys the conversation.
func (s *SessionService) SignOut(ctx context.Context, sessionID string) (*model.Session, error) {
	if err := s.setRole(ctx, sessionID, model.RoleGuest); err != nil {
		return nil, err
	}
	return s.Reset(ctx, sessionID)
}

// Skip continues anonymously as a guest without touching the conversation.
func (s *SessionService) Skip(ctx context.Context, sessionID string) (*model.Session, error) {
	if err := s.setRole(ctx, sessionID, s.verifier.Skip()); err != nil {
		return nil, err
	}
	return s.Get(ctx, sessionID)
}

// Upload runs one admitted file through the ingestion backend and translates
// the outcome into a phase transition. A failed upload never touches the
// transcript.
func (s *SessionService) Upload(ctx context.Context, sessionID, filename string, file io.Reader) (*model.Session, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// The gate decides before anything reaches the network; a rejected file
	// is never forwarded to the backend.
	if err := auth.Admit(len(session.PendingFiles), session.Role); err != nil {
		slog.Info("Upload rejected by quota gate", "session_id", sessionID, "role", session.Role, "pending", len(session.PendingFiles))
		return nil, err
	}

	if err := s.repo.AddPendingFile(ctx, sessionID, filename); err != nil {
		return nil, fmt.Errorf("could not track pending file: %w", err)
	}
	if err := s.repo.SetPhase(ctx, sessionID, model.PhaseUploading); err != nil {
		return nil, fmt.Errorf("could not enter uploading phase: %w", err)
	}
	if err := s.repo.SetPhase(ctx, sessionID, model.PhaseProcessing); err != nil {
		return nil, fmt.Errorf("could not enter processing phase: %w", err)
	}

	if err := s.rag.Ingest(ctx, filename, file); err != nil {
		msg := uploadFailureMessage(err)
		slog.Warn("Document ingestion failed", "session_id", sessionID, "filename", filename, "error", err)
		// A failed file is no longer pending: release its quota slot so the
		// user can re-select and retry.
		if rmErr := s.repo.RemovePendingFile(ctx, sessionID, filename); rmErr != nil {
			slog.Error("Failed to release quota slot for failed upload", "session_id", sessionID, "filename", filename, "error", rmErr)
		}
		if setErr := s.repo.SetError(ctx, sessionID, msg); setErr != nil {
			slog.Error("Failed to record upload failure on session", "session_id", sessionID, "error", setErr)
		}
		return nil, fmt.Errorf("%w: %s", app_errors.ErrUpstream, msg)
	}

	if err := s.repo.SetPhase(ctx, sessionID, model.PhaseReady); err != nil {
		return nil, fmt.Errorf("could not enter ready phase: %w", err)
	}
	slog.Info("Document processed", "session_id", sessionID, "filename", filename)

	record := &model.DocumentRecord{
		ID:         uuid.NewString(),
		SessionID:  sessionID,
		Filename:   filename,
		UploadedAt: time.Now(),
	}
	if err := s.registry.Record(ctx, record); err != nil {
		// Registry bookkeeping must not fail an already-successful ingestion.
		slog.Error("Failed to record ingested document", "session_id", sessionID, "filename", filename, "error", err)
	}

	return s.Get(ctx, sessionID)
}

// Ask converts one trimmed question into one backend round trip and the
// resulting transcript entries. It returns the messages appended by this
// call, in transcript order.
func (s *SessionService) Ask(ctx context.Context, sessionID, question string) ([]model.Message, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	question = strings.TrimSpace(question)
	if question == "" {
		// Blank input is a silent no-op: nothing appended, nothing sent.
		return []model.Message{}, nil
	}

	if session.Phase != model.PhaseReady {
		return nil, fmt.Errorf("%w: session is not ready for questions (phase %s)", app_errors.ErrConflict, session.Phase)
	}

	acquired, err := s.repo.TryBeginAnswer(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("could not acquire answer slot: %w", err)
	}
	if !acquired {
		return nil, fmt.Errorf("%w: a question is already being answered", app_errors.ErrConflict)
	}
	// The outstanding-query flag is cleared last, on every path.
	defer func() {
		if endErr := s.repo.EndAnswer(ctx, sessionID); endErr != nil {
			slog.Error("Failed to release answer slot", "session_id", sessionID, "error", endErr)
		}
	}()

	userMsg, err := s.repo.AppendUserMessage(ctx, sessionID, question)
	if err != nil {
		return nil, fmt.Errorf("could not append user message: %w", err)
	}

	resp, err := s.rag.Query(ctx, &rag.QueryRequest{Question: question, TopK: defaultTopK})
	if err != nil {
		slog.Warn("Question round trip failed", "session_id", sessionID, "error", err)
		appended, appendErr := s.repo.AppendAssistantMessage(ctx, sessionID, answerFailureText, nil)
		if appendErr != nil {
			return nil, fmt.Errorf("could not append failure message: %w", appendErr)
		}
		return append([]model.Message{userMsg}, appended...), nil
	}

	appended, err := s.repo.AppendAssistantMessage(ctx, sessionID, resp.Answer, resp.Citations)
	if err != nil {
		return nil, fmt.Errorf("could not append assistant message: %w", err)
	}
	return append([]model.Message{userMsg}, appended...), nil
}

func (s *SessionService) setRole(ctx context.Context, sessionID string, role model.Role) error {
	if err := s.repo.SetRole(ctx, sessionID, role); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: session %s", app_errors.ErrNotFound, sessionID)
		}
		return fmt.Errorf("could not set role: %w", err)
	}
	return nil
}

// uploadFailureMessage extracts the backend's own message from a failed
// ingestion, or synthesizes a generic one for network-level failures.
func uploadFailureMessage(err error) string {
	var upstream *rag.UpstreamError
	if errors.As(err, &upstream) {
		return upstream.Detail
	}
	return uploadFailureFallback
}
