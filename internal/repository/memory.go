package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"docurag/backend/internal/model"
)

// memoryRepository keeps sessions in process memory. Conversation history
// lives only for the lifetime of the session, so no durable storage backs it.
type memoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
}

func NewMemoryRepository() Repository {
	return &memoryRepository{sessions: make(map[string]*model.Session)}
}

func (r *memoryRepository) CreateSession(_ context.Context, session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[session.ID]; ok {
		return fmt.Errorf("session %s already exists", session.ID)
	}
	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now
	r.sessions[session.ID] = copySession(session)
	return nil
}

func (r *memoryRepository) GetSession(_ context.Context, sessionID string) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	// Hand out a copy so callers cannot mutate store-owned state directly.
	return copySession(session), nil
}

func (r *memoryRepository) DeleteSession(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[sessionID]; !ok {
		return ErrNotFound
	}
	delete(r.sessions, sessionID)
	return nil
}

func (r *memoryRepository) ResetSession(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	session.Phase = model.PhaseIdle
	session.Messages = nil
	session.PendingFiles = nil
	session.Answering = false
	session.LastError = ""
	session.UpdatedAt = time.Now()
	return nil
}

func (r *memoryRepository) SetPhase(_ context.Context, sessionID string, phase model.Phase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	// ready → idle is only reachable through ResetSession.
	if session.Phase == model.PhaseReady && phase == model.PhaseIdle {
		return fmt.Errorf("cannot leave ready for idle without a session reset")
	}
	session.Phase = phase
	if phase != model.PhaseError {
		session.LastError = ""
	}
	session.UpdatedAt = time.Now()
	return nil
}

func (r *memoryRepository) SetError(_ context.Context, sessionID, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	session.Phase = model.PhaseError
	session.LastError = message
	session.UpdatedAt = time.Now()
	return nil
}

func (r *memoryRepository) SetRole(_ context.Context, sessionID string, role model.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	session.Role = role
	session.UpdatedAt = time.Now()
	return nil
}

func (r *memoryRepository) AddPendingFile(_ context.Context, sessionID, filename string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	session.PendingFiles = append(session.PendingFiles, filename)
	session.UpdatedAt = time.Now()
	return nil
}

func (r *memoryRepository) RemovePendingFile(_ context.Context, sessionID, filename string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	// Remove the most recent occurrence; earlier successful uploads of a
	// same-named file stay counted.
	for i := len(session.PendingFiles) - 1; i >= 0; i-- {
		if session.PendingFiles[i] == filename {
			session.PendingFiles = append(session.PendingFiles[:i], session.PendingFiles[i+1:]...)
			session.UpdatedAt = time.Now()
			return nil
		}
	}
	return nil
}

func (r *memoryRepository) AppendUserMessage(_ context.Context, sessionID, text string) (model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return model.Message{}, ErrNotFound
	}
	msg := model.Message{
		ID:        uuid.NewString(),
		Sender:    model.SenderUser,
		Text:      text,
		Timestamp: time.Now(),
	}
	session.Messages = append(session.Messages, msg)
	session.UpdatedAt = msg.Timestamp
	return msg, nil
}

func (r *memoryRepository) AppendAssistantMessage(_ context.Context, sessionID, text string, citations []model.Citation) ([]model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}

	now := time.Now()
	appended := []model.Message{{
		ID:        uuid.NewString(),
		Sender:    model.SenderAssistant,
		Text:      text,
		Citations: append([]model.Citation(nil), citations...),
		Timestamp: now,
	}}

	// The two-message convention: citations are rendered as their own
	// assistant message, never merged into the answer body.
	if len(citations) > 0 {
		appended = append(appended, model.Message{
			ID:        uuid.NewString(),
			Sender:    model.SenderAssistant,
			Text:      renderCitations(citations),
			Timestamp: now,
		})
	}

	session.Messages = append(session.Messages, appended...)
	session.UpdatedAt = now
	return appended, nil
}

func (r *memoryRepository) TryBeginAnswer(_ context.Context, sessionID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return false, ErrNotFound
	}
	if session.Answering {
		return false, nil
	}
	session.Answering = true
	return true, nil
}

func (r *memoryRepository) EndAnswer(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	session.Answering = false
	return nil
}

// renderCitations formats citations one per line, in their original order.
func renderCitations(citations []model.Citation) string {
	lines := make([]string, len(citations))
	for i, c := range citations {
		lines[i] = fmt.Sprintf("(source: %s – chunk #%s)", c.Source, c.ChunkIndex)
	}
	return strings.Join(lines, "\n")
}

func copySession(session *model.Session) *model.Session {
	dup := *session
	dup.Messages = make([]model.Message, len(session.Messages))
	for i, msg := range session.Messages {
		dup.Messages[i] = msg
		dup.Messages[i].Citations = append([]model.Citation(nil), msg.Citations...)
	}
	dup.PendingFiles = append([]string(nil), session.PendingFiles...)
	return &dup
}
