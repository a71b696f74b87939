package repository

import (
	"context"

	"docurag/backend/internal/model"
)

// Repository is the session state store: the single owner of phase and
// transcript state. All components mutate sessions only through these
// operations, never by touching a Session struct they were handed.
type Repository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// ResetSession is the only path from ready back to idle: it empties the
	// transcript and pending set and clears any error, keeping the session ID.
	ResetSession(ctx context.Context, sessionID string) error

	SetPhase(ctx context.Context, sessionID string, phase model.Phase) error
	// SetError transitions the session to the error phase and records the
	// user-visible failure message.
	SetError(ctx context.Context, sessionID, message string) error
	SetRole(ctx context.Context, sessionID string, role model.Role) error

	AddPendingFile(ctx context.Context, sessionID, filename string) error
	// RemovePendingFile rolls back the most recent pending entry for filename.
	// A file whose ingestion failed is no longer pending and must not keep
	// consuming a quota slot.
	RemovePendingFile(ctx context.Context, sessionID, filename string) error

	AppendUserMessage(ctx context.Context, sessionID, text string) (model.Message, error)
	// AppendAssistantMessage appends the answer message and, when citations
	// are present, exactly one follow-up message rendering them one per line.
	// It returns the appended messages in transcript order.
	AppendAssistantMessage(ctx context.Context, sessionID, text string, citations []model.Citation) ([]model.Message, error)

	// TryBeginAnswer is the single-slot outstanding-query guard: it marks the
	// session as answering and reports false if a query is already in flight.
	TryBeginAnswer(ctx context.Context, sessionID string) (bool, error)
	EndAnswer(ctx context.Context, sessionID string) error
}
