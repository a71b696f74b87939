package interfaces

import (
	"context"
	"io"

	"docurag/backend/internal/model"
)

// This file defines the interfaces for our core services.
// The API layer depends on these instead of the concrete implementations,
// which decouples the layers and makes handler testing via mocks easy.

// SessionService defines the contract for the document-conversation
// lifecycle: session management, auth, uploads, and questions.
type SessionService interface {
	Create(ctx context.Context, selectedModel string) (*model.Session, error)
	Get(ctx context.Context, sessionID string) (*model.Session, error)
	Reset(ctx context.Context, sessionID string) (*model.Session, error)
	SignIn(ctx context.Context, sessionID, email, password string) (*model.Session, error)
	SignOut(ctx context.Context, sessionID string) (*model.Session, error)
	Skip(ctx context.Context, sessionID string) (*model.Session, error)
	Upload(ctx context.Context, sessionID, filename string, file io.Reader) (*model.Session, error)
	Ask(ctx context.Context, sessionID, question string) ([]model.Message, error)
}

// DocumentService defines the contract for the ingested-document registry.
type DocumentService interface {
	Record(ctx context.Context, rec *model.DocumentRecord) error
	List(ctx context.Context, sessionID string) ([]model.DocumentRecord, error)
}
