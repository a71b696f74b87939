package service

import (
	"context"
	"database/sql"
	"fmt"

	"docurag/backend/internal/model"
)

// DocumentService maintains the registry of documents the backend has
// successfully ingested. The registry only holds upload metadata; the
// document content and its chunks live in the backend's own index.
type DocumentService struct {
	db *sql.DB
}

func NewDocumentService(db *sql.DB) *DocumentService {
	return &DocumentService{db: db}
}

// Record stores one successfully ingested document.
func (s *DocumentService) Record(ctx context.Context, rec *model.DocumentRecord) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO documents (id, session_id, filename, uploaded_at) VALUES (?, ?, ?, ?)",
		rec.ID, rec.SessionID, rec.Filename, rec.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("could not record document: %w", err)
	}
	return nil
}

// List returns the ingested documents of one session in upload order.
func (s *DocumentService) List(ctx context.Context, sessionID string) ([]model.DocumentRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, session_id, filename, uploaded_at FROM documents WHERE session_id = ? ORDER BY uploaded_at",
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("could not list documents: %w", err)
	}
	defer rows.Close()

	records := make([]model.DocumentRecord, 0)
	for rows.Next() {
		var rec model.DocumentRecord
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.Filename, &rec.UploadedAt); err != nil {
			return nil, fmt.Errorf("could not scan document row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate document rows: %w", err)
	}
	return records, nil
}
