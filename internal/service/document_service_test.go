package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docurag/backend/internal/model"
	"docurag/backend/internal/service"
)

func setupDocumentService(t *testing.T) (*service.DocumentService, sqlmock.Sqlmock) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return service.NewDocumentService(db), mockDB
}

func TestDocumentService_Record(t *testing.T) {
	ctx := context.Background()
	uploadedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	record := &model.DocumentRecord{
		ID:         "doc-1",
		SessionID:  "session-1",
		Filename:   "doc.pdf",
		UploadedAt: uploadedAt,
	}

	t.Run("Success", func(t *testing.T) {
		documentService, mockDB := setupDocumentService(t)

		mockDB.ExpectExec("INSERT INTO documents").
			WithArgs("doc-1", "session-1", "doc.pdf", uploadedAt).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, documentService.Record(ctx, record))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Failure - insert error", func(t *testing.T) {
		documentService, mockDB := setupDocumentService(t)

		mockDB.ExpectExec("INSERT INTO documents").
			WillReturnError(errors.New("disk full"))

		err := documentService.Record(ctx, record)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}

func TestDocumentService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - returns rows in upload order", func(t *testing.T) {
		documentService, mockDB := setupDocumentService(t)

		first := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		second := first.Add(time.Hour)
		rows := sqlmock.NewRows([]string{"id", "session_id", "filename", "uploaded_at"}).
			AddRow("doc-1", "session-1", "a.pdf", first).
			AddRow("doc-2", "session-1", "b.pdf", second)

		mockDB.ExpectQuery("SELECT id, session_id, filename, uploaded_at FROM documents").
			WithArgs("session-1").
			WillReturnRows(rows)

		records, err := documentService.List(ctx, "session-1")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "a.pdf", records[0].Filename)
		assert.Equal(t, "b.pdf", records[1].Filename)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Success - empty registry yields an empty slice", func(t *testing.T) {
		documentService, mockDB := setupDocumentService(t)

		mockDB.ExpectQuery("SELECT id, session_id, filename, uploaded_at FROM documents").
			WithArgs("session-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "filename", "uploaded_at"}))

		records, err := documentService.List(ctx, "session-1")
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("Failure - query error", func(t *testing.T) {
		documentService, mockDB := setupDocumentService(t)

		mockDB.ExpectQuery("SELECT id, session_id, filename, uploaded_at FROM documents").
			WillReturnError(errors.New("db closed"))

		_, err := documentService.List(ctx, "session-1")
		assert.Error(t, err)
	})
}
