package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docurag/backend/internal/model"
	"docurag/backend/internal/repository"
)

func newSession(t *testing.T, repo repository.Repository) *model.Session {
	t.Helper()
	session := &model.Session{
		ID:            "session-1",
		Phase:         model.PhaseIdle,
		Role:          model.RoleGuest,
		SelectedModel: "gpt-3.5-turbo",
	}
	require.NoError(t, repo.CreateSession(context.Background(), session))
	return session
}

func TestMemoryRepository_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	newSession(t, repo)

	t.Run("get returns the stored session", func(t *testing.T) {
		got, err := repo.GetSession(ctx, "session-1")
		require.NoError(t, err)
		assert.Equal(t, model.PhaseIdle, got.Phase)
		assert.Equal(t, model.RoleGuest, got.Role)
		assert.Empty(t, got.Messages)
	})

	t.Run("unknown session yields ErrNotFound", func(t *testing.T) {
		_, err := repo.GetSession(ctx, "nope")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("duplicate create fails", func(t *testing.T) {
		err := repo.CreateSession(ctx, &model.Session{ID: "session-1"})
		assert.Error(t, err)
	})

	t.Run("mutating a returned copy does not touch the store", func(t *testing.T) {
		got, err := repo.GetSession(ctx, "session-1")
		require.NoError(t, err)
		got.Phase = model.PhaseError
		got.Messages = append(got.Messages, model.Message{Text: "smuggled"})

		fresh, err := repo.GetSession(ctx, "session-1")
		require.NoError(t, err)
		assert.Equal(t, model.PhaseIdle, fresh.Phase)
		assert.Empty(t, fresh.Messages)
	})

	t.Run("delete removes the session", func(t *testing.T) {
		require.NoError(t, repo.DeleteSession(ctx, "session-1"))
		_, err := repo.GetSession(ctx, "session-1")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestMemoryRepository_PhaseTransitions(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	newSession(t, repo)

	for _, phase := range []model.Phase{model.PhaseUploading, model.PhaseProcessing, model.PhaseReady} {
		require.NoError(t, repo.SetPhase(ctx, "session-1", phase))
	}

	t.Run("ready to idle requires an explicit reset", func(t *testing.T) {
		err := repo.SetPhase(ctx, "session-1", model.PhaseIdle)
		require.Error(t, err)

		require.NoError(t, repo.ResetSession(ctx, "session-1"))
		got, err := repo.GetSession(ctx, "session-1")
		require.NoError(t, err)
		assert.Equal(t, model.PhaseIdle, got.Phase)
		assert.Empty(t, got.Messages)
		assert.Empty(t, got.PendingFiles)
	})

	t.Run("SetError records the message and the error phase", func(t *testing.T) {
		require.NoError(t, repo.SetError(ctx, "session-1", "bad file"))
		got, err := repo.GetSession(ctx, "session-1")
		require.NoError(t, err)
		assert.Equal(t, model.PhaseError, got.Phase)
		assert.Equal(t, "bad file", got.LastError)
	})

	t.Run("leaving the error phase clears the message", func(t *testing.T) {
		require.NoError(t, repo.SetPhase(ctx, "session-1", model.PhaseUploading))
		got, err := repo.GetSession(ctx, "session-1")
		require.NoError(t, err)
		assert.Empty(t, got.LastError)
	})
}

func TestMemoryRepository_PendingFiles(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	newSession(t, repo)

	require.NoError(t, repo.AddPendingFile(ctx, "session-1", "first.pdf"))
	require.NoError(t, repo.AddPendingFile(ctx, "session-1", "doc.pdf"))
	require.NoError(t, repo.AddPendingFile(ctx, "session-1", "doc.pdf"))

	t.Run("remove drops only the most recent occurrence", func(t *testing.T) {
		require.NoError(t, repo.RemovePendingFile(ctx, "session-1", "doc.pdf"))
		got, err := repo.GetSession(ctx, "session-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"first.pdf", "doc.pdf"}, got.PendingFiles)
	})

	t.Run("removing an untracked filename is harmless", func(t *testing.T) {
		require.NoError(t, repo.RemovePendingFile(ctx, "session-1", "ghost.pdf"))
		got, err := repo.GetSession(ctx, "session-1")
		require.NoError(t, err)
		assert.Len(t, got.PendingFiles, 2)
	})

	t.Run("unknown session yields ErrNotFound", func(t *testing.T) {
		assert.ErrorIs(t, repo.RemovePendingFile(ctx, "nope", "doc.pdf"), repository.ErrNotFound)
	})
}

func TestMemoryRepository_AppendMessages(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	newSession(t, repo)

	userMsg, err := repo.AppendUserMessage(ctx, "session-1", "What is the summary?")
	require.NoError(t, err)
	assert.Equal(t, model.SenderUser, userMsg.Sender)
	assert.NotEmpty(t, userMsg.ID)

	t.Run("citations become exactly one follow-up message", func(t *testing.T) {
		citations := []model.Citation{
			{Source: "doc.pdf", ChunkIndex: "3"},
			{Source: "doc.pdf", ChunkIndex: "7"},
		}
		appended, err := repo.AppendAssistantMessage(ctx, "session-1", "The summary.", citations)
		require.NoError(t, err)
		require.Len(t, appended, 2)

		assert.Equal(t, model.SenderAssistant, appended[0].Sender)
		assert.Equal(t, "The summary.", appended[0].Text)
		assert.Equal(t, model.SenderAssistant, appended[1].Sender)
		assert.Equal(t, "(source: doc.pdf – chunk #3)\n(source: doc.pdf – chunk #7)", appended[1].Text)
	})

	t.Run("no citations means no follow-up message", func(t *testing.T) {
		appended, err := repo.AppendAssistantMessage(ctx, "session-1", "Plain answer.", nil)
		require.NoError(t, err)
		require.Len(t, appended, 1)
		assert.Equal(t, "Plain answer.", appended[0].Text)
	})

	t.Run("transcript order is append order", func(t *testing.T) {
		got, err := repo.GetSession(ctx, "session-1")
		require.NoError(t, err)
		require.Len(t, got.Messages, 4)
		assert.Equal(t, "What is the summary?", got.Messages[0].Text)
		assert.Equal(t, "The summary.", got.Messages[1].Text)
		assert.Contains(t, got.Messages[2].Text, "chunk #3")
		assert.Equal(t, "Plain answer.", got.Messages[3].Text)
	})
}

func TestMemoryRepository_AnswerGuard(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	newSession(t, repo)

	ok, err := repo.TryBeginAnswer(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, ok)

	// The slot is taken: a second acquisition must fail.
	ok, err = repo.TryBeginAnswer(ctx, "session-1")
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetSession(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, got.Answering)

	require.NoError(t, repo.EndAnswer(ctx, "session-1"))
	got, err = repo.GetSession(ctx, "session-1")
	require.NoError(t, err)
	assert.False(t, got.Answering)

	ok, err = repo.TryBeginAnswer(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

// Even under concurrent contention, the guard admits exactly one winner.
func TestMemoryRepository_AnswerGuardConcurrent(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	newSession(t, repo)

	const contenders = 16
	var wg sync.WaitGroup
	wins := make(chan struct{}, contenders)

	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.TryBeginAnswer(ctx, "session-1")
			if err == nil && ok {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for range wins {
		count++
	}
	assert.Equal(t, 1, count)
}
