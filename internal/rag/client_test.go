package rag

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHTTPProvider is a unit test for the RAG backend HTTP client.
//
// GOAL: To verify that our `httpProvider` correctly constructs the two wire
// requests (multipart ingestion and JSON query), and correctly parses both
// success and failure responses.
//
// TECHNIQUE: We use the `net/http/httptest` package to create a mock HTTP
// server that stands in for the real RAG backend. This lets us test the
// client's logic in complete isolation, without any real network calls.
func TestHTTPProvider(t *testing.T) {
	// These variables capture the details of the request received by the mock server.
	var capturedMethod, capturedPath, capturedContentType string
	var capturedFormField, capturedFormFilename, capturedFormContent string
	var capturedBody []byte

	var respondStatus int
	var respondBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedMethod = r.Method
		capturedPath = r.URL.Path
		capturedContentType = r.Header.Get("Content-Type")

		switch r.URL.Path {
		case "/upload":
			file, header, err := r.FormFile("file")
			if err == nil {
				capturedFormField = "file"
				capturedFormFilename = header.Filename
				content, _ := io.ReadAll(file)
				capturedFormContent = string(content)
				_ = file.Close()
			}
		case "/query":
			capturedBody, _ = io.ReadAll(r.Body)
		}

		if respondBody != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(respondStatus)
		_, _ = w.Write([]byte(respondBody))
	}))
	defer server.Close()

	provider := NewHTTPProvider(server.URL)
	ctx := context.Background()

	t.Run("Ingest success", func(t *testing.T) {
		// The upload response body is ignored beyond existence, so any 2xx works.
		respondStatus = http.StatusCreated
		respondBody = `{"filename":"doc.pdf","total_chunks":4}`

		err := provider.Ingest(ctx, "doc.pdf", strings.NewReader("document bytes"))
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, capturedMethod)
		assert.Equal(t, "/upload", capturedPath)
		assert.Contains(t, capturedContentType, "multipart/form-data")
		assert.Equal(t, "file", capturedFormField)
		assert.Equal(t, "doc.pdf", capturedFormFilename)
		assert.Equal(t, "document bytes", capturedFormContent)
	})

	t.Run("Ingest failure with detail payload", func(t *testing.T) {
		respondStatus = http.StatusBadRequest
		respondBody = `{"detail":"bad file"}`

		err := provider.Ingest(ctx, "doc.pdf", strings.NewReader("x"))
		require.Error(t, err)

		var upstream *UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, http.StatusBadRequest, upstream.StatusCode)
		assert.Equal(t, "bad file", upstream.Detail)
	})

	t.Run("Ingest failure with error payload", func(t *testing.T) {
		respondStatus = http.StatusInternalServerError
		respondBody = `{"error":"index unavailable"}`

		err := provider.Ingest(ctx, "doc.pdf", strings.NewReader("x"))
		var upstream *UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, "index unavailable", upstream.Detail)
	})

	t.Run("Ingest failure without structured payload", func(t *testing.T) {
		respondStatus = http.StatusBadGateway
		respondBody = "gateway exploded"

		err := provider.Ingest(ctx, "doc.pdf", strings.NewReader("x"))
		var upstream *UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Contains(t, upstream.Detail, "502")
	})

	t.Run("Query success with citations", func(t *testing.T) {
		respondStatus = http.StatusOK
		respondBody = `{"answer":"The summary.","citations":[{"source":"doc.pdf","chunk_index":"3"},{"source":"doc.pdf","chunk_index":"7"}]}`

		resp, err := provider.Query(ctx, &QueryRequest{Question: "What is the summary?", TopK: 3})
		require.NoError(t, err)
		require.NotNil(t, resp)

		assert.Equal(t, http.MethodPost, capturedMethod)
		assert.Equal(t, "/query", capturedPath)
		assert.Equal(t, "application/json", capturedContentType)
		assert.JSONEq(t, `{"question":"What is the summary?","top_k":3}`, string(capturedBody))

		assert.Equal(t, "The summary.", resp.Answer)
		require.Len(t, resp.Citations, 2)
		assert.Equal(t, "doc.pdf", resp.Citations[0].Source)
		assert.Equal(t, "3", resp.Citations[0].ChunkIndex)
		assert.Equal(t, "7", resp.Citations[1].ChunkIndex)
	})

	t.Run("Query success without citations", func(t *testing.T) {
		respondStatus = http.StatusOK
		respondBody = `{"answer":"Just an answer."}`

		resp, err := provider.Query(ctx, &QueryRequest{Question: "Anything?", TopK: 3})
		require.NoError(t, err)
		assert.Equal(t, "Just an answer.", resp.Answer)
		assert.Empty(t, resp.Citations)
	})

	t.Run("Query non-2xx", func(t *testing.T) {
		respondStatus = http.StatusServiceUnavailable
		respondBody = `{"detail":"no index"}`

		resp, err := provider.Query(ctx, &QueryRequest{Question: "Anything?", TopK: 3})
		require.Error(t, err)
		assert.Nil(t, resp)
	})

	t.Run("Query malformed JSON", func(t *testing.T) {
		respondStatus = http.StatusOK
		respondBody = `{"answer": `

		resp, err := provider.Query(ctx, &QueryRequest{Question: "Anything?", TopK: 3})
		require.Error(t, err)
		assert.Nil(t, resp)
	})
}

// A connection-level failure (no response at all) must surface as an error,
// identically to a non-2xx response from the caller's point of view.
func TestHTTPProvider_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Close immediately so every request fails to connect.

	provider := NewHTTPProvider(server.URL)
	ctx := context.Background()

	err := provider.Ingest(ctx, "doc.pdf", strings.NewReader("x"))
	assert.Error(t, err)

	_, err = provider.Query(ctx, &QueryRequest{Question: "q", TopK: 3})
	assert.Error(t, err)
}
