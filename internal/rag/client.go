package rag

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"docurag/backend/internal/model"
)

// Provider defines the interface for the external RAG backend. It owns the
// two wire operations the gateway depends on: document ingestion and
// question answering. Everything behind them (chunking, embedding,
// retrieval) is the backend's business.
type Provider interface {
	Ingest(ctx context.Context, filename string, file io.Reader) error
	Query(ctx context.Context, req *QueryRequest) (*QueryResponse, error)
}

// QueryRequest is the JSON body of POST {base}/query.
type QueryRequest struct {
	Question string `json:"question"`
	TopK     int    `json:"top_k"`
}

// QueryResponse is the JSON body of a successful query.
type QueryResponse struct {
	Answer    string           `json:"answer"`
	Citations []model.Citation `json:"citations,omitempty"`
}

// UpstreamError carries the structured error payload of a failed backend
// call so the caller can surface the backend's own message.
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Detail)
}

type httpProvider struct {
	client *http.Client
	url    string
}

func NewHTTPProvider(url string) Provider {
	return &httpProvider{
		client: &http.Client{},
		url:    url,
	}
}

// Ingest submits one document as multipart/form-data under the fixed field
// name "file". Any 2xx status is success; the response body is ignored
// beyond existence.
func (p *httpProvider) Ingest(ctx context.Context, filename string, file io.Reader) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("could not create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("could not copy file into form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("could not finalize multipart body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url+"/upload", &body)
	if err != nil {
		return fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return decodeUpstreamError(resp.StatusCode, bodyBytes)
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// Query sends one question round trip and decodes the answer plus its
// optional citations.
func (p *httpProvider) Query(ctx context.Context, req *QueryRequest) (*QueryResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url+"/query", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeUpstreamError(resp.StatusCode, bodyBytes)
	}

	var queryResp QueryResponse
	if err := json.Unmarshal(bodyBytes, &queryResp); err != nil {
		return nil, fmt.Errorf("could not decode response: %s", string(bodyBytes))
	}
	return &queryResp, nil
}

// decodeUpstreamError extracts the backend's "detail" or "error" field from
// a non-2xx body, falling back to a generic message when neither is present.
func decodeUpstreamError(status int, body []byte) *UpstreamError {
	var payload struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	detail := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Detail != "":
			detail = payload.Detail
		case payload.Error != "":
			detail = payload.Error
		}
	}
	if detail == "" {
		detail = fmt.Sprintf("request failed with status %d", status)
	}
	return &UpstreamError{StatusCode: status, Detail: detail}
}
