package model

import "time"

// Role determines the upload quota for a session. It is assigned at
// sign-in (or skip) and only changes through the auth operations.
type Role string

const (
	RoleGuest Role = "guest"
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Phase is the coarse lifecycle stage of one document-conversation.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseUploading  Phase = "uploading"
	PhaseProcessing Phase = "processing"
	PhaseReady      Phase = "ready"
	PhaseError      Phase = "error"
)

// Sender identifies who produced a transcript message.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// Citation points an assistant answer back to the document chunk that
// supported it. ChunkIndex is an opaque identifier, kept as a string.
type Citation struct {
	Source     string `json:"source"`
	ChunkIndex string `json:"chunk_index"`
}

// Message is a single transcript entry. Messages are immutable once
// appended, and their insertion order is the chronological transcript order.
type Message struct {
	ID        string     `json:"id"`
	Sender    string     `json:"sender"`
	Text      string     `json:"text"`
	Citations []Citation `json:"citations,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// Session is one document-conversation lifecycle: the phase state machine,
// the ordered transcript, and the auth/quota context it runs under.
//
// Answering is the outstanding-query projection. It is independent of Phase
// (a query can be outstanding while the phase is ready) and drives the
// client's loading indicator.
type Session struct {
	ID            string    `json:"id"`
	Phase         Phase     `json:"phase"`
	Role          Role      `json:"role"`
	SelectedModel string    `json:"selected_model"`
	Messages      []Message `json:"messages"`
	PendingFiles  []string  `json:"pending_files"`
	Answering     bool      `json:"answering"`
	LastError     string    `json:"last_error,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DocumentRecord is one row of the ingested-document registry.
type DocumentRecord struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	Filename   string    `json:"filename"`
	UploadedAt time.Time `json:"uploaded_at"`
}
