package app

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"docurag/backend/internal/api"
	"docurag/backend/internal/auth"
	"docurag/backend/internal/config"
	"docurag/backend/internal/database"
	"docurag/backend/internal/rag"
	"docurag/backend/internal/repository"
	"docurag/backend/internal/service"
)

// App holds the long-lived resources of a running gateway so they can be
// constructed (and torn down) independently of the serving loop.
type App struct {
	DB     *sql.DB
	Server *http.Server
}

// NewApp wires the full dependency graph from configuration: the document
// registry database, the in-memory session store, the RAG backend client,
// and the HTTP surface on top of them.
func NewApp(cfg *config.Config) (*App, error) {
	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	repo := repository.NewMemoryRepository()
	provider := rag.NewHTTPProvider(cfg.RAGBackendURL)
	verifier := auth.NewVerifier(cfg.AdminEmail, cfg.AdminPassword)

	documentService := service.NewDocumentService(db)
	sessionService := service.NewSessionService(repo, provider, verifier, documentService, cfg.DefaultModel)

	sessionHandler := api.NewSessionHandler(sessionService)
	documentHandler := api.NewDocumentHandler(documentService)
	router := api.NewRouter(sessionHandler, documentHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Upload and question routes wait on the backend without a deadline.
		IdleTimeout:       120 * time.Second,
	}

	return &App{DB: db, Server: server}, nil
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	probeBackend(cfg.RAGBackendURL)

	application, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to build application", "error", err)
		return 1
	}
	defer func() {
		if err := application.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()
	slog.Info("Successfully connected to SQLite database.")

	slog.Info("Starting server", "addr", application.Server.Addr)
	if err := application.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// probeBackend checks once whether the RAG backend answers. Sessions can be
// created before the backend is up, so an unreachable backend is only worth
// a warning here. Uploads will surface the real error.
func probeBackend(backendURL string) {
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(backendURL)
	if err != nil {
		slog.Warn("RAG backend is not reachable yet", "url", backendURL, "error", err)
		return
	}
	if bErr := resp.Body.Close(); bErr != nil {
		slog.Warn("Failed to close response body in backend probe", "error", bErr)
	}
	slog.Info("RAG backend is reachable.", "url", backendURL)
}
