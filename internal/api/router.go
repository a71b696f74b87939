package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "docurag/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(sessionHandler *SessionHandler, documentHandler *DocumentHandler) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	// These are applied to every request.
	r.Use(middleware.RequestID) // Injects a unique request ID into the context.
	r.Use(middleware.RealIP)    // Sets the remote address to the real IP from proxy headers.
	r.Use(middleware.Logger)    // Logs the start and end of each request with useful info.
	r.Use(middleware.Recoverer) // Recovers from panics and returns a 500 error.

	// Serves the auto-generated Swagger UI for API documentation.
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// A simple health check endpoint for container orchestration probes.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// --- API Version 1 Routes ---
	r.Route("/api/v1", func(r chi.Router) {

		// Standard JSON routes with a request timeout so client connections
		// cannot hang indefinitely.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			// --- Sessions ---
			r.Post("/sessions", sessionHandler.HandleCreateSession)
			r.Get("/sessions/{sessionID}", sessionHandler.HandleGetSession)
			r.Delete("/sessions/{sessionID}", sessionHandler.HandleResetSession)

			// --- Auth (stub collaborator) ---
			r.Post("/sessions/{sessionID}/sign-in", sessionHandler.HandleSignIn)
			r.Post("/sessions/{sessionID}/sign-out", sessionHandler.HandleSignOut)
			r.Post("/sessions/{sessionID}/skip", sessionHandler.HandleSkip)

			// --- Registry ---
			r.Get("/sessions/{sessionID}/documents", documentHandler.HandleListDocuments)
		})

		// Routes that wait on the RAG backend. No cancellation or timeout
		// policy is defined for those calls, so these routes carry none either:
		// a request either resolves or rejects with the backend.
		r.Group(func(r chi.Router) {
			r.Post("/sessions/{sessionID}/documents", sessionHandler.HandleUploadDocument)
			r.Post("/sessions/{sessionID}/questions", sessionHandler.HandleAskQuestion)
		})
	})

	return r
}
