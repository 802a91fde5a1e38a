package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/takshila/paperbank-api/internal/api"
	apiMiddleware "github.com/takshila/paperbank-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. The route paths are a compatibility contract with existing
// clients and must not change.
func (app *application) setupRouter() http.Handler {
	// Create a router
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	// Create API handlers using the application's services
	paperHandler := api.NewPaperHandler(app.paperService)
	extractionHandler := api.NewExtractionHandler(app.extractionService)

	// Register routes
	r.Post("/paper", paperHandler.CreatePaper)
	r.Get("/papers/{id}", paperHandler.GetPaper)
	r.Put("/papers/{id}", paperHandler.UpdatePaper)
	r.Delete("/papers/{id}", paperHandler.DeletePaper)

	r.Post("/extract/text", extractionHandler.StartTextExtraction)
	r.Get("/tasks/{task_id}", extractionHandler.GetTaskStatus)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
