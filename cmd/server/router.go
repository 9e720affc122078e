package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/libris/catalog-api/internal/api"
	apiMiddleware "github.com/libris/catalog-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	if app.config.Server.RateLimitEnabled {
		limiter := apiMiddleware.NewRateLimiter(
			app.config.Server.RateLimitRPS,
			app.config.Server.RateLimitBurst,
		)
		r.Use(limiter.Handler)
	}

	bookHandler := api.NewBookHandler(app.bookService)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/books", bookHandler.CreateBook)
		r.Get("/books", bookHandler.GetAllBooks)
		r.Get("/books/search", bookHandler.SearchBooks)
		r.Get("/books/{id}", bookHandler.GetBook)
		r.Patch("/books", bookHandler.UpdateBook)
		r.Delete("/books/{id}", bookHandler.DeleteBook)
	})

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
