package handler

import (
	"net/http"

	"doc-compare/internal/domain"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// RouterOptions configures the parts of the router that come from config.
type RouterOptions struct {
	AllowedOrigins []string
	StaticDir      string
	Logger         domain.Logger
}

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(documentHandler *DocumentHandler, aiHandler *AIHandler, opts RouterOptions) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestIDMiddleware)
	if opts.Logger != nil {
		router.Use(AccessLogMiddleware(opts.Logger))
	}

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"doc-compare"}`))
	}).Methods("GET")

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/upload", documentHandler.Upload).Methods("POST")
	api.HandleFunc("/sessions/{id}", documentHandler.DeleteSession).Methods("DELETE")
	api.HandleFunc("/compare", aiHandler.Compare).Methods("POST")
	api.HandleFunc("/chat", aiHandler.Chat).Methods("POST")

	// Frontend assets, registered last so API routes win.
	if opts.StaticDir != "" {
		router.PathPrefix("/").Handler(http.FileServer(http.Dir(opts.StaticDir))).Methods("GET")
	}

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			requestIDHeader,
		},
		ExposedHeaders: []string{
			requestIDHeader,
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
