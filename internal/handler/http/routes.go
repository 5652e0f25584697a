package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// maxRequestBodySize caps request bodies on the public routes at 2 MiB.
const maxRequestBodySize = 2 << 20

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	if len(h.allowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
			ExposedHeaders: []string{traceIDHeader},
			MaxAge:         300,
		}))
	}

	router.Use(middleware.Compress(5, "text/plain", "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequestSize(maxRequestBodySize))
		r.Post("/users", h.createUser)
		r.Get("/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.root)
	})

	return router
}
