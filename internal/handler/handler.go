package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/cors"
)

// DB reports whether the backing store is reachable.
type DB interface {
	Ping(ctx context.Context) error
}

// Handler serves the service-level endpoints (health).
type Handler struct {
	db      DB
	appName string
}

func New(db DB, appName string) *Handler {
	return &Handler{db: db, appName: appName}
}

// CORS allows cross-origin calls from allowedOrigins ("*" for any).
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With", "X-Trace-ID"},
		ExposedHeaders: []string{"X-Trace-ID"},
		MaxAge:         300,
	})
}
