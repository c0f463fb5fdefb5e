package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// Routes bundles everything NewRouter mounts.
type Routes struct {
	Health   *Handler
	Listings *ListingHandler
	Contacts *ContactHandler
	Static   http.Handler

	CORSAllowedOrigins []string
	// RateLimiter throttles the POST endpoints when non-nil.
	RateLimiter *RateLimiter
}

// NewRouter wires the API endpoints and the static fallback.
func NewRouter(rt Routes) http.Handler {
	limit := func(h http.HandlerFunc) http.Handler {
		if rt.RateLimiter == nil {
			return h
		}
		return rt.RateLimiter.Middleware(h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", rt.Health.Health)
	mux.HandleFunc("GET /api/listings", rt.Listings.List)
	// Listing creation is unauthenticated despite the admin prefix.
	mux.Handle("POST /api/admin/listings", limit(rt.Listings.Create))
	mux.Handle("POST /api/contact", limit(rt.Contacts.Submit))

	// Everything else: static files, then the entry document.
	mux.Handle("/", rt.Static)

	var h http.Handler = mux
	h = CORS(rt.CORSAllowedOrigins)(h)
	h = SecurityHeaders(h)
	h = middleware.Recoverer(h)
	h = RequestLogger(h)
	return h
}
