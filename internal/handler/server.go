// Package handler implements the HTTP handlers for the CoffeeCo API.
// Handlers are methods on Server, which holds the service dependencies.
// They decode requests, call the service layer, and map results and sentinel
// errors onto HTTP responses — no business logic lives here.
package handler

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/mccluneyz/coffeeco/backend/internal/domain"
)

// ShopServicer defines the business operations the shop handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type ShopServicer interface {
	List(ctx context.Context) ([]domain.Shop, error)
	GetByID(ctx context.Context, id int64) (domain.Shop, error)
	Create(ctx context.Context, shop domain.Shop) (domain.Shop, error)
	ToggleFavorite(ctx context.Context, id int64) (domain.Shop, error)
	SoftDelete(ctx context.Context, id int64) (domain.Shop, error)
}

// Server holds the handlers for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
// The logger is injected rather than taken from the slog default so tests
// can silence it and so handlers never log through hidden globals.
type Server struct {
	shops ShopServicer
	log   *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(shops ShopServicer, log *slog.Logger) *Server {
	return &Server{shops: shops, log: log}
}

// RegisterRoutes attaches the shop endpoints to r. Mount r under /api so the
// paths line up with the documented surface (/api/shops etc.). Unmatched
// paths under the mount return a JSON 404 instead of the SPA fallback.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.NotFound(apiNotFound)
	r.Route("/shops", func(r chi.Router) {
		r.Get("/", s.ListShops)
		r.Post("/", s.CreateShop)
		r.Get("/{id}", s.GetShop)
		r.Patch("/{id}/favorite", s.ToggleFavorite)
		r.Delete("/{id}", s.DeleteShop)
	})
}
