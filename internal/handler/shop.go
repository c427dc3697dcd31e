package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mccluneyz/coffeeco/backend/internal/domain"
)

// shopResponse is the canonical JSON representation of a shop. camelCase
// field names are the single supported wire casing — clients must not expect
// PascalCase variants.
type shopResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	DateEntered string  `json:"dateEntered"`
	Favorited   bool    `json:"favorited"`
	Deleted     bool    `json:"deleted"`
}

// createShopRequest is the accepted body for POST /api/shops. Any other
// fields a caller sends (id, favorited, deleted, dateEntered) are ignored.
type createShopRequest struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// favoriteResponse is the body for PATCH /api/shops/{id}/favorite.
type favoriteResponse struct {
	ID        int64  `json:"id"`
	Favorited bool   `json:"favorited"`
	Message   string `json:"message"`
}

// deleteResponse is the body for DELETE /api/shops/{id}.
type deleteResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// ListShops handles GET /api/shops.
func (s *Server) ListShops(w http.ResponseWriter, r *http.Request) {
	shops, err := s.shops.List(r.Context())
	if err != nil {
		s.respondServiceError(r.Context(), w, err, "shop not found")
		return
	}

	data := make([]shopResponse, len(shops))
	for i, shop := range shops {
		data[i] = shopToResponse(shop)
	}
	respondJSON(w, http.StatusOK, data)
}

// GetShop handles GET /api/shops/{id}.
func (s *Server) GetShop(w http.ResponseWriter, r *http.Request) {
	id, ok := shopID(w, r)
	if !ok {
		return
	}

	shop, err := s.shops.GetByID(r.Context(), id)
	if err != nil {
		s.respondServiceError(r.Context(), w, err, "shop not found")
		return
	}

	respondJSON(w, http.StatusOK, shopToResponse(shop))
}

// CreateShop handles POST /api/shops.
func (s *Server) CreateShop(w http.ResponseWriter, r *http.Request) {
	var req createShopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	created, err := s.shops.Create(r.Context(), domain.Shop{
		Name:   req.Name,
		Rating: req.Rating,
	})
	if err != nil {
		s.respondServiceError(r.Context(), w, err, "shop not found")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/shops/%d", created.ID))
	respondJSON(w, http.StatusCreated, shopToResponse(created))
}

// ToggleFavorite handles PATCH /api/shops/{id}/favorite.
func (s *Server) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := shopID(w, r)
	if !ok {
		return
	}

	shop, err := s.shops.ToggleFavorite(r.Context(), id)
	if err != nil {
		s.respondServiceError(r.Context(), w, err, "shop not found")
		return
	}

	respondJSON(w, http.StatusOK, favoriteResponse{
		ID:        shop.ID,
		Favorited: shop.Favorited,
		Message:   "Favorite status updated",
	})
}

// DeleteShop handles DELETE /api/shops/{id}. The delete is soft: the row
// stays in storage with its deleted flag set, so repeating the request
// succeeds as long as the id exists.
func (s *Server) DeleteShop(w http.ResponseWriter, r *http.Request) {
	id, ok := shopID(w, r)
	if !ok {
		return
	}

	shop, err := s.shops.SoftDelete(r.Context(), id)
	if err != nil {
		s.respondServiceError(r.Context(), w, err, fmt.Sprintf("shop with id %d not found", id))
		return
	}

	respondJSON(w, http.StatusOK, deleteResponse{
		ID:      shop.ID,
		Message: "Shop deleted successfully",
	})
}

// shopID parses the {id} path parameter. A non-numeric id can never name a
// shop, so it gets the same 404 an unknown id would.
func shopID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusNotFound, "shop not found")
		return 0, false
	}
	return id, true
}

// shopToResponse converts a domain.Shop into its wire representation.
func shopToResponse(s domain.Shop) shopResponse {
	return shopResponse{
		ID:          s.ID,
		Name:        s.Name,
		Rating:      s.Rating,
		DateEntered: s.DateEntered.Format(time.RFC3339),
		Favorited:   s.Favorited,
		Deleted:     s.Deleted,
	}
}
