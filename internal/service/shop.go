// Package service contains the business rules for the CoffeeCo API.
// Services sit between HTTP handlers and the repo layer: they validate input,
// apply defaults, and decide which lookup semantics each operation uses.
package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mccluneyz/coffeeco/backend/internal/domain"
	"github.com/mccluneyz/coffeeco/backend/internal/repo"
)

// ShopService implements business logic for Shop operations.
type ShopService struct {
	shops repo.ShopRepo
}

// NewShopService constructs a ShopService backed by the provided ShopRepo.
func NewShopService(shops repo.ShopRepo) *ShopService {
	return &ShopService{shops: shops}
}

// List returns all active shops ordered by rating descending.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ShopService) List(ctx context.Context) ([]domain.Shop, error) {
	shops, err := s.shops.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ShopService.List: %w", err)
	}
	if shops == nil {
		return []domain.Shop{}, nil
	}
	return shops, nil
}

// GetByID returns a single active shop.
// Returns domain.ErrNotFound if the id is unknown or the shop is soft-deleted.
func (s *ShopService) GetByID(ctx context.Context, id int64) (domain.Shop, error) {
	shop, err := s.shops.GetActive(ctx, id)
	if err != nil {
		return domain.Shop{}, fmt.Errorf("service.ShopService.GetByID: %w", err)
	}
	return shop, nil
}

// Create validates the shop and persists it. Only name and rating are taken
// from the input; id, dateEntered, favorited, and deleted are always assigned
// server-side, whatever the caller supplied.
// Returns domain.ErrValidation if input violates business rules.
func (s *ShopService) Create(ctx context.Context, shop domain.Shop) (domain.Shop, error) {
	shop.Name = strings.TrimSpace(shop.Name)
	if err := validateShop(shop); err != nil {
		return domain.Shop{}, err
	}
	result, err := s.shops.Insert(ctx, shop)
	if err != nil {
		return domain.Shop{}, fmt.Errorf("service.ShopService.Create: %w", err)
	}
	return result, nil
}

// ToggleFavorite flips the favorited flag of an active shop and persists it.
// Returns domain.ErrNotFound if the id is unknown or the shop is soft-deleted.
func (s *ShopService) ToggleFavorite(ctx context.Context, id int64) (domain.Shop, error) {
	shop, err := s.shops.GetActive(ctx, id)
	if err != nil {
		return domain.Shop{}, fmt.Errorf("service.ShopService.ToggleFavorite: %w", err)
	}

	shop.Favorited = !shop.Favorited

	result, err := s.shops.Save(ctx, shop)
	if err != nil {
		return domain.Shop{}, fmt.Errorf("service.ShopService.ToggleFavorite: %w", err)
	}
	return result, nil
}

// SoftDelete marks a shop as deleted and persists it. The lookup ignores the
// deleted flag, so deleting an already-deleted shop succeeds as a no-op —
// a client retrying a delete gets the same answer both times.
// Returns domain.ErrNotFound only if the id was never assigned.
func (s *ShopService) SoftDelete(ctx context.Context, id int64) (domain.Shop, error) {
	shop, err := s.shops.GetAny(ctx, id)
	if err != nil {
		return domain.Shop{}, fmt.Errorf("service.ShopService.SoftDelete: %w", err)
	}

	shop.Deleted = true

	result, err := s.shops.Save(ctx, shop)
	if err != nil {
		return domain.Shop{}, fmt.Errorf("service.ShopService.SoftDelete: %w", err)
	}
	return result, nil
}

// validateShop checks the business rules for a shop about to be created.
// Name must already be trimmed by the caller.
func validateShop(shop domain.Shop) error {
	if shop.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(shop.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", domain.ErrValidation, domain.MaxNameLength)
	}
	if shop.Rating < domain.MinRating || shop.Rating > domain.MaxRating {
		return fmt.Errorf("%w: rating must be between %.1f and %.1f", domain.ErrValidation, domain.MinRating, domain.MaxRating)
	}
	return nil
}
