// Package repo contains all database access logic for the CoffeeCo API.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mccluneyz/coffeeco/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ShopRepo defines the persistence operations for Shops.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type ShopRepo interface {
	// ListActive returns all non-deleted shops ordered by rating descending.
	// Ties are broken by id so the order is stable. Returns an empty slice,
	// not an error, when no shops exist.
	ListActive(ctx context.Context) ([]domain.Shop, error)

	// GetActive retrieves a single non-deleted shop by id.
	// Returns domain.ErrNotFound if the id is unknown or the shop is
	// soft-deleted.
	GetActive(ctx context.Context, id int64) (domain.Shop, error)

	// GetAny retrieves a single shop by id regardless of its deleted flag.
	// Soft-delete needs this: an already-deleted row must still be findable.
	// Returns domain.ErrNotFound if the id is unknown.
	GetAny(ctx context.Context, id int64) (domain.Shop, error)

	// Insert persists a new shop. Only name and rating are taken from the
	// argument; id, date_entered, favorited, and deleted come from column
	// defaults. Returns the full persisted record.
	Insert(ctx context.Context, shop domain.Shop) (domain.Shop, error)

	// Save persists the mutable flags (favorited, deleted) of an existing
	// shop and returns the updated record.
	// Returns domain.ErrNotFound if the row no longer exists.
	Save(ctx context.Context, shop domain.Shop) (domain.Shop, error)
}

// pgShopRepo is the Postgres implementation of ShopRepo.
type pgShopRepo struct {
	db db
}

// NewShopRepo constructs a ShopRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewShopRepo(db db) ShopRepo {
	return &pgShopRepo{db: db}
}

// shopColumns is the column list shared by every query so scanShop always
// sees the same shape.
const shopColumns = `id, name, rating, date_entered, favorited, deleted`

// ListActive returns all non-deleted shops, best-rated first.
func (r *pgShopRepo) ListActive(ctx context.Context) ([]domain.Shop, error) {
	const q = `
		SELECT ` + shopColumns + `
		FROM shops
		WHERE NOT deleted
		ORDER BY rating DESC, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ShopRepo.ListActive: %w", err)
	}
	defer rows.Close()

	shops := []domain.Shop{}
	for rows.Next() {
		s, err := scanShop(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ShopRepo.ListActive: scan: %w", err)
		}
		shops = append(shops, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ShopRepo.ListActive: rows: %w", err)
	}
	return shops, nil
}

// GetActive retrieves a non-deleted shop by primary key.
func (r *pgShopRepo) GetActive(ctx context.Context, id int64) (domain.Shop, error) {
	const q = `
		SELECT ` + shopColumns + `
		FROM shops
		WHERE id = @id AND NOT deleted`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanShop(row)
	if err != nil {
		return domain.Shop{}, fmt.Errorf("repo.ShopRepo.GetActive: %w", err)
	}
	return result, nil
}

// GetAny retrieves a shop by primary key, deleted or not.
func (r *pgShopRepo) GetAny(ctx context.Context, id int64) (domain.Shop, error) {
	const q = `
		SELECT ` + shopColumns + `
		FROM shops
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanShop(row)
	if err != nil {
		return domain.Shop{}, fmt.Errorf("repo.ShopRepo.GetAny: %w", err)
	}
	return result, nil
}

// Insert persists a new shop row and returns the full record with the
// DB-assigned id and date_entered. favorited and deleted always start false
// via column defaults, whatever the caller put in the struct.
func (r *pgShopRepo) Insert(ctx context.Context, shop domain.Shop) (domain.Shop, error) {
	const q = `
		INSERT INTO shops (name, rating)
		VALUES (@name, @rating)
		RETURNING ` + shopColumns

	args := pgx.NamedArgs{
		"name":   shop.Name,
		"rating": shop.Rating,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanShop(row)
	if err != nil {
		return domain.Shop{}, fmt.Errorf("repo.ShopRepo.Insert: %w", err)
	}
	return result, nil
}

// Save overwrites the mutable flags of a shop and returns the updated record.
// name, rating, and date_entered are immutable once inserted, so they are
// deliberately absent from the SET list.
func (r *pgShopRepo) Save(ctx context.Context, shop domain.Shop) (domain.Shop, error) {
	const q = `
		UPDATE shops
		SET favorited = @favorited,
		    deleted   = @deleted
		WHERE id = @id
		RETURNING ` + shopColumns

	args := pgx.NamedArgs{
		"id":        shop.ID,
		"favorited": shop.Favorited,
		"deleted":   shop.Deleted,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanShop(row)
	if err != nil {
		return domain.Shop{}, fmt.Errorf("repo.ShopRepo.Save: %w", err)
	}
	return result, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanShop to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanShop maps a single database row into a domain.Shop.
// The NUMERIC(3,2) rating column scans directly into float64 under pgx v5.
func scanShop(s scanner) (domain.Shop, error) {
	var shop domain.Shop

	err := s.Scan(&shop.ID, &shop.Name, &shop.Rating, &shop.DateEntered, &shop.Favorited, &shop.Deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Shop{}, domain.ErrNotFound
		}
		return domain.Shop{}, err
	}

	return shop, nil
}
