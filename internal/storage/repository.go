package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neexbeast/aerovoyage/internal/catalog"
)

// Querier abstracts the subset of pgxpool.Pool used by Repository.
// This allows injection of a mock in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// execer is satisfied by both the pool and a pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository provides database access for the location and carrier tables.
type Repository struct {
	q Querier
}

// NewRepository constructs a Repository backed by the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{q: pool}
}

// NewRepositoryWithQuerier constructs a Repository with a custom Querier (for tests).
func NewRepositoryWithQuerier(q Querier) *Repository {
	return &Repository{q: q}
}

// ListLocations returns every location in catalog order.
func (r *Repository) ListLocations(ctx context.Context) ([]catalog.Location, error) {
	const q = `
		SELECT name, code, lat, lon
		FROM locations
		ORDER BY position, name
	`

	rows, err := r.q.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying locations: %w", err)
	}
	defer rows.Close()

	var results []catalog.Location
	for rows.Next() {
		var l catalog.Location
		if err := rows.Scan(&l.Name, &l.Code, &l.Lat, &l.Lon); err != nil {
			return nil, fmt.Errorf("scanning location row: %w", err)
		}
		results = append(results, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating location rows: %w", err)
	}

	return results, nil
}

// ListCarriers returns every carrier in catalog order.
func (r *Repository) ListCarriers(ctx context.Context) ([]catalog.Carrier, error) {
	const q = `
		SELECT name, logo, multiplier, rating
		FROM carriers
		ORDER BY position, name
	`

	rows, err := r.q.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying carriers: %w", err)
	}
	defer rows.Close()

	var results []catalog.Carrier
	for rows.Next() {
		var c catalog.Carrier
		if err := rows.Scan(&c.Name, &c.Logo, &c.Multiplier, &c.Rating); err != nil {
			return nil, fmt.Errorf("scanning carrier row: %w", err)
		}
		results = append(results, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating carrier rows: %w", err)
	}

	return results, nil
}

// UpsertLocation inserts or updates a location at the given catalog position.
func (r *Repository) UpsertLocation(ctx context.Context, position int, l catalog.Location) error {
	return upsertLocation(ctx, r.q, position, l)
}

func upsertLocation(ctx context.Context, db execer, position int, l catalog.Location) error {
	const q = `
		INSERT INTO locations (position, name, code, lat, lon, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (name) DO UPDATE
		SET position   = EXCLUDED.position,
		    code       = EXCLUDED.code,
		    lat        = EXCLUDED.lat,
		    lon        = EXCLUDED.lon,
		    updated_at = EXCLUDED.updated_at
	`

	if _, err := db.Exec(ctx, q, position, l.Name, l.Code, l.Lat, l.Lon); err != nil {
		return fmt.Errorf("upserting location %s: %w", l.Name, err)
	}
	return nil
}

// UpsertCarrier inserts or updates a carrier at the given catalog position.
func (r *Repository) UpsertCarrier(ctx context.Context, position int, c catalog.Carrier) error {
	return upsertCarrier(ctx, r.q, position, c)
}

func upsertCarrier(ctx context.Context, db execer, position int, c catalog.Carrier) error {
	const q = `
		INSERT INTO carriers (position, name, logo, multiplier, rating, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (name) DO UPDATE
		SET position   = EXCLUDED.position,
		    logo       = EXCLUDED.logo,
		    multiplier = EXCLUDED.multiplier,
		    rating     = EXCLUDED.rating,
		    updated_at = EXCLUDED.updated_at
	`

	if _, err := db.Exec(ctx, q, position, c.Name, c.Logo, c.Multiplier, c.Rating); err != nil {
		return fmt.Errorf("upserting carrier %s: %w", c.Name, err)
	}
	return nil
}

// SeedCatalog writes every row of s in one transaction, keeping table order
// as the position. On any failure nothing is written.
func (r *Repository) SeedCatalog(ctx context.Context, s catalog.Snapshot) error {
	tx, err := r.q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}

	if err := seed(ctx, tx, s); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}
	return nil
}

func seed(ctx context.Context, tx pgx.Tx, s catalog.Snapshot) error {
	for i, l := range s.Locations {
		if err := upsertLocation(ctx, tx, i, l); err != nil {
			return err
		}
	}
	for i, c := range s.Carriers {
		if err := upsertCarrier(ctx, tx, i, c); err != nil {
			return err
		}
	}
	return nil
}
