package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Store is the persistent home of the catalog tables.
type Store interface {
	ListLocations(ctx context.Context) ([]Location, error)
	ListCarriers(ctx context.Context) ([]Carrier, error)
	SeedCatalog(ctx context.Context, s Snapshot) error
}

// SnapshotCache holds a serialised catalog between restarts.
// Get returns nil, nil on a miss.
type SnapshotCache interface {
	Get(ctx context.Context) (*Snapshot, error)
	Set(ctx context.Context, s *Snapshot) error
}

// Loader resolves the catalog used for the lifetime of the process.
type Loader struct {
	store Store
	cache SnapshotCache
	log   *slog.Logger
}

// NewLoader constructs a Loader. store and cache are both optional; with
// neither the built-in tables are used.
func NewLoader(store Store, cache SnapshotCache, log *slog.Logger) *Loader {
	return &Loader{store: store, cache: cache, log: log}
}

// Load returns the catalog. Cache hit → use it. Otherwise read the store,
// seeding it with the defaults when empty, and repopulate the cache.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	if l.cache != nil {
		snap, err := l.cache.Get(ctx)
		if err != nil {
			l.log.Warn("catalog cache get failed", "err", err)
		}
		if snap != nil {
			c, err := New(*snap)
			if err == nil {
				l.log.Info("catalog loaded from cache", "locations", len(snap.Locations), "carriers", len(snap.Carriers))
				return c, nil
			}
			l.log.Warn("cached catalog rejected", "err", err)
		}
	}

	if l.store == nil {
		l.log.Info("catalog store not configured, using built-in tables")
		return Default(), nil
	}

	snap, err := l.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if len(snap.Locations) == 0 && len(snap.Carriers) == 0 {
		snap = DefaultSnapshot()
		if err := l.store.SeedCatalog(ctx, snap); err != nil {
			return nil, fmt.Errorf("seeding catalog: %w", err)
		}
		l.log.Info("catalog store was empty, seeded built-in tables")
	}

	c, err := New(snap)
	if err != nil {
		return nil, fmt.Errorf("building catalog from store: %w", err)
	}

	if l.cache != nil {
		if err := l.cache.Set(ctx, &snap); err != nil {
			l.log.Warn("catalog cache set failed", "err", err)
		}
	}

	l.log.Info("catalog loaded from store", "locations", len(snap.Locations), "carriers", len(snap.Carriers))
	return c, nil
}

// fetch reads both tables in parallel.
func (l *Loader) fetch(ctx context.Context) (Snapshot, error) {
	g, gCtx := errgroup.WithContext(ctx)

	var snap Snapshot

	g.Go(func() error {
		locs, err := l.store.ListLocations(gCtx)
		if err != nil {
			return fmt.Errorf("listing locations: %w", err)
		}
		snap.Locations = locs
		return nil
	})

	g.Go(func() error {
		carriers, err := l.store.ListCarriers(gCtx)
		if err != nil {
			return fmt.Errorf("listing carriers: %w", err)
		}
		snap.Carriers = carriers
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, fmt.Errorf("loading catalog: %w", err)
	}
	return snap, nil
}
