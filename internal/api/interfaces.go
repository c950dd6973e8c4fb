package api

import (
	"context"

	"github.com/neexbeast/aerovoyage/internal/catalog"
	"github.com/neexbeast/aerovoyage/internal/flight"
)

// CatalogReader defines the catalog lookups needed by handlers.
// *catalog.Catalog satisfies this interface.
type CatalogReader interface {
	Location(name string) (catalog.Location, error)
	Locations() []catalog.Location
	Carriers() []catalog.Carrier
}

// FlightSearcher defines the search operation needed by handlers.
// *flight.Generator satisfies this interface.
type FlightSearcher interface {
	Search(q flight.Query) (*flight.Search, error)
}

// Pinger is a backend the health check can probe. A nil Pinger marks the
// backend as disabled.
type Pinger interface {
	Ping(ctx context.Context) error
}
