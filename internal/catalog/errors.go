package catalog

import "errors"

var (
	// ErrUnknownLocation is returned when a city is not in the location catalog.
	ErrUnknownLocation = errors.New("unknown location")

	// ErrUnknownCabinClass is returned for a cabin class outside Economy,
	// Premium Economy and Business.
	ErrUnknownCabinClass = errors.New("unknown cabin class")

	// ErrInvalidCatalog is returned by New when the tables are inconsistent.
	ErrInvalidCatalog = errors.New("invalid catalog")
)
