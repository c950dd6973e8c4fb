package catalog

import (
	"fmt"
	"strings"
)

// Snapshot is the serialisable form of a catalog, as stored in Postgres and
// cached in Redis.
type Snapshot struct {
	Locations []Location `json:"locations"`
	Carriers  []Carrier  `json:"carriers"`
}

// Catalog is the read-only location and carrier reference table. It is built
// once at startup and shared by every search; nothing mutates it afterwards.
type Catalog struct {
	locations []Location
	carriers  []Carrier
	index     map[string]int
}

// New validates s and freezes it into a Catalog. Table order is preserved:
// carrier order drives departure staggering and stop counts.
func New(s Snapshot) (*Catalog, error) {
	if len(s.Locations) == 0 {
		return nil, fmt.Errorf("%w: no locations", ErrInvalidCatalog)
	}
	if len(s.Carriers) == 0 {
		return nil, fmt.Errorf("%w: no carriers", ErrInvalidCatalog)
	}

	c := &Catalog{
		locations: make([]Location, len(s.Locations)),
		carriers:  make([]Carrier, len(s.Carriers)),
		index:     make(map[string]int, 2*len(s.Locations)),
	}
	copy(c.locations, s.Locations)
	copy(c.carriers, s.Carriers)

	for i, l := range c.locations {
		if err := validateLocation(l); err != nil {
			return nil, err
		}
		for _, k := range []string{lookupKey(l.Name), lookupKey(l.Code)} {
			if _, dup := c.index[k]; dup {
				return nil, fmt.Errorf("%w: duplicate location key %q", ErrInvalidCatalog, k)
			}
			c.index[k] = i
		}
	}

	seen := make(map[string]bool, len(c.carriers))
	for _, cr := range c.carriers {
		if err := validateCarrier(cr); err != nil {
			return nil, err
		}
		if seen[cr.Name] {
			return nil, fmt.Errorf("%w: duplicate carrier %q", ErrInvalidCatalog, cr.Name)
		}
		seen[cr.Name] = true
	}

	return c, nil
}

func validateLocation(l Location) error {
	switch {
	case strings.TrimSpace(l.Name) == "":
		return fmt.Errorf("%w: location with empty name", ErrInvalidCatalog)
	case !isAirportCode(l.Code):
		return fmt.Errorf("%w: location %s has code %q, want three letters", ErrInvalidCatalog, l.Name, l.Code)
	case l.Lat < -90 || l.Lat > 90:
		return fmt.Errorf("%w: location %s latitude %v out of range", ErrInvalidCatalog, l.Name, l.Lat)
	case l.Lon < -180 || l.Lon > 180:
		return fmt.Errorf("%w: location %s longitude %v out of range", ErrInvalidCatalog, l.Name, l.Lon)
	}
	return nil
}

// isAirportCode reports whether code is exactly three ASCII letters.
func isAirportCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		b := code[i]
		if (b < 'A' || b > 'Z') && (b < 'a' || b > 'z') {
			return false
		}
	}
	return true
}

func validateCarrier(c Carrier) error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("%w: carrier with empty name", ErrInvalidCatalog)
	case c.Multiplier <= 0:
		return fmt.Errorf("%w: carrier %s multiplier %v must be positive", ErrInvalidCatalog, c.Name, c.Multiplier)
	case c.Rating < 0 || c.Rating > 5:
		return fmt.Errorf("%w: carrier %s rating %v out of range", ErrInvalidCatalog, c.Name, c.Rating)
	}
	return nil
}

// lookupKey normalises a city name or airport code for lookups.
func lookupKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Location looks a city up by name or airport code, ignoring case.
func (c *Catalog) Location(name string) (Location, error) {
	i, ok := c.index[lookupKey(name)]
	if !ok {
		return Location{}, fmt.Errorf("%w: %q", ErrUnknownLocation, name)
	}
	return c.locations[i], nil
}

// Locations returns a copy of the location table in catalog order.
func (c *Catalog) Locations() []Location {
	out := make([]Location, len(c.locations))
	copy(out, c.locations)
	return out
}

// Carriers returns a copy of the carrier table in catalog order.
func (c *Catalog) Carriers() []Carrier {
	out := make([]Carrier, len(c.carriers))
	copy(out, c.carriers)
	return out
}

// Len is the number of carriers, i.e. the size of every search result.
func (c *Catalog) Len() int { return len(c.carriers) }

// Snapshot returns the catalog in its serialisable form.
func (c *Catalog) Snapshot() Snapshot {
	return Snapshot{Locations: c.Locations(), Carriers: c.Carriers()}
}
