package catalog

import (
	"fmt"
	"strings"

	"github.com/skypies/geo"
)

// Location is a city that flights can depart from or arrive at.
type Location struct {
	Name string  `json:"name"`
	Code string  `json:"code"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Position returns the location as a lat/long pair.
func (l Location) Position() geo.Latlong {
	return geo.Latlong{Lat: l.Lat, Long: l.Lon}
}

// Carrier is an airline that appears in every search.
type Carrier struct {
	Name       string  `json:"name"`
	Logo       string  `json:"logo"`
	Multiplier float64 `json:"multiplier"`
	Rating     float64 `json:"rating"`
}

// CabinClass is the fare tier of a search.
type CabinClass string

const (
	Economy        CabinClass = "Economy"
	PremiumEconomy CabinClass = "Premium Economy"
	Business       CabinClass = "Business"
)

// CabinClasses lists the supported classes in ascending fare order.
var CabinClasses = []CabinClass{Economy, PremiumEconomy, Business}

// Multiplier returns the fare multiplier for the class.
func (c CabinClass) Multiplier() (float64, error) {
	switch c {
	case Economy:
		return 1.0, nil
	case PremiumEconomy:
		return 1.5, nil
	case Business:
		return 2.5, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCabinClass, string(c))
}

// ParseCabinClass accepts the display name in any case, with spaces,
// underscores or hyphens between words ("premium_economy" works).
func ParseCabinClass(s string) (CabinClass, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", " ", "-", " ").Replace(norm)
	norm = strings.Join(strings.Fields(norm), " ")

	for _, c := range CabinClasses {
		if strings.ToLower(string(c)) == norm {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCabinClass, s)
}
