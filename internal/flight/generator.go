package flight

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/neexbeast/aerovoyage/internal/catalog"
	"github.com/neexbeast/aerovoyage/internal/route"
)

const (
	// farePerKM is the base fare in currency units per kilometre.
	farePerKM = 2.5

	// cruiseSpeedKMH is the assumed average speed used for block times.
	cruiseSpeedKMH = 770.0

	// groundMinutes covers taxi, climb and descent on every flight.
	groundMinutes = 30

	maxJitterMinutes = 20

	firstDepartureHour = 6
	departureSpacing   = 2

	minSeats = 5
	maxSeats = 25 // exclusive

	minFlightNo = 1000
	maxFlightNo = 10000 // exclusive
)

var departureMinutes = [4]int{0, 15, 30, 45}

// Generator synthesizes flight offers from an immutable catalog.
type Generator struct {
	catalog *catalog.Catalog
	rng     Rand
}

// NewGenerator constructs a Generator. A nil rng uses DefaultRand.
func NewGenerator(c *catalog.Catalog, rng Rand) *Generator {
	if rng == nil {
		rng = DefaultRand()
	}
	return &Generator{catalog: c, rng: rng}
}

// Generate returns one offer per catalog carrier, in catalog order, with all
// derived fields filled in. Origin equal to destination yields an empty batch
// and no error.
func (g *Generator) Generate(q Query) ([]Offer, error) {
	offers, _, err := g.generate(q)
	return offers, err
}

// Search runs Generate and attaches the distance and batch summary.
func (g *Generator) Search(q Query) (*Search, error) {
	offers, distance, err := g.generate(q)
	if err != nil {
		return nil, err
	}

	return &Search{
		ID:         uuid.New(),
		Query:      q,
		Distance:   distance,
		DistanceKM: int(distance),
		Offers:     offers,
		Summary:    Summarize(offers),
	}, nil
}

func (g *Generator) generate(q Query) ([]Offer, float64, error) {
	if sameKey(q.Origin, q.Destination) {
		return []Offer{}, 0, nil
	}
	if q.Passengers < 1 {
		return nil, 0, fmt.Errorf("%w: got %d", ErrInvalidPassengers, q.Passengers)
	}
	classMult, err := q.Class.Multiplier()
	if err != nil {
		return nil, 0, err
	}

	from, err := g.catalog.Location(q.Origin)
	if err != nil {
		return nil, 0, fmt.Errorf("resolving origin: %w", err)
	}
	to, err := g.catalog.Location(q.Destination)
	if err != nil {
		return nil, 0, fmt.Errorf("resolving destination: %w", err)
	}
	if from.Name == to.Name {
		return []Offer{}, 0, nil
	}

	distance := route.Distance(from.Position(), to.Position())

	carriers := g.catalog.Carriers()
	offers := make([]Offer, 0, len(carriers))
	for i, c := range carriers {
		offers = append(offers, g.buildOffer(i, c, distance, classMult, q.Passengers))
	}

	annotate(offers)
	return offers, distance, nil
}

// buildOffer prices and schedules the offer for the carrier at catalog index i.
// Departure slot and stop count depend only on i; jitter, seats and flight
// number are drawn from g.rng in that order.
func (g *Generator) buildOffer(i int, c catalog.Carrier, distance, classMult float64, passengers int) Offer {
	base := distance * farePerKM
	price := int(base * c.Multiplier * classMult * float64(passengers))

	duration := int(distance/cruiseSpeedKMH*60+groundMinutes) + g.rng.IntN(maxJitterMinutes)

	dep := NewClock(firstDepartureHour+departureSpacing*i, departureMinutes[i%len(departureMinutes)])

	return Offer{
		Carrier:   CarrierRef{Name: c.Name, Logo: c.Logo, Rating: c.Rating},
		Price:     price,
		Duration:  duration,
		Departure: dep,
		Arrival:   dep.Add(duration),
		Stops:     i % 3,
		Seats:     minSeats + g.rng.IntN(maxSeats-minSeats),
		FlightNo:  flightNumber(c.Name, minFlightNo+g.rng.IntN(maxFlightNo-minFlightNo)),
	}
}

// flightNumber is the upper-cased first two letters of the carrier name
// followed by the numeric suffix.
func flightNumber(carrier string, suffix int) string {
	prefix := carrier
	if utf8.RuneCountInString(prefix) > 2 {
		prefix = string([]rune(prefix)[:2])
	}
	return fmt.Sprintf("%s%d", strings.ToUpper(prefix), suffix)
}

func sameKey(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
