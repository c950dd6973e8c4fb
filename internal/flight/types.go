package flight

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/neexbeast/aerovoyage/internal/catalog"
)

// Clock is a wall-clock time of day, in minutes after midnight.
type Clock int

const minutesPerDay = 24 * 60

// NewClock returns hour:minute, wrapped into a single day.
func NewClock(hour, minute int) Clock {
	return Clock(((hour*60+minute)%minutesPerDay + minutesPerDay) % minutesPerDay)
}

// Add returns the clock advanced by d minutes, wrapping past midnight
// without recording the day change.
func (c Clock) Add(d int) Clock {
	return NewClock(0, int(c)+d)
}

func (c Clock) Hour() int    { return int(c) / 60 }
func (c Clock) Minute() int  { return int(c) % 60 }
func (c Clock) Minutes() int { return int(c) }

// String formats the clock as 24h "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// MarshalText encodes the clock as "HH:MM" in JSON.
func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses "HH:MM".
func (c *Clock) UnmarshalText(b []byte) error {
	var h, m int
	if _, err := fmt.Sscanf(string(b), "%d:%d", &h, &m); err != nil {
		return fmt.Errorf("parsing clock %q: %w", string(b), err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return fmt.Errorf("clock %q out of range", string(b))
	}
	*c = NewClock(h, m)
	return nil
}

// CarrierRef is the part of a carrier shown alongside an offer.
type CarrierRef struct {
	Name   string  `json:"name"`
	Logo   string  `json:"logo"`
	Rating float64 `json:"rating"`
}

// Offer is one synthesized flight for a single carrier within a search.
type Offer struct {
	Carrier   CarrierRef `json:"carrier"`
	FlightNo  string     `json:"flight_no"`
	Price     int        `json:"price"`
	Duration  int        `json:"duration"`
	Departure Clock      `json:"departure"`
	Arrival   Clock      `json:"arrival"`
	Stops     int        `json:"stops"`
	Seats     int        `json:"seats"`

	// Derived once the whole batch exists.
	Savings     int    `json:"savings"`
	DurationStr string `json:"duration_str"`
	StopsStr    string `json:"stops_str"`
	Route       string `json:"route"`
}

// Query is the input of a search.
type Query struct {
	Origin      string             `json:"from"`
	Destination string             `json:"to"`
	Class       catalog.CabinClass `json:"class"`
	Passengers  int                `json:"passengers"`
}

// Summary holds the highlighted offers and aggregate statistics of a batch.
type Summary struct {
	Cheapest     Offer `json:"cheapest"`
	Fastest      Offer `json:"fastest"`
	AveragePrice int   `json:"average_price"`
	Options      int   `json:"options"`
}

// Search is a complete result: the batch plus everything derived from it.
// Summary is nil when Offers is empty.
type Search struct {
	ID         uuid.UUID `json:"id"`
	Query      Query     `json:"query"`
	Distance   float64   `json:"-"`
	DistanceKM int       `json:"distance_km"`
	Offers     []Offer   `json:"offers"`
	Summary    *Summary  `json:"summary"`
}

// Empty reports whether the search produced no offers (same origin and
// destination).
func (s *Search) Empty() bool { return len(s.Offers) == 0 }
