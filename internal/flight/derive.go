package flight

import "fmt"

// annotate fills the batch-dependent and display fields of every offer.
func annotate(offers []Offer) {
	maxPrice := 0
	for _, o := range offers {
		if o.Price > maxPrice {
			maxPrice = o.Price
		}
	}

	for i := range offers {
		o := &offers[i]
		o.Savings = maxPrice - o.Price
		o.DurationStr = FormatDuration(o.Duration)
		o.StopsStr = FormatStops(o.Stops)
		o.Route = fmt.Sprintf("%s → %s", o.Departure, o.Arrival)
	}
}

// FormatDuration renders minutes as "Xh Ym".
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// FormatStops renders a stop count for display.
func FormatStops(stops int) string {
	if stops == 0 {
		return "✈ Non-stop"
	}
	return fmt.Sprintf("%d stop(s)", stops)
}

// Summarize picks the cheapest and fastest offers and averages the prices.
// Ties go to the earliest offer in catalog order. Returns nil for an empty
// batch.
func Summarize(offers []Offer) *Summary {
	if len(offers) == 0 {
		return nil
	}

	cheapest, fastest := 0, 0
	total := 0
	for i, o := range offers {
		if o.Price < offers[cheapest].Price {
			cheapest = i
		}
		if o.Duration < offers[fastest].Duration {
			fastest = i
		}
		total += o.Price
	}

	return &Summary{
		Cheapest:     offers[cheapest],
		Fastest:      offers[fastest],
		AveragePrice: total / len(offers),
		Options:      len(offers),
	}
}
