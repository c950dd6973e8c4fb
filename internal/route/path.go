package route

import (
	"math"

	"github.com/skypies/geo"
)

const (
	// DefaultPathPoints is the number of vertices drawn for a route on the map.
	DefaultPathPoints = 50

	// arcHeight is the peak latitude offset, in degrees, of the drawn route.
	arcHeight = 2.0
)

// Path returns n points linearly interpolated from "from" to "to", with the
// latitude of each point raised by arcHeight*sin(pi*i/n) so the route renders
// as an arc. The offset is indexed by i/n, not i/(n-1), so only the first
// vertex sits exactly on its endpoint.
func Path(from, to geo.Latlong, n int) []geo.Latlong {
	if n < 2 {
		n = 2
	}

	pts := make([]geo.Latlong, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		pts[i] = geo.Latlong{
			Lat:  from.Lat + (to.Lat-from.Lat)*t + arcHeight*math.Sin(math.Pi*float64(i)/float64(n)),
			Long: from.Long + (to.Long-from.Long)*t,
		}
	}
	return pts
}

// Midpoint is the arithmetic midpoint used to center the route map.
func Midpoint(from, to geo.Latlong) geo.Latlong {
	return geo.Latlong{Lat: (from.Lat + to.Lat) / 2, Long: (from.Long + to.Long) / 2}
}
