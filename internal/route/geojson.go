package route

import (
	"fmt"

	geo "github.com/paulmach/go.geo"
	geojson "github.com/paulmach/go.geojson"
	sgeo "github.com/skypies/geo"
)

// Endpoint is one end of a route as shown on the map.
type Endpoint struct {
	Name     string
	Code     string
	Position sgeo.Latlong
}

// Map builds the route map as a GeoJSON feature collection: an arced
// LineString from origin to destination followed by one Point marker per end.
func Map(origin, destination Endpoint, points int) *geojson.FeatureCollection {
	path := geo.NewPath()
	for _, p := range Path(origin.Position, destination.Position, points) {
		path.Push(p.Pt())
	}

	line := path.ToGeoJSON()
	line.SetProperty("kind", "route")
	line.SetProperty("distance_km", int(Distance(origin.Position, destination.Position)))
	center := Midpoint(origin.Position, destination.Position).Pt()
	line.SetProperty("center", []float64{center.Lng(), center.Lat()})

	fc := geojson.NewFeatureCollection()
	fc.AddFeature(line)
	fc.AddFeature(marker(origin, "origin", "🛫"))
	fc.AddFeature(marker(destination, "destination", "🛬"))
	return fc
}

func marker(e Endpoint, role, glyph string) *geojson.Feature {
	f := e.Position.Pt().ToGeoJSON()
	f.SetProperty("kind", role)
	f.SetProperty("name", e.Name)
	f.SetProperty("code", e.Code)
	f.SetProperty("label", fmt.Sprintf("%s %s", glyph, e.Name))
	return f
}
