package catalog

// DefaultSnapshot returns the built-in tables: six Indian metros and six
// domestic carriers.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Locations: []Location{
			{Name: "Mumbai", Code: "BOM", Lat: 19.0896, Lon: 72.8656},
			{Name: "Delhi", Code: "DEL", Lat: 28.5562, Lon: 77.1000},
			{Name: "Bangalore", Code: "BLR", Lat: 12.9716, Lon: 77.5946},
			{Name: "Chennai", Code: "MAA", Lat: 13.0827, Lon: 80.2707},
			{Name: "Kolkata", Code: "CCU", Lat: 22.5726, Lon: 88.3639},
			{Name: "Hyderabad", Code: "HYD", Lat: 17.3850, Lon: 78.4867},
		},
		Carriers: []Carrier{
			{Name: "IndiGo", Logo: "🔵", Multiplier: 1.0, Rating: 4.2},
			{Name: "Air India", Logo: "🔴", Multiplier: 1.2, Rating: 4.0},
			{Name: "Vistara", Logo: "🟣", Multiplier: 1.4, Rating: 4.5},
			{Name: "SpiceJet", Logo: "🟡", Multiplier: 0.9, Rating: 3.8},
			{Name: "GoAir", Logo: "🟢", Multiplier: 0.85, Rating: 3.9},
			{Name: "AirAsia", Logo: "🔴", Multiplier: 0.88, Rating: 4.1},
		},
	}
}

// Default returns a Catalog built from DefaultSnapshot.
func Default() *Catalog {
	c, err := New(DefaultSnapshot())
	if err != nil {
		panic("catalog: default tables are invalid: " + err.Error())
	}
	return c
}
