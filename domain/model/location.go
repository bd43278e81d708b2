package model

import "fmt"

// Location is a plain point in degrees, as LINE and most clients send it.
type Location struct {
	Latitude  float64
	Longitude float64
}

func (loc Location) String() string {
	return fmt.Sprintf("%f,%f", loc.Latitude, loc.Longitude)
}

// Location returns the coordinate as float degrees, or false if it is empty.
func (c *Coordinate) Location() (Location, bool) {
	p, ok := c.Pair()
	if !ok {
		return Location{}, false
	}
	return Location{Latitude: p.Lat.InexactFloat64(), Longitude: p.Lng.InexactFloat64()}, true
}
