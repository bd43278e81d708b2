package model

import (
	"fmt"
	"math"
	"strings"
)

const (
	// approx radius of the earth
	EarthRadiusKm = 6373.0
	KmToMiles     = 0.62137119
)

type Unit string

const (
	Imperial = Unit("imperial")
	Metric   = Unit("metric")

	DefaultUnit = Imperial
)

// ParseUnit maps a config value to a Unit. An empty string gives DefaultUnit.
func ParseUnit(s string) (Unit, error) {
	switch u := Unit(strings.ToLower(strings.TrimSpace(s))); u {
	case "":
		return DefaultUnit, nil
	case Imperial, Metric:
		return u, nil
	default:
		return "", fmt.Errorf("parse unit: unknown unit %q", s)
	}
}

// Abbrev is the short label used in replies.
func (u Unit) Abbrev() string {
	switch u {
	case Imperial:
		return "mi"
	case Metric:
		return "km"
	default:
		return string(u)
	}
}

// Haversine returns the great-circle distance in kilometres between two
// points given in degrees.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	lambda1 := lng1 * math.Pi / 180
	lambda2 := lng2 * math.Pi / 180

	dlat := phi2 - phi1
	dlon := lambda2 - lambda1

	a := math.Pow(math.Sin(dlat/2), 2) + math.Cos(phi1)*math.Cos(phi2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}
