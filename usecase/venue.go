package usecase

import (
	"errors"
	"fmt"

	"zemmai-dev/agenda-coords/domain/model"
)

var (
	ErrNoVenue         = errors.New("venue has no coordinates")
	ErrUnsupportedUnit = errors.New("unsupported distance unit")
)

type VenueUsecase interface {
	Venue() *model.Coordinate
	Distance(from model.Location) (float64, error)
	Reply(from model.Location) (string, error)
}

type venueUsecase struct {
	venue *model.Coordinate
	unit  model.Unit
}

func NewVenueUsecase(venue *model.Coordinate, unit model.Unit) (VenueUsecase, error) {
	if _, ok := venue.Pair(); !ok {
		return nil, ErrNoVenue
	}

	return &venueUsecase{venue: venue, unit: unit}, nil
}

func (vu *venueUsecase) Venue() *model.Coordinate {
	return vu.venue
}

func (vu *venueUsecase) Distance(from model.Location) (float64, error) {
	if _, ok := vu.venue.Pair(); !ok {
		return 0, fmt.Errorf("distance from %s: %w", from, ErrNoVenue)
	}

	d, ok := vu.venue.DistanceFrom(from.Latitude, from.Longitude, vu.unit)
	if !ok {
		return 0, fmt.Errorf("distance from %s: %w: %q", from, ErrUnsupportedUnit, vu.unit)
	}

	return d, nil
}

func (vu *venueUsecase) Reply(from model.Location) (string, error) {
	d, err := vu.Distance(from)
	if err != nil {
		return "", err
	}

	name := "the venue"
	if vu.venue.AddressString != nil && *vu.venue.AddressString != "" {
		name = *vu.venue.AddressString
	}

	return fmt.Sprintf("You are %.1f %s from %s.", d, vu.unit.Abbrev(), name), nil
}
