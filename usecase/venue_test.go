package usecase

import (
	"errors"
	"fmt"
	"testing"

	"zemmai-dev/agenda-coords/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVenue(t *testing.T, address *string) *model.Coordinate {
	t.Helper()
	venue, err := model.New(nil, &model.Fields{Lat: "30.213381", Lng: "-97.899124", AddressString: address})
	require.NoError(t, err)
	return venue
}

func TestNewVenueUsecase_Empty(t *testing.T) {
	empty, err := model.New(nil, nil)
	require.NoError(t, err)

	_, err = NewVenueUsecase(empty, model.Imperial)
	assert.ErrorIs(t, err, ErrNoVenue)

	_, err = NewVenueUsecase(nil, model.Imperial)
	assert.ErrorIs(t, err, ErrNoVenue)
}

func TestVenueUsecase_Distance(t *testing.T) {
	venue := newVenue(t, nil)
	from := model.Location{Latitude: 31, Longitude: -98}

	vu, err := NewVenueUsecase(venue, model.Metric)
	require.NoError(t, err)
	assert.Same(t, venue, vu.Venue())

	want, ok := venue.DistanceFrom(31, -98, model.Metric)
	require.True(t, ok)

	have, err := vu.Distance(from)
	require.NoError(t, err)
	assert.Equal(t, want, have)
}

func TestVenueUsecase_UnsupportedUnit(t *testing.T) {
	vu, err := NewVenueUsecase(newVenue(t, nil), model.Unit("bogus"))
	require.NoError(t, err)

	_, err = vu.Distance(model.Location{Latitude: 31, Longitude: -98})
	assert.ErrorIs(t, err, ErrUnsupportedUnit)

	_, err = vu.Reply(model.Location{Latitude: 31, Longitude: -98})
	assert.ErrorIs(t, err, ErrUnsupportedUnit)
}

func TestVenueUsecase_Reply(t *testing.T) {
	address := "Convention Center"
	venue := newVenue(t, &address)
	from := model.Location{Latitude: 31, Longitude: -98}

	miles, ok := venue.DistanceFrom(31, -98, model.Imperial)
	require.True(t, ok)

	vu, err := NewVenueUsecase(venue, model.Imperial)
	require.NoError(t, err)

	reply, err := vu.Reply(from)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("You are %.1f mi from Convention Center.", miles), reply)

	vu, err = NewVenueUsecase(newVenue(t, nil), model.Metric)
	require.NoError(t, err)

	reply, err = vu.Reply(model.Location{Latitude: 30.213381, Longitude: -97.899124})
	require.NoError(t, err)
	assert.Equal(t, "You are 0.0 km from the venue.", reply)
}

func TestVenueUsecase_VenueClearedLater(t *testing.T) {
	venue := newVenue(t, nil)

	vu, err := NewVenueUsecase(venue, model.Imperial)
	require.NoError(t, err)

	venue.Lat = nil
	venue.Lng = nil

	_, err = vu.Distance(model.Location{Latitude: 31, Longitude: -98})
	assert.ErrorIs(t, err, ErrNoVenue)
	assert.False(t, errors.Is(err, ErrUnsupportedUnit))

	_, err = vu.Reply(model.Location{Latitude: 31, Longitude: -98})
	assert.ErrorIs(t, err, ErrNoVenue)
}
