package config

import (
	"testing"

	"zemmai-dev/agenda-coords/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("CHANNEL_SECRET", "secret")
	t.Setenv("CHANNEL_ACCESS_TOKEN", "token")
	t.Setenv("VENUE_LAT", "30.213381")
	t.Setenv("VENUE_LNG", "-97.899124")
	t.Setenv("VENUE_ADDRESS", "")
	t.Setenv("DISTANCE_UNIT", "")
	t.Setenv("PORT", "")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.ChannelSecret)
	assert.Equal(t, "token", cfg.ChannelAccessToken)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, model.Imperial, cfg.Unit)
	assert.Equal(t, "30.213381", cfg.VenueLat)
	assert.Equal(t, "-97.899124", cfg.VenueLng)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DISTANCE_UNIT", "metric")
	t.Setenv("PORT", "8080")
	t.Setenv("VENUE_ADDRESS", "Convention Center")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, model.Metric, cfg.Unit)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "Convention Center", cfg.VenueAddress)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		key   string
		value string
	}{
		{"CHANNEL_SECRET", ""},
		{"CHANNEL_ACCESS_TOKEN", ""},
		{"VENUE_LAT", ""},
		{"VENUE_LNG", " "},
		{"DISTANCE_UNIT", "parsecs"},
	}

	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestVenue(t *testing.T) {
	setRequired(t)
	t.Setenv("VENUE_ADDRESS", "Convention Center")

	cfg, err := Load()
	require.NoError(t, err)

	venue, err := cfg.Venue()
	require.NoError(t, err)
	assert.Equal(t, "<Coordinate 30.21338 -97.89912 (Convention Center)>", venue.String())
	assert.False(t, venue.Valid)
}

func TestVenue_Invalid(t *testing.T) {
	cfg := &Config{VenueLat: "north", VenueLng: "1"}

	_, err := cfg.Venue()
	assert.ErrorIs(t, err, model.ErrInvalidCoordinateValue)
}
