package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"zemmai-dev/agenda-coords/domain/model"
)

// Config holds the bot settings, read from the environment.
type Config struct {
	ChannelSecret      string
	ChannelAccessToken string
	Port               string

	// Kept as strings so they reach the quantizer without a float round trip.
	VenueLat     string
	VenueLng     string
	VenueAddress string
	Unit         model.Unit
}

func Load() (*Config, error) {
	unit, err := model.ParseUnit(os.Getenv("DISTANCE_UNIT"))
	if err != nil {
		return nil, fmt.Errorf("invalid DISTANCE_UNIT: %w", err)
	}

	cfg := &Config{
		ChannelSecret:      os.Getenv("CHANNEL_SECRET"),
		ChannelAccessToken: os.Getenv("CHANNEL_ACCESS_TOKEN"),
		Port:               envOrDefault("PORT", "9000"),
		VenueLat:           strings.TrimSpace(os.Getenv("VENUE_LAT")),
		VenueLng:           strings.TrimSpace(os.Getenv("VENUE_LNG")),
		VenueAddress:       os.Getenv("VENUE_ADDRESS"),
		Unit:               unit,
	}

	if cfg.ChannelSecret == "" {
		return nil, errors.New("CHANNEL_SECRET is required")
	}
	if cfg.ChannelAccessToken == "" {
		return nil, errors.New("CHANNEL_ACCESS_TOKEN is required")
	}
	if cfg.VenueLat == "" || cfg.VenueLng == "" {
		return nil, errors.New("VENUE_LAT and VENUE_LNG are required")
	}

	return cfg, nil
}

// Venue builds the agenda venue coordinate from the configured values.
func (c *Config) Venue() (*model.Coordinate, error) {
	f := &model.Fields{Lat: c.VenueLat, Lng: c.VenueLng}
	if c.VenueAddress != "" {
		address := c.VenueAddress
		f.AddressString = &address
	}

	venue, err := model.New(nil, f)
	if err != nil {
		return nil, fmt.Errorf("invalid venue: %w", err)
	}

	return venue, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
