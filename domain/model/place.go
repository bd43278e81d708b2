package model

import (
	"github.com/line/line-bot-sdk-go/v7/linebot"
	"googlemaps.github.io/maps"
)

// FromPlace builds an unsaved coordinate from a Places search result.
func FromPlace(result maps.PlacesSearchResult, agendaItemID any) (*Coordinate, error) {
	address := result.FormattedAddress
	return New(nil, &Fields{
		Lat:           result.Geometry.Location.Lat,
		Lng:           result.Geometry.Location.Lng,
		AddressString: &address,
		AgendaItemID:  agendaItemID,
	})
}

// FromLocationMessage builds an unsaved coordinate from a location the user
// shared in chat. An empty Address is left unset.
func FromLocationMessage(msg *linebot.LocationMessage, agendaItemID any) (*Coordinate, error) {
	var address *string
	if msg.Address != "" {
		address = &msg.Address
	}
	return New(nil, &Fields{
		Lat:           msg.Latitude,
		Lng:           msg.Longitude,
		AddressString: address,
		AgendaItemID:  agendaItemID,
	})
}

// LatLng converts to the Maps client's point type.
func (c *Coordinate) LatLng() (maps.LatLng, bool) {
	loc, ok := c.Location()
	if !ok {
		return maps.LatLng{}, false
	}
	return maps.LatLng{Lat: loc.Latitude, Lng: loc.Longitude}, true
}
