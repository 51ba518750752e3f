package service

import (
	"context"

	"github.com/paulmach/orb"
)

// GeoAddress holds the address components returned by reverse geocoding.
// Any component may be empty.
type GeoAddress struct {
	Name       string
	Street     string
	City       string
	PostalCode string
	Country    string
}

// Geocoder resolves coordinates into a postal address.
type Geocoder interface {
	// ReverseGeocode returns the best address match for point (longitude, latitude).
	ReverseGeocode(ctx context.Context, point orb.Point) (*GeoAddress, error)
}
