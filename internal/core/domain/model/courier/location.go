package courier

import (
	"fulfillment/internal/pkg/errs"
)

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// Location is the courier's last reported position as geographic
// coordinates. The zero value (0, 0) is a valid "not yet reported" position.
type Location struct {
	lat float64
	lng float64
}

// NewLocation creates a validated geographic location.
// Latitude must lie in [-90, 90] and longitude in [-180, 180].
func NewLocation(lat, lng float64) (Location, error) {
	if lat < minLatitude || lat > maxLatitude {
		return Location{}, errs.NewValueIsOutOfRangeError("latitude", lat, minLatitude, maxLatitude)
	}
	if lng < minLongitude || lng > maxLongitude {
		return Location{}, errs.NewValueIsOutOfRangeError("longitude", lng, minLongitude, maxLongitude)
	}

	return Location{lat: lat, lng: lng}, nil
}

// Lat returns the latitude.
func (l Location) Lat() float64 {
	return l.lat
}

// Lng returns the longitude.
func (l Location) Lng() float64 {
	return l.lng
}

// IsEqual compares two locations for exact equality.
func (l Location) IsEqual(other Location) bool {
	return l.lat == other.lat && l.lng == other.lng
}
