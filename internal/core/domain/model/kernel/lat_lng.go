package kernel

import (
	"errors"
	"fmt"

	"levaai/internal/pkg/errs"
	"levaai/internal/pkg/guard"
)

const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

// ErrLatLngIsNotConstructed is returned when validating a zero-value LatLng.
var ErrLatLngIsNotConstructed = errs.NewValueIsRequiredError("latLng must be created via NewLatLng")

// LatLng is a map coordinate shown next to an order. Nothing in the order
// lifecycle reads it; it only has to be a real coordinate.
type LatLng struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewLatLng validates both coordinates and reports every violation at once.
func NewLatLng(lat, lng float64) (LatLng, error) {
	ll := LatLng{guard: guard.NewConstructorGuard()}

	if err := errors.Join(ll.setLat(lat), ll.setLng(lng)); err != nil {
		return LatLng{}, err
	}
	return ll, nil
}

func (l LatLng) Validate() error {
	return l.guard.Validate(ErrLatLngIsNotConstructed)
}

func (l LatLng) Lat() float64 {
	return l.lat
}

func (l LatLng) Lng() float64 {
	return l.lng
}

func (l LatLng) String() string {
	return fmt.Sprintf("LatLng(%.6f,%.6f)", l.lat, l.lng)
}

func (l *LatLng) setLat(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("lat", lat, LatitudeMin, LatitudeMax)
	}
	l.lat = lat
	return nil
}

func (l *LatLng) setLng(lng float64) error {
	if lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("lng", lng, LongitudeMin, LongitudeMax)
	}
	l.lng = lng
	return nil
}
