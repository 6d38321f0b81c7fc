package kernel

import (
	"errors"
	"fmt"
	"math"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

const (
	MinLongitude = -180.0
	MaxLongitude = 180.0
	MinLatitude  = -90.0
	MaxLatitude  = 90.0

	// EarthRadiusKm is the mean Earth radius used by every distance computation,
	// in Go and in the proximity SQL of the postgres adapter.
	EarthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use a zero GeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint")

// GeoPoint is an immutable (longitude, latitude) pair in degrees.
// Coordinates are kept in the GeoJSON order, longitude first.
//
// Example:
//
//	p, err := kernel.NewGeoPoint(30.5234, 50.4501)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(p) // GeoPoint(30.523400,50.450100)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lon   float64
	lat   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint validates both coordinates. Longitude must be within [-180, 180]
// and latitude within [-90, 90]; NaN is rejected by the same range checks.
func NewGeoPoint(lon, lat float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLon(lon), p.setLat(lat)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate returns ErrGeoPointIsNotConstructed for a zero GeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lon returns the longitude in degrees.
func (p GeoPoint) Lon() float64 {
	return p.lon
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// String renders the point for logs.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.lon, p.lat)
}

// DistanceKm returns the great-circle distance between two points using the
// haversine formula with EarthRadiusKm.
//
// The result is symmetric and zero for identical points. Both points must be
// properly constructed.
//
// Example:
//
//	kyiv, _ := kernel.NewGeoPoint(30.5234, 50.4501)
//	lviv, _ := kernel.NewGeoPoint(24.0297, 49.8397)
//	d, _ := kyiv.DistanceKm(lviv) // d ≈ 467.5
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}
	return Haversine(p.lon, p.lat, other.lon, other.lat), nil
}

// Haversine computes the distance in kilometres between two raw coordinate pairs.
func Haversine(lon1, lat1, lon2, lat2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	// rounding can push a slightly above 1 for antipodal points
	a = math.Min(1, math.Max(0, a))

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func (p *GeoPoint) setLon(lon float64) error {
	if !(lon >= MinLongitude && lon <= MaxLongitude) {
		return errs.NewValueIsOutOfRangeError("longitude", lon, MinLongitude, MaxLongitude)
	}
	p.lon = lon
	return nil
}

func (p *GeoPoint) setLat(lat float64) error {
	if !(lat >= MinLatitude && lat <= MaxLatitude) {
		return errs.NewValueIsOutOfRangeError("latitude", lat, MinLatitude, MaxLatitude)
	}
	p.lat = lat
	return nil
}
