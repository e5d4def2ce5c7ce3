// Package geo holds the coordinate type shared by listings and searches,
// together with the great-circle math used by proximity queries.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0

	// earthRadiusKm matches the radius orb uses for its haversine distance,
	// so bounding boxes and exact distances agree.
	earthRadiusKm = orb.EarthRadius / 1000
)

// Coordinates is a resolved WGS84 position.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point converts to an orb point (longitude first).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Valid reports whether both components are finite and inside their ranges.
func (c Coordinates) Valid() bool {
	return ValidLatitude(c.Latitude) && ValidLongitude(c.Longitude)
}

func ValidLatitude(lat float64) bool {
	return !math.IsNaN(lat) && lat >= MinLatitude && lat <= MaxLatitude
}

func ValidLongitude(lng float64) bool {
	return !math.IsNaN(lng) && lng >= MinLongitude && lng <= MaxLongitude
}

// DistanceKm returns the haversine great-circle distance in kilometers.
func DistanceKm(a, b Coordinates) float64 {
	return orbgeo.DistanceHaversine(a.Point(), b.Point()) / 1000
}

// BoundingBoxes returns the latitude/longitude rectangles that contain every
// point within radiusKm of center. A circle crossing the antimeridian yields
// two rectangles; a circle reaching a pole spans every longitude.
//
// Every point at distance <= radiusKm lies inside one of the returned bounds,
// the converse does not hold and callers refine with DistanceKm.
func BoundingBoxes(center Coordinates, radiusKm float64) []orb.Bound {
	angular := radiusKm / earthRadiusKm
	if angular >= math.Pi {
		return []orb.Bound{worldBound()}
	}

	latRad := deg2rad(center.Latitude)
	minLat := latRad - angular
	maxLat := latRad + angular

	if minLat <= -math.Pi/2 || maxLat >= math.Pi/2 {
		return []orb.Bound{{
			Min: orb.Point{MinLongitude, math.Max(rad2deg(minLat), MinLatitude)},
			Max: orb.Point{MaxLongitude, math.Min(rad2deg(maxLat), MaxLatitude)},
		}}
	}

	deltaLng := rad2deg(math.Asin(math.Sin(angular) / math.Cos(latRad)))
	minLng := center.Longitude - deltaLng
	maxLng := center.Longitude + deltaLng
	south := rad2deg(minLat)
	north := rad2deg(maxLat)

	switch {
	case minLng < MinLongitude:
		return []orb.Bound{
			{Min: orb.Point{minLng + 360, south}, Max: orb.Point{MaxLongitude, north}},
			{Min: orb.Point{MinLongitude, south}, Max: orb.Point{maxLng, north}},
		}
	case maxLng > MaxLongitude:
		return []orb.Bound{
			{Min: orb.Point{minLng, south}, Max: orb.Point{MaxLongitude, north}},
			{Min: orb.Point{MinLongitude, south}, Max: orb.Point{maxLng - 360, north}},
		}
	default:
		return []orb.Bound{{Min: orb.Point{minLng, south}, Max: orb.Point{maxLng, north}}}
	}
}

// InAnyBound reports whether c falls inside one of bounds (edges inclusive).
func InAnyBound(bounds []orb.Bound, c Coordinates) bool {
	p := c.Point()
	for _, b := range bounds {
		if b.Contains(p) {
			return true
		}
	}

	return false
}

func worldBound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{MinLongitude, MinLatitude},
		Max: orb.Point{MaxLongitude, MaxLatitude},
	}
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}

func rad2deg(r float64) float64 {
	return r * 180 / math.Pi
}
