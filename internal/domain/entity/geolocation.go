package entity

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Geolocation is a WGS84 coordinate pair.
type Geolocation struct {
	Latitude  float64
	Longitude float64
}

// Point converts the coordinate to an orb point (longitude first).
func (g Geolocation) Point() orb.Point {
	return orb.Point{g.Longitude, g.Latitude}
}

// GeoRadius selects locations within RadiusKm kilometers of Center.
type GeoRadius struct {
	Center   Geolocation
	RadiusKm float64
}

// Bound returns the bounding box enclosing the radius, usable as a coarse pre-filter.
func (r GeoRadius) Bound() orb.Bound {
	return geo.NewBoundAroundPoint(r.Center.Point(), r.RadiusKm*1000)
}

// Contains reports whether the location lies within the radius (haversine distance).
func (r GeoRadius) Contains(g Geolocation) bool {
	return geo.DistanceHaversine(r.Center.Point(), g.Point()) <= r.RadiusKm*1000
}

// LongitudeRange is an inclusive interval of longitudes in degrees.
type LongitudeRange struct {
	Min float64
	Max float64
}

// SearchBox is a coarse pre-filter for a radius: a latitude band and the longitude ranges it spans.
// An empty Longitudes slice places no constraint on longitude.
type SearchBox struct {
	MinLat     float64
	MaxLat     float64
	Longitudes []LongitudeRange
}

// SearchBox splits the bound at the antimeridian, where the western edge lies east of the eastern one.
func (r GeoRadius) SearchBox() SearchBox {
	bound := r.Bound()
	box := SearchBox{MinLat: bound.Min.Lat(), MaxLat: bound.Max.Lat()}

	minLon, maxLon := bound.Min.Lon(), bound.Max.Lon()
	switch {
	case math.IsNaN(minLon) || math.IsNaN(maxLon):
	case minLon <= -180 && maxLon >= 180:
	case minLon > maxLon:
		box.Longitudes = []LongitudeRange{{Min: minLon, Max: 180}, {Min: -180, Max: maxLon}}
	default:
		box.Longitudes = []LongitudeRange{{Min: minLon, Max: maxLon}}
	}

	return box
}
