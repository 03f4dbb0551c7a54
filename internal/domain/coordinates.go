package domain

import "math"

// KmPerDegree converts a planar distance measured in degrees into kilometers.
// It is only meaningful at the latitudes covered by the source data.
const KmPerDegree = 111.0

// Immutable geographic coordinates (longitude, latitude).
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as [lon, lat] for GeoJSON compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// PlanarDegreeDistance is the euclidean distance between two points treating
// longitude and latitude as plane coordinates.
func PlanarDegreeDistance(a, b Coordinates) float64 {
	return math.Hypot(a.Lon-b.Lon, a.Lat-b.Lat)
}

// PlanarDistanceKm approximates the distance in kilometers between two points.
// It is not a geodesic calculation: the planar degree distance is scaled by
// KmPerDegree.
func PlanarDistanceKm(a, b Coordinates) float64 {
	return PlanarDegreeDistance(a, b) * KmPerDegree
}
