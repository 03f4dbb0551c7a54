package domain

import (
	"fmt"
	"math"
)

// AreaKind identifies the layer a demand area belongs to.
type AreaKind string

const (
	AreaSector   AreaKind = "sector"
	AreaDistrict AreaKind = "district"
	// AreaCombined is the district layer used to build combined district groups.
	AreaCombined AreaKind = "combined"
)

// ParseAreaKind validates a layer name.
func ParseAreaKind(s string) (AreaKind, error) {
	switch k := AreaKind(s); k {
	case AreaSector, AreaDistrict, AreaCombined:
		return k, nil
	}
	return "", fmt.Errorf("unknown area kind %q", s)
}

// Ring is a closed polygon ring given by its vertices in order.
// The closing vertex may or may not repeat the first one.
type Ring []Coordinates

// SignedArea returns the shoelace area in square degrees.
// Positive for counterclockwise winding, negative for clockwise.
func (r Ring) SignedArea() float64 {
	n := len(r)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += r[i].Lon*r[j].Lat - r[j].Lon*r[i].Lat
	}
	return area / 2
}

// Centroid returns the area centroid of the ring, falling back to the vertex
// average for degenerate rings.
func (r Ring) Centroid() Coordinates {
	n := len(r)
	if n == 0 {
		return Coordinates{}
	}
	a := r.SignedArea()
	if n < 3 || math.Abs(a) < 1e-15 {
		return r.vertexAverage()
	}
	cx, cy := 0.0, 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := r[i].Lon*r[j].Lat - r[j].Lon*r[i].Lat
		cx += (r[i].Lon + r[j].Lon) * cross
		cy += (r[i].Lat + r[j].Lat) * cross
	}
	f := 1.0 / (6.0 * a)
	return Coordinates{Lon: cx * f, Lat: cy * f}
}

func (r Ring) vertexAverage() Coordinates {
	var sum Coordinates
	for _, v := range r {
		sum.Lon += v.Lon
		sum.Lat += v.Lat
	}
	return Coordinates{Lon: sum.Lon / float64(len(r)), Lat: sum.Lat / float64(len(r))}
}

// Geometry is a multipolygon made of outer rings.
type Geometry []Ring

// Centroid returns the area-weighted centroid of all rings.
func (g Geometry) Centroid() Coordinates {
	return CombinedCentroid([]Geometry{g})
}

// CombinedCentroid returns the area-weighted centroid of the union of the
// given geometries. Parts are assumed not to overlap, which holds for
// adjacent administrative boundaries. When every part is degenerate the
// plain average of part centroids is used.
func CombinedCentroid(geoms []Geometry) Coordinates {
	var (
		wx, wy, total float64
		sum           Coordinates
		parts         int
	)
	for _, g := range geoms {
		for _, r := range g {
			if len(r) == 0 {
				continue
			}
			c := r.Centroid()
			a := math.Abs(r.SignedArea())
			wx += c.Lon * a
			wy += c.Lat * a
			total += a
			sum.Lon += c.Lon
			sum.Lat += c.Lat
			parts++
		}
	}
	if parts == 0 {
		return Coordinates{}
	}
	if total < 1e-15 {
		return Coordinates{Lon: sum.Lon / float64(parts), Lat: sum.Lat / float64(parts)}
	}
	return Coordinates{Lon: wx / total, Lat: wy / total}
}

// DemandArea is a sector, district or combined-layer district with its daily
// water demand. Allocation only uses its centroid.
type DemandArea struct {
	Kind           AreaKind
	Name           string
	DemandM3PerDay float64
	Geometry       Geometry
}

// Centroid is the reference point used for distance calculations.
func (a DemandArea) Centroid() Coordinates { return a.Geometry.Centroid() }
