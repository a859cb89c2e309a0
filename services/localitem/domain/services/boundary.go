// Package services contains stateless domain services for the localitem
// bounded context. Domain services enforce business rules that operate
// purely on domain types and have zero external dependencies beyond stdlib
// and the domain layer.
package services

import (
	"fmt"
	"math"

	"github.com/ghuser/locallister/services/localitem/domain"
	"github.com/ghuser/locallister/services/localitem/domain/models"
)

// edgeEpsilon is the tolerance for deciding a point sits exactly on a
// polygon edge or vertex. City rings span fractions of a degree, so a
// nano-degree tolerance is far below map-pixel resolution.
const edgeEpsilon = 1e-9

// CityBoundary is the fixed closed ring of the permitted area (Kutaisi).
// Vertices are ordered; the ring is implicitly closed from the last vertex
// back to the first. New items may only be placed inside it.
var CityBoundary = []models.Coordinates{
	{Lat: 42.3180, Lng: 42.5660},
	{Lat: 42.3310, Lng: 42.6580},
	{Lat: 42.3120, Lng: 42.7560},
	{Lat: 42.2520, Lng: 42.7900},
	{Lat: 42.1920, Lng: 42.7420},
	{Lat: 42.1710, Lng: 42.6440},
	{Lat: 42.2010, Lng: 42.5620},
}

// PointInPolygon reports whether p lies inside the closed ring using the
// even-odd (ray casting) rule: a horizontal ray from p crosses the ring's
// edges an odd number of times exactly when p is inside. The ring may be
// concave but must not self-intersect.
//
// A point exactly on an edge or vertex counts as inside, so placements at a
// drawn boundary are not rejected at the pixel level. Rings with fewer than
// 3 vertices yield ErrInvalidPolygon — never a permissive true.
func PointInPolygon(p models.Coordinates, ring []models.Coordinates) (bool, error) {
	if len(ring) < 3 {
		return false, fmt.Errorf("%w: need at least 3 vertices, got %d", domain.ErrInvalidPolygon, len(ring))
	}

	inside := false
	for i, j := 0, len(ring)-1; i < len(ring); j, i = i, i+1 {
		a, b := ring[j], ring[i]

		if onSegment(p, a, b) {
			return true, nil
		}

		// Edge straddles the ray's longitude; toggle when the crossing
		// lies on the +lat side of the point.
		if (a.Lng > p.Lng) != (b.Lng > p.Lng) {
			t := (p.Lng - a.Lng) / (b.Lng - a.Lng)
			if p.Lat < a.Lat+t*(b.Lat-a.Lat) {
				inside = !inside
			}
		}
	}
	return inside, nil
}

// InsideCity reports whether p lies within the fixed city boundary.
func InsideCity(p models.Coordinates) (bool, error) {
	return PointInPolygon(p, CityBoundary)
}

// onSegment reports whether p lies on the segment a-b within edgeEpsilon.
func onSegment(p, a, b models.Coordinates) bool {
	cross := (b.Lat-a.Lat)*(p.Lng-a.Lng) - (b.Lng-a.Lng)*(p.Lat-a.Lat)
	if math.Abs(cross) > edgeEpsilon {
		return false
	}
	return p.Lat >= math.Min(a.Lat, b.Lat)-edgeEpsilon &&
		p.Lat <= math.Max(a.Lat, b.Lat)+edgeEpsilon &&
		p.Lng >= math.Min(a.Lng, b.Lng)-edgeEpsilon &&
		p.Lng <= math.Max(a.Lng, b.Lng)+edgeEpsilon
}
