// Package geo provides the typed geometry used by the storage layer.
//
// Records store geometry as opaque JSON text ([lng, lat] arrays and arrays
// of such pairs); callers pass that text through verbatim. Decoding happens
// only here, at the storage boundary, when a backend needs to filter or
// measure.
package geo

import (
	"encoding/json"
	"fmt"
	"math"
)

// EarthRadiusMeters is the mean Earth radius used for distance calculations.
const EarthRadiusMeters = 6371000

// Point is a single WGS84 coordinate. The wire form is a two-element
// JSON array in GeoJSON order: [longitude, latitude].
type Point struct {
	Lng float64
	Lat float64
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.Lng, p.Lat})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var coords []float64
	if err := json.Unmarshal(data, &coords); err != nil {
		return err
	}
	if len(coords) < 2 {
		return fmt.Errorf("point: expected [lng, lat], got %d elements", len(coords))
	}
	p.Lng, p.Lat = coords[0], coords[1]
	return nil
}

// Polygon is an open or closed ring of points.
type Polygon []Point

// BoundingBox is a [southwest, northeast] pair.
type BoundingBox [2]Point

// DecodePoint parses serialized point text. An empty string is not a
// valid point.
func DecodePoint(s string) (Point, error) {
	var p Point
	if s == "" {
		return p, fmt.Errorf("point: empty input")
	}
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		return Point{}, err
	}
	return p, nil
}

// EncodePoint serializes a point back to its wire form.
func EncodePoint(p Point) string {
	b, _ := json.Marshal(p)
	return string(b)
}

// DecodePolygon parses serialized polygon text.
func DecodePolygon(s string) (Polygon, error) {
	var poly Polygon
	if err := json.Unmarshal([]byte(s), &poly); err != nil {
		return nil, err
	}
	return poly, nil
}

// EncodePolygon serializes a polygon back to its wire form.
func EncodePolygon(poly Polygon) string {
	b, _ := json.Marshal(poly)
	return string(b)
}

// Distance returns the great-circle distance between two points in meters,
// computed with the haversine formula.
func Distance(a, b Point) float64 {
	phi1 := a.Lat * math.Pi / 180
	phi2 := b.Lat * math.Pi / 180
	dPhi := (b.Lat - a.Lat) * math.Pi / 180
	dLambda := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}
