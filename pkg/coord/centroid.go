package coord

import (
	"errors"
	"math"

	"github.com/paulmach/orb"
)

var (
	ErrNotEnoughPoints    = errors.New("centroid needs at least 2 points")
	ErrDegenerateGeometry = errors.New("polygon has no area")
)

// Centroid returns the area weighted centroid of a polygon. The ring is closed
// if the last point differs from the first.
func Centroid(points ...orb.Point) (orb.Point, error) {
	if len(points) < 2 {
		return orb.Point{}, ErrNotEnoughPoints
	}

	ring := make(orb.Ring, len(points), len(points)+1)
	copy(ring, points)

	if !ring.Closed() {
		ring = append(ring, ring[0])
	}

	var twiceArea, x, y float64

	for i, j := 0, len(ring)-1; i < len(ring); j, i = i, i+1 {
		p1, p2 := ring[i], ring[j]
		f := p1[0]*p2[1] - p2[0]*p1[1]
		twiceArea += f
		x += (p1[0] + p2[0]) * f
		y += (p1[1] + p2[1]) * f
	}

	if twiceArea == 0 {
		return orb.Point{}, ErrDegenerateGeometry
	}

	f := twiceArea * 3
	res := orb.Point{x / f, y / f}

	if math.IsNaN(res[0]) || math.IsNaN(res[1]) || math.IsInf(res[0], 0) || math.IsInf(res[1], 0) {
		return orb.Point{}, ErrDegenerateGeometry
	}

	return res, nil
}
