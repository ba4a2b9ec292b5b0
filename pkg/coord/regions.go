package coord

import (
	"github.com/paulmach/orb"

	"github.com/kdudkov/gocoord/pkg/proj"
)

// Region is a rectangular numeric range used to guess which reference system
// a raw number pair belongs to. It plays no role in projection math.
type Region struct {
	ID    string
	EPSG  int
	Bound orb.Bound
}

var (
	RegionLV95 = Region{
		ID:    "LV95",
		EPSG:  proj.LV95,
		Bound: orb.Bound{Min: orb.Point{2485071.58, 1075346.31}, Max: orb.Point{2828515.82, 1299941.79}},
	}

	RegionLV03 = Region{
		ID:    "LV03",
		EPSG:  proj.LV03,
		Bound: orb.Bound{Min: orb.Point{485071.54, 75346.36}, Max: orb.Point{828515.78, 299941.84}},
	}

	// x is longitude, y is latitude
	RegionWGS84 = Region{
		ID:    "WGS84",
		EPSG:  proj.WGS84,
		Bound: orb.Bound{Min: orb.Point{-180, -89}, Max: orb.Point{180, 89}},
	}
)

// Regions returns the catalog in disambiguation order.
func Regions() []Region {
	return []Region{RegionLV95, RegionLV03, RegionWGS84}
}

// Contains reports whether p is strictly inside the region. Points on an edge
// are outside.
func (r Region) Contains(p orb.Point) bool {
	return p[0] > r.Bound.Min[0] && p[0] < r.Bound.Max[0] &&
		p[1] > r.Bound.Min[1] && p[1] < r.Bound.Max[1]
}
