package coord

import (
	"log/slog"

	"github.com/paulmach/orb"
)

// Candidate is a raw pair resolved to a reference system, in x/y (lon/lat) order.
type Candidate struct {
	Region Region
	Point  orb.Point
}

// Disambiguate decides which catalog region the pair (a, b) belongs to.
//
// Swiss regions are tried before WGS84 and each region in both axis orders;
// the first region that accepts the pair wins. Swiss magnitudes are large
// and distinctive while degrees are the most permissive range, so changing
// this order changes the result for ambiguous input.
//
// For WGS84 the conventional "lat, lon" reading (b, a) is tried first,
// then "lon, lat" (a, b). Both steps test the swapped point that is
// returned. This differs from a plain (a, b) bounds test when the pair only
// fits the band in one order: 120.5 45.2 becomes lon 120.5, lat 45.2 here.
func Disambiguate(a, b float64) (Candidate, bool) {
	for _, r := range []Region{RegionLV95, RegionLV03} {
		if p := (orb.Point{a, b}); r.Contains(p) {
			return Candidate{Region: r, Point: p}, true
		}

		if p := (orb.Point{b, a}); r.Contains(p) {
			return Candidate{Region: r, Point: p}, true
		}
	}

	if p := (orb.Point{b, a}); RegionWGS84.Contains(p) {
		return Candidate{Region: RegionWGS84, Point: p}, true
	}

	if p := (orb.Point{a, b}); RegionWGS84.Contains(p) {
		return Candidate{Region: RegionWGS84, Point: p}, true
	}

	slog.Debug("unknown coordinate type", slog.Float64("a", a), slog.Float64("b", b))

	return Candidate{}, false
}
