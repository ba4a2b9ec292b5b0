package coord

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/kdudkov/gocoord/pkg/proj"
)

// Reproject converts p between EPSG codes and rounds both axes.
func Reproject(p orb.Point, from, to int, decimals int) (orb.Point, error) {
	res, err := proj.Project(from, to, p)
	if err != nil {
		return p, err
	}

	return orb.Point{Round(res[0], decimals), Round(res[1], decimals)}, nil
}

// Round rounds half away from zero to the given number of decimals.
func Round(v float64, decimals int) float64 {
	pow := math.Pow10(decimals)
	if pow == 0 {
		return 0
	}

	// past float64 precision there is nothing left to round
	if math.IsInf(pow, 0) || math.IsInf(v*pow, 0) {
		return v
	}

	return math.Round(v*pow) / pow
}
