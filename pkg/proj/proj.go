// Package proj converts coordinates between the reference systems used by the
// coordinate search: Swiss LV95 and LV03, WGS84, Web Mercator and UTM zones.
// Every conversion goes through WGS84 longitude/latitude.
package proj

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

const (
	LV95        = 2056
	LV03        = 21781
	WGS84       = 4326
	WebMercator = 3857
)

var (
	ErrUnknownProjection = errors.New("unknown projection")
	ErrOutOfDomain       = errors.New("coordinate outside of projection domain")
)

// Projection converts between a CRS and WGS84 longitude/latitude (degrees).
type Projection interface {
	ToWGS84(x, y float64) (lon, lat float64)
	FromWGS84(lon, lat float64) (x, y float64)
	EPSG() int
}

// ForEPSG returns the projection for the given EPSG code or nil if the code
// is not supported.
func ForEPSG(epsg int) Projection {
	switch {
	case epsg == LV95:
		return SwissLV95
	case epsg == LV03:
		return SwissLV03
	case epsg == WGS84:
		return identity{}
	case epsg == WebMercator:
		return webMercator{}
	case epsg > 32600 && epsg <= 32660:
		return &UTMZone{Zone: epsg - 32600}
	case epsg > 32700 && epsg <= 32760:
		return &UTMZone{Zone: epsg - 32700, South: true}
	default:
		return nil
	}
}

// Project converts p from one EPSG code to another.
func Project(from, to int, p orb.Point) (orb.Point, error) {
	src := ForEPSG(from)
	if src == nil {
		return p, fmt.Errorf("%w: EPSG:%d", ErrUnknownProjection, from)
	}

	dst := ForEPSG(to)
	if dst == nil {
		return p, fmt.Errorf("%w: EPSG:%d", ErrUnknownProjection, to)
	}

	if !finite(p[0], p[1]) {
		return p, fmt.Errorf("%w: %v in EPSG:%d", ErrOutOfDomain, p, from)
	}

	if from == to {
		return p, nil
	}

	lon, lat := src.ToWGS84(p[0], p[1])
	if !finite(lon, lat) || math.Abs(lat) > 90 {
		return p, fmt.Errorf("%w: %v in EPSG:%d", ErrOutOfDomain, p, from)
	}

	x, y := dst.FromWGS84(lon, lat)
	if !finite(x, y) {
		return p, fmt.Errorf("%w: %v in EPSG:%d", ErrOutOfDomain, orb.Point{lon, lat}, to)
	}

	return orb.Point{x, y}, nil
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

type identity struct{}

func (identity) ToWGS84(x, y float64) (lon, lat float64)   { return x, y }
func (identity) FromWGS84(lon, lat float64) (x, y float64) { return lon, lat }
func (identity) EPSG() int                                 { return WGS84 }
