package proj

import (
	"math"

	"github.com/wroge/wgs84"
)

// mercatorLat is the latitude where EPSG:3857 becomes square.
const mercatorLat = 85.05112877980659

var (
	toMercator   = wgs84.LonLat().To(wgs84.WebMercator())
	fromMercator = wgs84.WebMercator().To(wgs84.LonLat())
)

// webMercator is EPSG:3857 on the WGS84 sphere.
type webMercator struct{}

func (webMercator) EPSG() int { return WebMercator }

func (webMercator) FromWGS84(lon, lat float64) (x, y float64) {
	lat = math.Max(-mercatorLat, math.Min(lat, mercatorLat))
	x, y, _ = toMercator(lon, lat, 0)

	return x, y
}

func (webMercator) ToWGS84(x, y float64) (lon, lat float64) {
	lon, lat, _ = fromMercator(x, y, 0)

	return lon, lat
}
