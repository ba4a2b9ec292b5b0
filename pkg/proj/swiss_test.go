package proj

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwissBern(t *testing.T) {
	lon, lat := SwissLV95.ToWGS84(2_600_000, 1_200_000)
	assert.InDelta(t, 7.438637, lon, 1e-6)
	assert.InDelta(t, 46.951081, lat, 1e-6)

	lon, lat = SwissLV03.ToWGS84(600_000, 200_000)
	assert.InDelta(t, 7.438637, lon, 1e-6)
	assert.InDelta(t, 46.951081, lat, 1e-6)
}

func TestSwissFromWGS84(t *testing.T) {
	// 46°02'38.87" 8°43'49.79"
	lat := 46 + 2.0/60 + 38.87/3600
	lon := 8 + 43.0/60 + 49.79/3600

	e, n := SwissLV95.FromWGS84(lon, lat)
	assert.InDelta(t, 2_699_999.76, e, 1)
	assert.InDelta(t, 1_099_999.97, n, 1)

	e, n = SwissLV03.FromWGS84(lon, lat)
	assert.InDelta(t, 699_999.76, e, 1)
	assert.InDelta(t, 99_999.97, n, 1)
}

func TestSwissBoth(t *testing.T) {
	for _, s := range []*Swiss{SwissLV95, SwissLV03} {
		lon, lat := s.ToWGS84(s.easting+83_456.7, s.northing-12_345.6)
		e, n := s.FromWGS84(lon, lat)

		assert.InDelta(t, s.easting+83_456.7, e, 2, "EPSG:%d", s.EPSG())
		assert.InDelta(t, s.northing-12_345.6, n, 2, "EPSG:%d", s.EPSG())
	}
}
