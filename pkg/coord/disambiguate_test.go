package coord

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisambiguate(t *testing.T) {
	data := []struct {
		a, b   float64
		region string
		p      orb.Point
	}{
		{2600000, 1200000, "LV95", orb.Point{2600000, 1200000}},
		{1200000, 2600000, "LV95", orb.Point{2600000, 1200000}},
		{600000, 200000, "LV03", orb.Point{600000, 200000}},
		{200000, 600000, "LV03", orb.Point{600000, 200000}},
		{47.5, 7.5, "WGS84", orb.Point{7.5, 47.5}},
		{7.5, 47.5, "WGS84", orb.Point{47.5, 7.5}},
		{120.5, 45.2, "WGS84", orb.Point{120.5, 45.2}},
		{-33.9, 18.4, "WGS84", orb.Point{18.4, -33.9}},
	}

	for _, d := range data {
		c, ok := Disambiguate(d.a, d.b)
		require.True(t, ok, "%v %v", d.a, d.b)
		assert.Equal(t, d.region, c.Region.ID)
		assert.Equal(t, d.p, c.Point)
	}
}

func TestDisambiguateFails(t *testing.T) {
	for _, d := range [][2]float64{
		{2485071.58, 1200000},
		{2600000, 1075346.31},
		{91, 91},
		{500, 91},
		{180, 0},
		{1000, 1000},
		{3000000, 3000000},
	} {
		_, ok := Disambiguate(d[0], d[1])
		assert.False(t, ok, "%v", d)
	}
}

func TestRegions(t *testing.T) {
	r := Regions()
	require.Len(t, r, 3)
	assert.Equal(t, "LV95", r[0].ID)
	assert.Equal(t, "LV03", r[1].ID)
	assert.Equal(t, "WGS84", r[2].ID)

	assert.True(t, RegionWGS84.Contains(orb.Point{179.9, 88.9}))
	assert.False(t, RegionWGS84.Contains(orb.Point{180, 0}))
	assert.False(t, RegionWGS84.Contains(orb.Point{0, -89}))
	assert.False(t, RegionLV95.Contains(orb.Point{2828515.82, 1200000}))
	assert.True(t, RegionLV95.Contains(orb.Point{2828515.81, 1200000}))
}
