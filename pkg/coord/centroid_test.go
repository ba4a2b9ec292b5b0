package coord

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCentroid(t *testing.T) {
	data := []struct {
		name   string
		points []orb.Point
		res    orb.Point
	}{
		{"square", []orb.Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}, orb.Point{2, 2}},
		{"closed square", []orb.Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}, orb.Point{2, 2}},
		{"clockwise", []orb.Point{{0, 0}, {0, 4}, {4, 4}, {4, 0}}, orb.Point{2, 2}},
		{"triangle", []orb.Point{{0, 0}, {6, 0}, {0, 6}}, orb.Point{2, 2}},
		{"swiss", []orb.Point{{2600000, 1200000}, {2600100, 1200000}, {2600100, 1200100}, {2600000, 1200100}}, orb.Point{2600050, 1200050}},
	}

	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			res, err := Centroid(d.points...)
			require.NoError(t, err)
			assert.InDelta(t, d.res[0], res[0], 1e-6)
			assert.InDelta(t, d.res[1], res[1], 1e-6)
		})
	}
}

func TestCentroidErrors(t *testing.T) {
	_, err := Centroid()
	assert.ErrorIs(t, err, ErrNotEnoughPoints)

	_, err = Centroid(orb.Point{1, 1})
	assert.ErrorIs(t, err, ErrNotEnoughPoints)

	_, err = Centroid(orb.Point{1, 1}, orb.Point{2, 2})
	assert.ErrorIs(t, err, ErrDegenerateGeometry)

	_, err = Centroid(orb.Point{0, 0}, orb.Point{1, 1}, orb.Point{2, 2})
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestCentroidKeepsInput(t *testing.T) {
	points := []orb.Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}

	_, err := Centroid(points...)
	require.NoError(t, err)
	assert.Len(t, points, 4)
	assert.Equal(t, orb.Point{0, 4}, points[3])
}
