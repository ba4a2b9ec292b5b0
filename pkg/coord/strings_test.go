package coord

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdudkov/gocoord/pkg/proj"
)

type testData struct {
	s    string
	x, y float64
}

func TestStringConvert(t *testing.T) {
	data := []testData{
		{"47.5 7.5", 7.5, 47.5},
		{"47.5, 7.5", 7.5, 47.5},
		{"47.5,7.5", 7.5, 47.5},
		{"47.5/7.5", 7.5, 47.5},
		{"47.5\t7.5", 7.5, 47.5},
		{"  47.5   7.5  ", 7.5, 47.5},
		{"-33.9, 18.4", 18.4, -33.9},
		{"120.5 45.2", 120.5, 45.2},
		{"47.5° 7.5°", 7.5, 47.5},
		{"47.5°N 7.5°E", 7.5, 47.5},
		{"7.5°E 47.5°N", 7.5, 47.5},
		{"47.5°S, 7.5°W", -7.5, -47.5},
		{"47°30' 7°30'", 7.5, 47.5},
		{"47 30 7 30", 7.5, 47.5},
		{"47°30,0' 7°30,0'", 7.5, 47.5},
		{"47°30'N 7°30'E", 7.5, 47.5},
		{`47°5'41.61" 8°4'6.32"`, 8.06842, 47.09489},
		{"47°5′41.61″ 8°4′6.32″", 8.06842, 47.09489},
		{"47º5'41.61'' 8º4'6.32''", 8.06842, 47.09489},
		{"47 5 41.61 8 4 6.32", 8.06842, 47.09489},
		{`47°5'41.61"N, 8°4'6.32"E`, 8.06842, 47.09489},
		{`8°4'6.32"E 47°5'41.61"N`, 8.06842, 47.09489},
		{`47°5'41.61"S 8°4'6.32"W`, -8.06842, -47.09489},
		{"47° 05′ 41.61″ N 8° 04′ 06.32″ E", 8.06842, 47.09489},
		{"32T 398757 5223913", 7.66428, 47.16093},
		{"398'757 5'223'913 (32T)", 7.66428, 47.16093},
		{"32TLT9875723913", 7.66429, 47.16093},
		{"32TLT 98757 23913", 7.66429, 47.16093},
		{"32tlt 98757 23913", 7.66429, 47.16093},
		{"2600000 1200000", 7.43864, 46.95108},
		{"1200000 2600000", 7.43864, 46.95108},
	}

	for _, d := range data {
		t.Run(d.s, func(t *testing.T) {
			p, ok := FromString(d.s, proj.WGS84, 5)
			require.True(t, ok)
			assert.InDelta(t, d.x, p[0], 1e-9)
			assert.InDelta(t, d.y, p[1], 1e-9)
		})
	}
}

func TestStringNoCoordinate(t *testing.T) {
	for _, s := range []string{
		"",
		"   ",
		"hello",
		"47.5",
		"1000 1000",
		"91 91",
		"500 91",
		"3000000 3000000",
		"47.5 7.5 foo",
		"at 47.5 7.5",
		"47°75' 7°30'",
		`47°5'61" 8°4'6.32"`,
		"47.5°N 7.5°N",
		"32TLT",
		"32TLT987",
		"32TLT98757 2391",
		"32T 50000 5223913",
		"61T 398757 5223913",
		"32C 398757 5223913",
		"32X 398757 5223913",
		"32M 398757 5223913",
		"398757 5223913 (32N)",
	} {
		t.Run(s, func(t *testing.T) {
			_, ok := Parse(s)
			assert.False(t, ok)
		})
	}
}

func TestRecognizeSwiss(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		m, ok := Recognize("2600000 1200000", proj.LV95, 1)
		require.True(t, ok)
		assert.Equal(t, orb.Point{2600000, 1200000}, m.Point)
		assert.Equal(t, proj.LV95, m.EPSG)
		assert.Equal(t, proj.LV95, m.SourceEPSG)
		assert.Equal(t, "LV95", m.SourceID)
		assert.Equal(t, "decimal", m.Pattern)
	})

	t.Run("axis order", func(t *testing.T) {
		p1, ok := Parse("2600000 1200000")
		require.True(t, ok)

		p2, ok := Parse("1200000 2600000")
		require.True(t, ok)

		assert.Equal(t, p1, p2)
	})

	t.Run("thousands separators", func(t *testing.T) {
		p1, ok := Parse("2600000 1200000")
		require.True(t, ok)

		for _, s := range []string{"2'600'000 1'200'000", "2 600 000 1 200 000", "2'600'000, 1'200'000"} {
			p2, ok := Parse(s)
			require.True(t, ok, s)
			assert.Equal(t, p1, p2, s)
		}
	})

	t.Run("web mercator", func(t *testing.T) {
		p, ok := Parse("2600000 1200000")
		require.True(t, ok)
		assert.InDelta(t, 828065.3, p[0], 1e-6)
		assert.InDelta(t, 5934092.9, p[1], 1e-6)
	})

	t.Run("lv03", func(t *testing.T) {
		for _, s := range []string{"600000 200000", "200'000 600'000"} {
			m, ok := Recognize(s, proj.LV03, 1)
			require.True(t, ok, s)
			assert.Equal(t, orb.Point{600000, 200000}, m.Point)
			assert.Equal(t, "LV03", m.SourceID)
		}
	})

	t.Run("lv03 to lv95", func(t *testing.T) {
		p, ok := FromString("600000 200000", proj.LV95, 0)
		require.True(t, ok)
		assert.InDelta(t, 2600000, p[0], 1)
		assert.InDelta(t, 1200000, p[1], 1)
	})
}

func TestRecognizeSource(t *testing.T) {
	data := []struct {
		s       string
		id      string
		pattern string
	}{
		{"47.5 7.5", "WGS84", "decimal"},
		{"2'600'000 1'200'000", "LV95", "metric"},
		{"47.5°N 7.5°E", "WGS84", "degrees"},
		{"47°30' 7°30'", "WGS84", "degrees-minutes"},
		{`47°5'41.61" 8°4'6.32"`, "WGS84", "degrees-minutes-seconds"},
		{`47°5'41.61"N 8°4'6.32"E`, "WGS84", "degrees-minutes-seconds-cardinal"},
		{"32T 398757 5223913", "UTM", "utm"},
		{"32TLT9875723913", "MGRS", "mgrs"},
	}

	for _, d := range data {
		t.Run(d.s, func(t *testing.T) {
			m, ok := Recognize(d.s, proj.WGS84, 5)
			require.True(t, ok)
			assert.Equal(t, d.id, m.SourceID)
			assert.Equal(t, d.pattern, m.Pattern)
			assert.Equal(t, proj.WGS84, m.EPSG)
		})
	}
}

func TestRecognizeDecimals(t *testing.T) {
	p, ok := FromString(`47°5'41.61" 8°4'6.32"`, proj.WGS84, 4)
	require.True(t, ok)
	assert.InDelta(t, 8.0684, p[0], 1e-9)
	assert.InDelta(t, 47.0949, p[1], 1e-9)

	p, ok = FromString("2600000 1200000", proj.WebMercator, -2)
	require.True(t, ok)
	assert.InDelta(t, 828100, p[0], 1e-6)
	assert.InDelta(t, 5934100, p[1], 1e-6)
}

func TestRecognizeUnknownTarget(t *testing.T) {
	_, ok := FromString("47.5 7.5", 1234, 1)
	assert.False(t, ok)
}

func TestFormatParseRoundTrip(t *testing.T) {
	wgs := orb.Point{8 + 4.0/60 + 6.32/3600, 47 + 5.0/60 + 41.61/3600}

	t.Run("LV95", func(t *testing.T) {
		p := orb.Point{2600000.1, 1200000.2}
		res, ok := FromString(Format(p, LV95, 1), proj.LV95, 1)
		require.True(t, ok)
		assert.InDelta(t, p[0], res[0], 1e-6)
		assert.InDelta(t, p[1], res[1], 1e-6)
	})

	t.Run("LV03", func(t *testing.T) {
		p := orb.Point{600000.1, 200000.2}
		res, ok := FromString(Format(p, LV03, 1), proj.LV03, 1)
		require.True(t, ok)
		assert.InDelta(t, p[0], res[0], 1e-6)
		assert.InDelta(t, p[1], res[1], 1e-6)
	})

	t.Run("WGS84", func(t *testing.T) {
		text := Format(wgs, WGS84, 2)
		hdms, dec, found := strings.Cut(text, " (")
		require.True(t, found)

		for _, s := range []string{hdms, strings.TrimSuffix(dec, ")")} {
			res, ok := FromString(s, proj.WGS84, 5)
			require.True(t, ok, s)
			assert.InDelta(t, wgs[0], res[0], 1e-5, s)
			assert.InDelta(t, wgs[1], res[1], 1e-5, s)
		}
	})

	t.Run("UTM", func(t *testing.T) {
		res, ok := FromString(Format(wgs, UTM, 0), proj.WGS84, 6)
		require.True(t, ok)
		assert.InDelta(t, wgs[0], res[0], 2e-5)
		assert.InDelta(t, wgs[1], res[1], 2e-5)
	})

	t.Run("MGRS", func(t *testing.T) {
		res, ok := FromString(Format(wgs, MGRS, 5), proj.WGS84, 6)
		require.True(t, ok)
		assert.InDelta(t, wgs[0], res[0], 2e-5)
		assert.InDelta(t, wgs[1], res[1], 2e-5)
	})
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, `47°5'41.61" 8°4'6.32"`, normalize("\t47º5′41.61″ 8˚4’6.32”  "))
	assert.Equal(t, "47.5 7.5", normalize("４７.５ ７.５"))
}
