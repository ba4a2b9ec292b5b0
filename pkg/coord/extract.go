package coord

import (
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/kdudkov/gocoord/pkg/proj"
)

// shortest MGRS reference accepted: two digit zone, band, 100 km square and
// one digit per axis (10 km)
const mgrsMinPrecision = 7

type extracted struct {
	point  orb.Point
	epsg   int
	source string
}

type extractor func(m map[string]string) (extracted, bool)

var thousands = strings.NewReplacer("'", "", " ", "")

func number(s string) (float64, bool) {
	v, err := strconv.ParseFloat(thousands.Replace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

// numericExtractor leaves the choice of the system to the region catalog.
func numericExtractor(m map[string]string) (extracted, bool) {
	a, ok := number(m["a"])
	if !ok {
		return extracted{}, false
	}

	b, ok := number(m["b"])
	if !ok {
		return extracted{}, false
	}

	c, ok := Disambiguate(a, b)
	if !ok {
		return extracted{}, false
	}

	return extracted{point: c.Point, epsg: c.Region.EPSG, source: c.Region.ID}, true
}

// sexagesimal returns deg + min/60 + sec/3600. Empty minutes or seconds are 0.
func sexagesimal(deg, mins, secs string) (float64, bool) {
	var vals [3]float64

	for i, s := range []string{deg, mins, secs} {
		if s == "" {
			if i == 0 {
				return 0, false
			}

			continue
		}

		v, ok := number(strings.Replace(s, ",", ".", 1))
		if !ok {
			return 0, false
		}

		vals[i] = v
	}

	if vals[1] >= 60 || vals[2] >= 60 {
		return 0, false
	}

	return vals[0] + vals[1]/60 + vals[2]/3600, true
}

// sexagesimalExtractor reads "lat, lon" unless cardinal letters say
// otherwise. With letters, each one sets its axis and sign; both axes
// must be given.
func sexagesimalExtractor(m map[string]string) (extracted, bool) {
	v1, ok := sexagesimal(m["d1"], m["m1"], m["s1"])
	if !ok {
		return extracted{}, false
	}

	v2, ok := sexagesimal(m["d2"], m["m2"], m["s2"])
	if !ok {
		return extracted{}, false
	}

	c1, c2 := strings.ToUpper(m["c1"]), strings.ToUpper(m["c2"])

	var lon, lat float64

	if c1 == "" && c2 == "" {
		lat, lon = v1, v2
	} else {
		var hasLat, hasLon bool

		for _, c := range []struct {
			v    float64
			card string
		}{{v1, c1}, {v2, c2}} {
			switch c.card {
			case "N":
				lat, hasLat = c.v, true
			case "S":
				lat, hasLat = -c.v, true
			case "E":
				lon, hasLon = c.v, true
			case "W":
				lon, hasLon = -c.v, true
			}
		}

		if !hasLat || !hasLon {
			return extracted{}, false
		}
	}

	p := orb.Point{lon, lat}
	if !RegionWGS84.Contains(p) {
		return extracted{}, false
	}

	return extracted{point: p, epsg: proj.WGS84, source: WGS84.ID()}, true
}

func utmExtractor(m map[string]string) (extracted, bool) {
	e, ok := number(m["e"])
	if !ok || e <= 100_000 || e >= 900_000 {
		return extracted{}, false
	}

	n, ok := number(m["n"])
	if !ok || n < 0 || n > 10_000_000 {
		return extracted{}, false
	}

	zone, err := strconv.Atoi(m["zone"])
	if err != nil || zone < 1 || zone > 60 {
		return extracted{}, false
	}

	band := strings.ToUpper(m["band"])[0]

	lat, lon := proj.UTMtoLL(proj.UTM{
		Easting:    e,
		Northing:   n,
		ZoneNumber: zone,
		ZoneLetter: band,
	})

	// the northing has to land inside the band it was given with
	if proj.BandLetter(lat) != band {
		return extracted{}, false
	}

	p := orb.Point{lon, lat}
	if !RegionWGS84.Contains(p) {
		return extracted{}, false
	}

	return extracted{point: p, epsg: proj.WGS84, source: UTM.ID()}, true
}

func mgrsExtractor(m map[string]string) (extracted, bool) {
	s := strings.ToUpper(strings.Join(strings.Fields(m["mgrs"]), ""))

	if len(s) > 1 && (s[1] < '0' || s[1] > '9') {
		s = "0" + s
	}

	if len(s) < mgrsMinPrecision || (len(s)-mgrsMinPrecision)%2 != 0 {
		return extracted{}, false
	}

	lat, lon, err := proj.MGRSToLL(s)
	if err != nil {
		return extracted{}, false
	}

	return extracted{point: orb.Point{lon, lat}, epsg: proj.WGS84, source: MGRS.ID()}, true
}
