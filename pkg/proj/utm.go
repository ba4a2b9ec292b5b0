package proj

import (
	"errors"
	"fmt"
	"math"
)

// WGS84 ellipsoid.
const (
	aW  float64 = 6378137         // semi-major axis
	e2W float64 = 0.00669438      // eccentricity squared
	ep2 float64 = e2W / (1 - e2W) // second eccentricity squared
	k0  float64 = 0.9996          // UTM scale on central meridian
	fe  float64 = 500_000         // false easting
	fnS float64 = 10_000_000      // false northing, southern hemisphere
)

const bandLetters = "CDEFGHJKLMNPQRSTUVWX"

var ErrOutOfUTM = errors.New("latitude outside of UTM coverage")

// UTM is a position in the Universal Transverse Mercator grid.
type UTM struct {
	Easting    float64
	Northing   float64
	ZoneNumber int
	ZoneLetter byte
}

func (u UTM) String() string {
	return fmt.Sprintf("%.0f %.0f %d%c", u.Easting, u.Northing, u.ZoneNumber, u.ZoneLetter)
}

// South reports whether the band letter is in the southern hemisphere.
func (u UTM) South() bool {
	return u.ZoneLetter < 'N'
}

// ZoneNumber returns the UTM zone for a position, including the Norway and
// Svalbard exceptions.
func ZoneNumber(lat, lon float64) int {
	// normalize to [-180, 180)
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}

	lon -= 180

	zone := int((lon+180)/6) + 1

	if lat >= 56.0 && lat < 64.0 && lon >= 3.0 && lon < 12.0 {
		zone = 32
	}

	if lat >= 72.0 && lat < 84.0 {
		switch {
		case lon >= 0.0 && lon < 9.0:
			zone = 31
		case lon >= 9.0 && lon < 21.0:
			zone = 33
		case lon >= 21.0 && lon < 33.0:
			zone = 35
		case lon >= 33.0 && lon < 42.0:
			zone = 37
		}
	}

	return zone
}

// BandLetter returns the latitude band letter, or 0 outside of 80°S..84°N.
func BandLetter(lat float64) byte {
	if math.IsNaN(lat) || lat < -80 || lat > 84 {
		return 0
	}

	if lat >= 72 {
		return 'X'
	}

	return bandLetters[int((lat+80)/8)]
}

// LLtoUTM converts WGS84 latitude/longitude to UTM.
func LLtoUTM(lat, lon float64) (UTM, error) {
	letter := BandLetter(lat)
	if letter == 0 || !finite(lon) {
		return UTM{}, fmt.Errorf("%w: %f, %f", ErrOutOfUTM, lat, lon)
	}

	zone := ZoneNumber(lat, lon)
	e, n := tmForward(lat, lon, centralMeridian(zone))

	if lat < 0 {
		n += fnS
	}

	return UTM{Easting: e, Northing: n, ZoneNumber: zone, ZoneLetter: letter}, nil
}

// UTMtoLL converts UTM to WGS84 latitude/longitude.
func UTMtoLL(u UTM) (lat, lon float64) {
	n := u.Northing
	if u.South() {
		n -= fnS
	}

	return tmInverse(u.Easting, n, centralMeridian(u.ZoneNumber))
}

func centralMeridian(zone int) float64 {
	return float64(zone-1)*6 - 180 + 3
}

// tmForward is the Snyder series for transverse Mercator on WGS84. Returns
// easting with false easting applied and northing from the equator.
func tmForward(lat, lon, lon0 float64) (float64, float64) {
	latR := lat * math.Pi / 180
	dLon := lon - lon0

	// keep the longitude difference in [-180, 180)
	if dLon >= 180 {
		dLon -= 360
	} else if dLon < -180 {
		dLon += 360
	}

	sinLat := math.Sin(latR)
	cosLat := math.Cos(latR)
	tanLat := math.Tan(latR)

	n := aW / math.Sqrt(1-e2W*sinLat*sinLat)
	t := tanLat * tanLat
	c := ep2 * cosLat * cosLat
	a := cosLat * dLon * math.Pi / 180

	e4 := e2W * e2W
	e6 := e4 * e2W

	m := aW * ((1-e2W/4-3*e4/64-5*e6/256)*latR -
		(3*e2W/8+3*e4/32+45*e6/1024)*math.Sin(2*latR) +
		(15*e4/256+45*e6/1024)*math.Sin(4*latR) -
		(35*e6/3072)*math.Sin(6*latR))

	easting := k0*n*(a+(1-t+c)*math.Pow(a, 3)/6+
		(5-18*t+t*t+72*c-58*ep2)*math.Pow(a, 5)/120) + fe

	northing := k0 * (m + n*tanLat*(a*a/2+
		(5-t+9*c+4*c*c)*math.Pow(a, 4)/24+
		(61-58*t+t*t+600*c-330*ep2)*math.Pow(a, 6)/720))

	return easting, northing
}

func tmInverse(easting, northing, lon0 float64) (float64, float64) {
	e1 := (1 - math.Sqrt(1-e2W)) / (1 + math.Sqrt(1-e2W))
	x := easting - fe

	e4 := e2W * e2W
	e6 := e4 * e2W

	m := northing / k0
	mu := m / (aW * (1 - e2W/4 - 3*e4/64 - 5*e6/256))

	phi1 := mu + (3*e1/2-27*math.Pow(e1, 3)/32)*math.Sin(2*mu) +
		(21*e1*e1/16-55*math.Pow(e1, 4)/32)*math.Sin(4*mu) +
		(151*math.Pow(e1, 3)/96)*math.Sin(6*mu)

	sinPhi := math.Sin(phi1)
	cosPhi := math.Cos(phi1)
	tanPhi := math.Tan(phi1)

	n1 := aW / math.Sqrt(1-e2W*sinPhi*sinPhi)
	t1 := tanPhi * tanPhi
	c1 := ep2 * cosPhi * cosPhi
	r1 := aW * (1 - e2W) / math.Pow(1-e2W*sinPhi*sinPhi, 1.5)
	d := x / (n1 * k0)

	lat := phi1 - (n1*tanPhi/r1)*(d*d/2-
		(5+3*t1+10*c1-4*c1*c1-9*ep2)*math.Pow(d, 4)/24+
		(61+90*t1+298*c1+45*t1*t1-252*ep2-3*c1*c1)*math.Pow(d, 6)/720)

	lon := (d - (1+2*t1+c1)*math.Pow(d, 3)/6 +
		(5-2*c1+28*t1-3*c1*c1+8*ep2+24*t1*t1)*math.Pow(d, 5)/120) / cosPhi

	return lat * 180 / math.Pi, lon0 + lon*180/math.Pi
}

// UTMZone is a single UTM zone addressed as EPSG:326xx (north) or 327xx
// (south). Positions outside the zone are projected on its central meridian.
type UTMZone struct {
	Zone  int
	South bool
}

func (z *UTMZone) EPSG() int {
	if z.South {
		return 32700 + z.Zone
	}

	return 32600 + z.Zone
}

func (z *UTMZone) FromWGS84(lon, lat float64) (float64, float64) {
	e, n := tmForward(lat, lon, centralMeridian(z.Zone))
	if z.South {
		n += fnS
	}

	return e, n
}

func (z *UTMZone) ToWGS84(x, y float64) (float64, float64) {
	if z.South {
		y -= fnS
	}

	lat, lon := tmInverse(x, y, centralMeridian(z.Zone))

	return lon, lat
}
