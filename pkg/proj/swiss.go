package proj

// Swiss implements the swisstopo polynomial approximation for the Swiss
// projections. LV95 and LV03 share the same formulas and differ only by their
// false easting/northing. Accuracy is about one meter.
type Swiss struct {
	epsg     int
	easting  float64
	northing float64
}

var (
	SwissLV95 = &Swiss{epsg: LV95, easting: 2_600_000, northing: 1_200_000}
	SwissLV03 = &Swiss{epsg: LV03, easting: 600_000, northing: 200_000}
)

func (s *Swiss) EPSG() int { return s.epsg }

// ToWGS84 converts Swiss easting/northing to WGS84 longitude/latitude.
func (s *Swiss) ToWGS84(easting, northing float64) (lon, lat float64) {
	// differences from Bern in 1000 km
	y := (easting - s.easting) / 1_000_000
	x := (northing - s.northing) / 1_000_000

	// 10000" units
	lonSec := 2.6779094 +
		4.728982*y +
		0.791484*y*x +
		0.1306*y*x*x -
		0.0436*y*y*y

	latSec := 16.9023892 +
		3.238272*x -
		0.270978*y*y -
		0.002528*x*x -
		0.0447*y*y*x -
		0.0140*x*x*x

	lon = lonSec * 100.0 / 36.0
	lat = latSec * 100.0 / 36.0

	return
}

// FromWGS84 converts WGS84 longitude/latitude to Swiss easting/northing.
func (s *Swiss) FromWGS84(lon, lat float64) (easting, northing float64) {
	phi := (lat*3600 - 169028.66) / 10000
	lambda := (lon*3600 - 26782.5) / 10000

	easting = s.easting + 72.37 +
		211_455.93*lambda -
		10_938.51*lambda*phi -
		0.36*lambda*phi*phi -
		44.54*lambda*lambda*lambda

	northing = s.northing + 147.07 +
		308_807.95*phi +
		3_745.25*lambda*lambda +
		76.63*phi*phi -
		194.56*lambda*lambda*phi +
		119.79*phi*phi*phi

	return
}
