package proj

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	rowLetters = "ABCDEFGHJKLMNPQRSTUV"
	twoMillion = 2_000_000
)

var (
	ErrInvalidMGRS = errors.New("invalid MGRS reference")

	columnSets = [3]string{"ABCDEFGH", "JKLMNPQR", "STUVWXYZ"}

	mgrsRe = regexp.MustCompile(`^(\d{1,2})([C-HJ-NP-X])([A-HJ-NP-Z])([A-HJ-NP-V])(\d*)$`)

	// northing of the southern edge of each latitude band, rounded down to 100 km
	bandMinNorthing = map[byte]float64{
		'C': 1_100_000, 'D': 2_000_000, 'E': 2_800_000, 'F': 3_700_000,
		'G': 4_600_000, 'H': 5_500_000, 'J': 6_400_000, 'K': 7_300_000,
		'L': 8_200_000, 'M': 9_100_000, 'N': 0, 'P': 800_000,
		'Q': 1_700_000, 'R': 2_600_000, 'S': 3_500_000, 'T': 4_400_000,
		'U': 5_300_000, 'V': 6_200_000, 'W': 7_000_000, 'X': 7_900_000,
	}
)

// ToMGRS returns the MGRS reference of a WGS84 position with the given number
// of digits per axis (0..5, 5 is one meter). Positions are truncated to the
// cell they fall in.
func ToMGRS(lat, lon float64, digits int) (string, error) {
	if digits < 0 || digits > 5 {
		return "", fmt.Errorf("%w: accuracy %d", ErrInvalidMGRS, digits)
	}

	u, err := LLtoUTM(lat, lon)
	if err != nil {
		return "", err
	}

	e := int(math.Floor(u.Easting))
	n := int(math.Floor(u.Northing))

	sq, err := square100k(e/100_000, (n/100_000)%20, u.ZoneNumber)
	if err != nil {
		return "", err
	}

	es := fmt.Sprintf("%05d", e%100_000)
	ns := fmt.Sprintf("%05d", n%100_000)

	return fmt.Sprintf("%d%c%s%s%s", u.ZoneNumber, u.ZoneLetter, sq, es[:digits], ns[:digits]), nil
}

func square100k(col, row, zone int) (string, error) {
	if col < 1 || col > 8 {
		return "", fmt.Errorf("%w: easting outside of zone %d", ErrOutOfDomain, zone)
	}

	if zone%2 == 0 {
		row += 5
	}

	return string([]byte{columnSets[(zone-1)%3][col-1], rowLetters[row%20]}), nil
}

// ParseMGRS decodes an MGRS reference to the south-west corner of the cell it
// designates and the cell size in meters. Spaces are ignored.
func ParseMGRS(s string) (UTM, float64, error) {
	s = strings.ToUpper(strings.Join(strings.Fields(s), ""))

	m := mgrsRe.FindStringSubmatch(s)
	if m == nil {
		return UTM{}, 0, fmt.Errorf("%w: %q", ErrInvalidMGRS, s)
	}

	zone, _ := strconv.Atoi(m[1])
	if zone < 1 || zone > 60 {
		return UTM{}, 0, fmt.Errorf("%w: zone %d", ErrInvalidMGRS, zone)
	}

	band := m[2][0]

	col := strings.IndexByte(columnSets[(zone-1)%3], m[3][0])
	if col < 0 {
		return UTM{}, 0, fmt.Errorf("%w: column %s in zone %d", ErrInvalidMGRS, m[3], zone)
	}

	row := strings.IndexByte(rowLetters, m[4][0])
	if zone%2 == 0 {
		row = (row + 15) % 20
	}

	digits := m[5]
	if len(digits)%2 != 0 || len(digits) > 10 {
		return UTM{}, 0, fmt.Errorf("%w: %d digits", ErrInvalidMGRS, len(digits))
	}

	acc := len(digits) / 2
	size := math.Pow10(5 - acc)

	var e, n float64

	if acc > 0 {
		ev, _ := strconv.Atoi(digits[:acc])
		nv, _ := strconv.Atoi(digits[acc:])
		e = float64(ev) * size
		n = float64(nv) * size
	}

	northing := float64(row) * 100_000
	for northing < bandMinNorthing[band] {
		northing += twoMillion
	}

	return UTM{
		Easting:    float64(col+1)*100_000 + e,
		Northing:   northing + n,
		ZoneNumber: zone,
		ZoneLetter: band,
	}, size, nil
}

// MGRSToLL returns the WGS84 latitude/longitude of the centre of the cell
// designated by an MGRS reference.
func MGRSToLL(s string) (float64, float64, error) {
	u, size, err := ParseMGRS(s)
	if err != nil {
		return 0, 0, err
	}

	u.Easting += size / 2
	u.Northing += size / 2

	lat, lon := UTMtoLL(u)

	return lat, lon, nil
}
