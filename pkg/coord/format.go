package coord

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/kdudkov/gocoord/pkg/proj"
)

// Format renders p, expressed in the system's EPSG, with the given precision.
func Format(p orb.Point, s System, decimals int) string {
	return s.Format(p, decimals)
}

// PrintHumanReadable renders p, expressed in the system's EPSG, with the
// system default precision.
func PrintHumanReadable(p orb.Point, s System) string {
	return s.Format(p, s.Decimals())
}

// FormatFrom reprojects p from the given EPSG code to the system's one and
// renders it with the system default precision.
func FormatFrom(p orb.Point, from int, s System) (string, error) {
	if !s.valid() {
		return "", fmt.Errorf("%w: %d", ErrUnknownSystem, int(s))
	}

	res, err := proj.Project(from, s.EPSG(), p)
	if err != nil {
		return "", err
	}

	return s.FormatE(res, s.Decimals())
}

func isFinite(p orb.Point) bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// groupThousands puts an apostrophe between each group of three digits of the
// integer part of a formatted number.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac, hasFrac := strings.Cut(s, ".")

	var sb strings.Builder

	sb.WriteString(sign)

	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte('\'')
		}

		sb.WriteRune(c)
	}

	if hasFrac {
		sb.WriteByte('.')
		sb.WriteString(frac)
	}

	return sb.String()
}

// FormatNumber writes v with the given decimals, none when decimals is negative.
func FormatNumber(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', max(decimals, 0), 64)
}

func formatCH(p orb.Point, decimals int) (string, error) {
	return groupThousands(FormatNumber(p[0], decimals)) + ", " + groupThousands(FormatNumber(p[1], decimals)), nil
}

// formatWGS84 writes sexagesimal latitude and longitude followed by the
// decimal "lat, lon" pair with three more decimals.
func formatWGS84(p orb.Point, decimals int) (string, error) {
	return fmt.Sprintf("%s %s (%s, %s)",
		hdms(p[1], "NS", decimals),
		hdms(p[0], "EW", decimals),
		FormatNumber(p[1], decimals+3),
		FormatNumber(p[0], decimals+3),
	), nil
}

// hdms formats degrees as D° MM′ SS.ss″ H. Zero minutes and seconds are
// left out.
func hdms(degrees float64, hemispheres string, decimals int) string {
	normalized := math.Mod(degrees+180, 360)
	if normalized < 0 {
		normalized += 360
	}

	normalized -= 180

	x := math.Abs(3600 * normalized)
	deg := math.Floor(x / 3600)
	mins := math.Floor((x - deg*3600) / 60)
	sec := Round(x-deg*3600-mins*60, decimals)

	if sec >= 60 {
		sec = 0
		mins++
	}

	if mins >= 60 {
		mins = 0
		deg++
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "%.0f°", deg)

	if mins != 0 || sec != 0 {
		fmt.Fprintf(&sb, " %02.0f′", mins)
	}

	if sec != 0 {
		s := FormatNumber(sec, decimals)
		if sec < 10 {
			s = "0" + s
		}

		sb.WriteString(" " + s + "″")
	}

	switch {
	case normalized > 0:
		sb.WriteString(" " + hemispheres[:1])
	case normalized < 0:
		sb.WriteString(" " + hemispheres[1:])
	}

	return sb.String()
}

func formatUTM(p orb.Point, decimals int) (string, error) {
	u, err := proj.LLtoUTM(p[1], p[0])
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s %s (%d%c)",
		groupThousands(FormatNumber(Round(u.Easting, decimals), decimals)),
		groupThousands(FormatNumber(Round(u.Northing, decimals), decimals)),
		u.ZoneNumber, u.ZoneLetter), nil
}

// formatMGRS writes the reference in groups of five characters. Single digit
// zones are zero padded so that easting and northing get a group each.
func formatMGRS(p orb.Point, digits int) (string, error) {
	s, err := proj.ToMGRS(p[1], p[0], digits)
	if err != nil {
		return "", err
	}

	if s[1] < '0' || s[1] > '9' {
		s = "0" + s
	}

	var sb strings.Builder

	for i := 0; i < len(s); i += 5 {
		if i > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteString(s[i:min(i+5, len(s))])
	}

	return sb.String(), nil
}
