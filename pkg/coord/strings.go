package coord

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/paulmach/orb"
	"golang.org/x/text/unicode/norm"

	"github.com/kdudkov/gocoord/pkg/proj"
)

const (
	DefaultTarget   = proj.WebMercator
	DefaultDecimals = 1
)

type pattern struct {
	name    string
	re      *regexp.Regexp
	extract extractor
}

// The order is part of the behavior: the first pattern whose extractor
// accepts the text wins.
var patterns = []pattern{
	{
		name:    "decimal",
		re:      regexp.MustCompile(`^(?P<a>-?\d{1,3}[.\d]+)\s*[ ,/]+\s*(?P<b>-?\d{1,3}[.\d]+)$`),
		extract: numericExtractor,
	},
	{
		name:    "metric",
		re:      regexp.MustCompile(`^(?P<a>\d{1,3}[ ']?\d{1,3}[ ']?[\d.]{3,})[ ,./]+(?P<b>\d{1,3}[ ']?\d{1,3}[ ']?[\d.]{3,})$`),
		extract: numericExtractor,
	},
	{
		name: "degrees",
		re: regexp.MustCompile(`(?i)^(?P<d1>\d{1,3}(?:[.,]\d+)?)\s*°\s*(?P<c1>[NSEW]?)\s*[,/]?\s*` +
			`(?P<d2>\d{1,3}(?:[.,]\d+)?)\s*°\s*(?P<c2>[NSEW]?)$`),
		extract: sexagesimalExtractor,
	},
	{
		name: "degrees-minutes",
		re: regexp.MustCompile(`(?i)^(?P<d1>\d{1,3})[° ]+(?P<m1>\d+(?:[.,]\d*)?)'?\s*(?P<c1>[NSEW]?)\s*[,/]?\s*` +
			`(?P<d2>\d{1,3})[° ]+(?P<m2>\d+(?:[.,]\d*)?)'?\s*(?P<c2>[NSEW]?)$`),
		extract: sexagesimalExtractor,
	},
	{
		name: "degrees-minutes-seconds",
		re: regexp.MustCompile(`^(?P<d1>\d{1,3})[° ]+(?P<m1>\d{1,2})[' ]+(?P<s1>[\d.]+)['"]{0,2}\s*[,/]?\s*` +
			`(?P<d2>\d{1,3})[° ]+(?P<m2>\d{1,2})[' ]+(?P<s2>[\d.]+)['"]{0,2}$`),
		extract: sexagesimalExtractor,
	},
	{
		name: "degrees-minutes-seconds-cardinal",
		re: regexp.MustCompile(`(?i)^(?P<d1>\d{1,3})[° ]+\s*(?P<m1>\d{1,2})[' ]+\s*(?P<s1>[\d.]+)['"]*\s*(?P<c1>[NSEW]?)\s*[,/]?\s*` +
			`(?P<d2>\d{1,3})[° ]+\s*(?P<m2>\d{1,2})[' ]+\s*(?P<s2>[\d.]+)['"]*\s*(?P<c2>[NSEW]?)$`),
		extract: sexagesimalExtractor,
	},
	{
		name: "utm",
		re: regexp.MustCompile(`(?i)^(?P<e>\d{1,3}(?:[ ']?\d{3})+(?:\.\d+)?)\s*[ ,/]\s*(?P<n>\d{1,3}(?:[ ']?\d{3})+(?:\.\d+)?)` +
			`\s*\(?(?P<zone>\d{1,2})\s*(?P<band>[C-HJ-NP-X])\)?$`),
		extract: utmExtractor,
	},
	{
		name: "utm",
		re: regexp.MustCompile(`(?i)^\(?(?P<zone>\d{1,2})\s*(?P<band>[C-HJ-NP-X])\)?\s+` +
			`(?P<e>\d{1,3}(?:[ ']?\d{3})+(?:\.\d+)?)\s*[ ,/]\s*(?P<n>\d{1,3}(?:[ ']?\d{3})+(?:\.\d+)?)$`),
		extract: utmExtractor,
	},
	{
		name:    "mgrs",
		re:      regexp.MustCompile(`(?i)^(?P<mgrs>\d{1,2}\s*[C-HJ-NP-X]\s*[A-HJ-NP-Z]\s*[A-HJ-NP-V][\s\d]*)$`),
		extract: mgrsExtractor,
	},
}

func (p pattern) match(s string) map[string]string {
	res := p.re.FindStringSubmatch(s)
	if res == nil {
		return nil
	}

	m := make(map[string]string, len(res))

	for i, name := range p.re.SubexpNames() {
		if name != "" {
			m[name] = res[i]
		}
	}

	return m
}

var replacer = strings.NewReplacer(
	"′", "'", "’", "'", "‘", "'", "´", "'", "`", "'",
	"″", `"`, "”", `"`, "“", `"`,
	"º", "°", "˚", "°",
	"\t", " ",
)

func normalize(s string) string {
	return strings.TrimSpace(norm.NFKC.String(replacer.Replace(s)))
}

// Match is a recognized coordinate.
type Match struct {
	// Point is the coordinate in EPSG, rounded.
	Point orb.Point
	EPSG  int

	// Source is the extracted pair in SourceEPSG before reprojection.
	Source     orb.Point
	SourceEPSG int
	// SourceID names the notation's system: LV95, LV03, WGS84, UTM or MGRS.
	SourceID string
	Pattern  string
}

// Recognize finds a coordinate in text, which must hold nothing else, and
// returns it in the target EPSG rounded to decimals. Patterns are tried in
// order; a pattern that matches but whose extraction or reprojection fails
// hands over to the next one.
func Recognize(text string, target int, decimals int) (Match, bool) {
	s := normalize(text)
	if s == "" {
		return Match{}, false
	}

	for _, p := range patterns {
		m := p.match(s)
		if m == nil {
			continue
		}

		ex, ok := p.extract(m)
		if !ok {
			slog.Debug("pattern matched, no coordinate extracted", slog.String("pattern", p.name), slog.String("text", s))
			continue
		}

		res, err := Reproject(ex.point, ex.epsg, target, decimals)
		if err != nil {
			slog.Debug("reprojection failed", slog.String("pattern", p.name), slog.Any("error", err))
			continue
		}

		return Match{
			Point:      res,
			EPSG:       target,
			Source:     ex.point,
			SourceEPSG: ex.epsg,
			SourceID:   ex.source,
			Pattern:    p.name,
		}, true
	}

	return Match{}, false
}

// FromString returns the coordinate found in text in the target EPSG.
func FromString(text string, target int, decimals int) (orb.Point, bool) {
	m, ok := Recognize(text, target, decimals)

	return m.Point, ok
}

// Parse is FromString with the default target and precision.
func Parse(text string) (orb.Point, bool) {
	return FromString(text, DefaultTarget, DefaultDecimals)
}
