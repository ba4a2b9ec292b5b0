package main

import (
	"context"

	"github.com/paulmach/orb"

	"github.com/kdudkov/gocoord/pkg/coord"
)

// Result is one line of output.
type Result struct {
	Text      string      `yaml:"text"`
	Found     bool        `yaml:"found"`
	X         float64     `yaml:"x,omitempty"`
	Y         float64     `yaml:"y,omitempty"`
	SRS       int         `yaml:"srs,omitempty"`
	SourceSRS int         `yaml:"source_srs,omitempty"`
	Source    string      `yaml:"source,omitempty"`
	Pattern   string      `yaml:"pattern,omitempty"`
	Formatted []Formatted `yaml:"formatted,omitempty"`
	Error     string      `yaml:"error,omitempty"`
}

type Formatted struct {
	System string `yaml:"system" json:"system"`
	Text   string `yaml:"text" json:"text"`
}

// Resolver does the work either in process or through a coordsearch server.
type Resolver interface {
	Coordinate(ctx context.Context, text string, target, decimals int) (*Result, error)
	Format(ctx context.Context, p orb.Point, srs int, systems ...coord.System) ([]Formatted, error)
}

type localResolver struct{}

func (localResolver) Coordinate(_ context.Context, text string, target, decimals int) (*Result, error) {
	res := &Result{Text: text}

	m, ok := coord.Recognize(text, target, decimals)
	if !ok {
		return res, nil
	}

	res.Found = true
	res.X, res.Y = m.Point[0], m.Point[1]
	res.SRS = m.EPSG
	res.SourceSRS = m.SourceEPSG
	res.Source = m.SourceID
	res.Pattern = m.Pattern

	return res, nil
}

func (localResolver) Format(_ context.Context, p orb.Point, srs int, systems ...coord.System) ([]Formatted, error) {
	if len(systems) == 0 {
		systems = coord.Systems()
	}

	res := make([]Formatted, 0, len(systems))

	for _, s := range systems {
		text, err := coord.FormatFrom(p, srs, s)
		if err != nil {
			if len(systems) == 1 {
				return nil, err
			}

			continue
		}

		res = append(res, Formatted{System: s.ID(), Text: text})
	}

	return res, nil
}
