package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/paulmach/orb"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kdudkov/gocoord/internal/config"
	"github.com/kdudkov/gocoord/pkg/coord"
	"github.com/kdudkov/gocoord/pkg/proj"
)

type CoordinateResponse struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	SRS       int     `json:"srs"`
	SourceSRS int     `json:"source_srs"`
	Source    string  `json:"source"`
	Pattern   string  `json:"pattern"`
}

type FormatResponse struct {
	System string `json:"system"`
	Text   string `json:"text"`
}

type PointResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type SystemResponse struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	EPSG     int    `json:"epsg"`
	Decimals int    `json:"decimals"`
}

func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return def, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}

	return v, nil
}

func queryFloat(c *fiber.Ctx, key string) (float64, error) {
	s := c.Query(key)
	if s == "" {
		return 0, fmt.Errorf("%s is required", key)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}

	return v, nil
}

func querySRS(c *fiber.Ctx, def int) (int, error) {
	srs, err := queryInt(c, "srs", def)
	if err != nil {
		return 0, err
	}

	if proj.ForEPSG(srs) == nil {
		return 0, fmt.Errorf("%w: EPSG:%d", proj.ErrUnknownProjection, srs)
	}

	return srs, nil
}

func getCoordinateHandler(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg := app.Config()

		q := c.Query("q")
		if strings.TrimSpace(q) == "" {
			return errBadRequest(c, "q is required")
		}

		srs, err := querySRS(c, cfg.Target)
		if err != nil {
			return errBadRequest(c, err.Error())
		}

		decimals, err := queryInt(c, "decimals", cfg.Decimals)
		if err != nil {
			return errBadRequest(c, err.Error())
		}

		if decimals < config.MinDecimals || decimals > config.MaxDecimals {
			return errBadRequest(c, fmt.Sprintf("decimals must be in [%d, %d]", config.MinDecimals, config.MaxDecimals))
		}

		m, ok := coord.Recognize(q, srs, decimals)
		if !ok {
			unrecognizedMetric.Inc()

			return errNotFound(c, "no coordinate found")
		}

		recognizedMetric.With(prometheus.Labels{"source": m.SourceID, "pattern": m.Pattern}).Inc()

		return c.JSON(CoordinateResponse{
			X:         m.Point[0],
			Y:         m.Point[1],
			SRS:       m.EPSG,
			SourceSRS: m.SourceEPSG,
			Source:    m.SourceID,
			Pattern:   m.Pattern,
		})
	}
}

// getFormatHandler answers with one object when system is given and with
// the list of all systems otherwise.
func getFormatHandler(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		x, err := queryFloat(c, "x")
		if err != nil {
			return errBadRequest(c, err.Error())
		}

		y, err := queryFloat(c, "y")
		if err != nil {
			return errBadRequest(c, err.Error())
		}

		srs, err := querySRS(c, app.Config().Target)
		if err != nil {
			return errBadRequest(c, err.Error())
		}

		p := orb.Point{x, y}

		if name := c.Query("system"); name != "" {
			sys, err := coord.ParseSystem(name)
			if err != nil {
				return errBadRequest(c, err.Error())
			}

			text, err := coord.FormatFrom(p, srs, sys)
			if err != nil {
				return errUnprocessable(c, err.Error())
			}

			formattedMetric.With(prometheus.Labels{"system": sys.ID()}).Inc()

			return c.JSON(FormatResponse{System: sys.ID(), Text: text})
		}

		res := make([]FormatResponse, 0, len(coord.Systems()))

		for _, sys := range coord.Systems() {
			text, err := coord.FormatFrom(p, srs, sys)
			if err != nil {
				continue
			}

			formattedMetric.With(prometheus.Labels{"system": sys.ID()}).Inc()
			res = append(res, FormatResponse{System: sys.ID(), Text: text})
		}

		if len(res) == 0 {
			return errUnprocessable(c, "point can not be represented in any system")
		}

		return c.JSON(res)
	}
}

func getCentroidHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var data [][]float64

		if err := json.Unmarshal(c.Body(), &data); err != nil {
			return errBadRequest(c, "body must be a list of [x, y] pairs")
		}

		points := make([]orb.Point, 0, len(data))

		for i, d := range data {
			if len(d) != 2 {
				return errBadRequest(c, fmt.Sprintf("point %d must have 2 values", i))
			}

			points = append(points, orb.Point{d[0], d[1]})
		}

		p, err := coord.Centroid(points...)

		switch {
		case errors.Is(err, coord.ErrNotEnoughPoints), errors.Is(err, coord.ErrDegenerateGeometry):
			centroidMetric.With(prometheus.Labels{"result": "rejected"}).Inc()

			return errUnprocessable(c, err.Error())
		case err != nil:
			return err
		}

		centroidMetric.With(prometheus.Labels{"result": "ok"}).Inc()

		return c.JSON(PointResponse{X: p[0], Y: p[1]})
	}
}

func getSystemsHandler() fiber.Handler {
	systems := make([]SystemResponse, 0, len(coord.Systems()))

	for _, s := range coord.Systems() {
		systems = append(systems, SystemResponse{
			ID:       s.ID(),
			Label:    s.Label(),
			EPSG:     s.EPSG(),
			Decimals: s.Decimals(),
		})
	}

	return func(c *fiber.Ctx) error {
		return c.JSON(systems)
	}
}
