package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/kdudkov/goutils/request"
	"github.com/paulmach/orb"

	"github.com/kdudkov/gocoord/pkg/coord"
)

const httpTimeout = time.Second * 3

type RemoteAPI struct {
	logger *slog.Logger
	host   string
	client *http.Client
}

type coordinateAnswer struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	SRS       int     `json:"srs"`
	SourceSRS int     `json:"source_srs"`
	Source    string  `json:"source"`
	Pattern   string  `json:"pattern"`
}

type apiError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewRemoteAPI(host string) *RemoteAPI {
	return &RemoteAPI{
		host:   host,
		logger: slog.Default().With("logger", "remote_api"),
		client: &http.Client{Transport: &http.Transport{ResponseHeaderTimeout: httpTimeout}},
	}
}

func (r *RemoteAPI) getURL(path string) string {
	return fmt.Sprintf("http://%s%s", r.host, path)
}

func (r *RemoteAPI) request(url string) *request.Request {
	return request.New(r.client, r.logger).URL(r.getURL(url))
}

// getJSON decodes a 200 answer into v and reports 404 as not found. The
// request fails on any non 2xx status but still hands over the response.
func (r *RemoteAPI) getJSON(ctx context.Context, path string, args map[string]string, v any) (bool, error) {
	res, err := r.request(path).Args(args).DoRes(ctx)
	if res == nil {
		if err == nil {
			err = fmt.Errorf("%s: no response", path)
		}

		return false, err
	}

	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		return true, json.NewDecoder(res.Body).Decode(v)
	case http.StatusNotFound:
		return false, nil
	default:
		var e apiError
		if err := json.NewDecoder(res.Body).Decode(&e); err != nil || e.Message == "" {
			return false, fmt.Errorf("%s: status %d", path, res.StatusCode)
		}

		return false, fmt.Errorf("%s: %s", path, e.Message)
	}
}

func (r *RemoteAPI) Coordinate(ctx context.Context, text string, target, decimals int) (*Result, error) {
	var a coordinateAnswer

	found, err := r.getJSON(ctx, "/api/coordinate", map[string]string{
		"q":        text,
		"srs":      strconv.Itoa(target),
		"decimals": strconv.Itoa(decimals),
	}, &a)
	if err != nil {
		return nil, err
	}

	res := &Result{Text: text, Found: found}

	if found {
		res.X, res.Y = a.X, a.Y
		res.SRS = a.SRS
		res.SourceSRS = a.SourceSRS
		res.Source = a.Source
		res.Pattern = a.Pattern
	}

	return res, nil
}

func (r *RemoteAPI) Format(ctx context.Context, p orb.Point, srs int, systems ...coord.System) ([]Formatted, error) {
	args := map[string]string{
		"x":   strconv.FormatFloat(p[0], 'f', -1, 64),
		"y":   strconv.FormatFloat(p[1], 'f', -1, 64),
		"srs": strconv.Itoa(srs),
	}

	if len(systems) == 0 {
		res := make([]Formatted, 0)
		_, err := r.getJSON(ctx, "/api/format", args, &res)

		return res, err
	}

	res := make([]Formatted, 0, len(systems))

	for _, s := range systems {
		args["system"] = s.ID()

		var f Formatted

		found, err := r.getJSON(ctx, "/api/format", args, &f)
		if err != nil {
			// a system that cannot represent p is left out of a multi-system answer
			if len(systems) == 1 {
				return nil, err
			}

			r.logger.Debug("format "+s.ID(), slog.Any("error", err))

			continue
		}

		if found {
			res = append(res, f)
		}
	}

	return res, nil
}
