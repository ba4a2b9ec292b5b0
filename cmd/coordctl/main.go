package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	"github.com/kdudkov/gocoord/pkg/coord"
	"github.com/kdudkov/gocoord/pkg/log"
)

const requestTimeout = time.Second * 5

type App struct {
	g        *gocui.Gui
	logger   *slog.Logger
	resolver Resolver
	target   int
	decimals int
	systems  []coord.System
	yaml     bool
}

func NewApp(r Resolver, target, decimals int) *App {
	return &App{
		logger:   slog.Default().With("logger", "coordctl"),
		resolver: r,
		target:   target,
		decimals: decimals,
	}
}

// Resolve recognizes text and, when output systems are set, formats the
// result in each of them.
func (app *App) Resolve(ctx context.Context, text string) *Result {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := app.resolver.Coordinate(ctx, text, app.target, app.decimals)
	if err != nil {
		return &Result{Text: text, Error: err.Error()}
	}

	if !res.Found || app.systems == nil {
		return res
	}

	f, err := app.resolver.Format(ctx, orb.Point{res.X, res.Y}, res.SRS, app.systems...)
	if err != nil {
		res.Error = err.Error()
	}

	res.Formatted = f

	return res
}

func (app *App) write(w io.Writer, res *Result) error {
	if app.yaml {
		enc := yaml.NewEncoder(w)
		defer enc.Close()

		return enc.Encode(res)
	}

	switch {
	case res.Error != "":
		_, err := fmt.Fprintf(w, "%s\terror: %s\n", res.Text, res.Error)
		return err
	case !res.Found:
		_, err := fmt.Fprintf(w, "%s\tno coordinate\n", res.Text)
		return err
	}

	if len(res.Formatted) > 0 {
		for _, f := range res.Formatted {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", f.System, f.Text); err != nil {
				return err
			}
		}

		return nil
	}

	_, err := fmt.Fprintf(w, "%s %s\tEPSG:%d\t%s\n",
		coord.FormatNumber(res.X, app.decimals), coord.FormatNumber(res.Y, app.decimals), res.SRS, res.Source)

	return err
}

// Process handles the text given on the command line, or every non empty
// line of r when there is none.
func (app *App) Process(ctx context.Context, args []string, r io.Reader, w io.Writer) error {
	if len(args) > 0 {
		return app.write(w, app.Resolve(ctx, strings.Join(args, " ")))
	}

	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := app.write(w, app.Resolve(ctx, line)); err != nil {
			return err
		}
	}

	return scanner.Err()
}

func parseSystems(s string) ([]coord.System, error) {
	if s == "" {
		return nil, nil
	}

	if strings.EqualFold(s, "all") {
		return coord.Systems(), nil
	}

	res := make([]coord.System, 0)

	for _, name := range strings.Split(s, ",") {
		sys, err := coord.ParseSystem(name)
		if err != nil {
			return nil, err
		}

		res = append(res, sys)
	}

	return res, nil
}

func main() {
	target := flag.Int("target", coord.DefaultTarget, "output EPSG code")
	decimals := flag.Int("decimals", coord.DefaultDecimals, "output decimals")
	asYaml := flag.Bool("yaml", false, "yaml output")
	format := flag.String("format", "", "comma separated systems to format the result in, or all")
	remote := flag.String("remote", "", "host:port of a coordsearch server")
	ui := flag.Bool("ui", false, "interactive console")
	debug := flag.Bool("debug", false, "debug")
	flag.Parse()

	if *ui {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	} else {
		log.Setup(*debug)
	}

	var r Resolver = localResolver{}
	if *remote != "" {
		r = NewRemoteAPI(*remote)
	}

	app := NewApp(r, *target, *decimals)
	app.yaml = *asYaml

	systems, err := parseSystems(*format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	app.systems = systems

	if *ui {
		if err := app.RunUI(); err != nil && !errors.Is(err, gocui.ErrQuit) {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		return
	}

	if err := app.Process(context.Background(), flag.Args(), os.Stdin, os.Stdout); err != nil {
		app.logger.Error("error", slog.Any("error", err))
		os.Exit(1)
	}
}
