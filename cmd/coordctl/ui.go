package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jroimartin/gocui"
	"github.com/paulmach/orb"

	"github.com/kdudkov/gocoord/pkg/coord"
)

const (
	inputView  = "input"
	resultView = "result"
)

type binding struct {
	view string
	key  gocui.Key
	mod  gocui.Modifier
	f    func(_ *gocui.Gui, _ *gocui.View) error
}

func (app *App) RunUI() error {
	var err error

	app.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return err
	}

	defer app.g.Close()

	app.g.Cursor = true
	app.g.SetManagerFunc(app.layout)

	if err := app.setBindings(); err != nil {
		return err
	}

	return app.g.MainLoop()
}

func (app *App) setBindings() error {
	bindings := []binding{
		{"", gocui.KeyCtrlC, gocui.ModNone, app.stop},
		{inputView, gocui.KeyEnter, gocui.ModNone, app.submit},
		{inputView, gocui.KeyCtrlU, gocui.ModNone, app.clear},
	}

	for _, b := range bindings {
		if err := app.g.SetKeybinding(b.view, b.key, b.mod, b.f); err != nil {
			return err
		}
	}

	return nil
}

func (app *App) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView(inputView, 0, 0, maxX-1, 2); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}

		v.Frame = true
		v.Editable = true
		v.Title = "Coordinate (Enter to search, Ctrl-U to clear, Ctrl-C to quit)"

		if _, err := g.SetCurrentView(inputView); err != nil {
			return err
		}
	}

	if v, err := g.SetView(resultView, 0, 3, maxX-1, maxY-1); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}

		v.Frame = true
		v.Wrap = true
		v.Title = fmt.Sprintf("Result (EPSG:%d)", app.target)
	}

	return nil
}

func (app *App) stop(_ *gocui.Gui, _ *gocui.View) error {
	return gocui.ErrQuit
}

func (app *App) clear(_ *gocui.Gui, v *gocui.View) error {
	v.Clear()

	return v.SetCursor(0, 0)
}

// submit resolves in the background, remote calls must not block the main loop.
func (app *App) submit(_ *gocui.Gui, v *gocui.View) error {
	text := strings.TrimSpace(v.Buffer())
	if text == "" {
		return nil
	}

	go func() {
		res := app.Resolve(context.Background(), text)

		if res.Found && res.Formatted == nil {
			res.Formatted, _ = app.resolver.Format(context.Background(), orb.Point{res.X, res.Y}, res.SRS)
		}

		app.g.Update(func(g *gocui.Gui) error {
			return app.drawResult(g, res)
		})
	}()

	return nil
}

func (app *App) drawResult(g *gocui.Gui, res *Result) error {
	v, err := g.View(resultView)
	if err != nil {
		return err
	}

	v.Clear()

	fmt.Fprintf(v, "Text:    %s\n", res.Text)

	switch {
	case res.Error != "":
		fmt.Fprintf(v, "Error:   %s\n", res.Error)
		return nil
	case !res.Found:
		fmt.Fprintf(v, "no coordinate\n")
		return nil
	}

	fmt.Fprintf(v, "Result:  %s %s\n", coord.FormatNumber(res.X, app.decimals), coord.FormatNumber(res.Y, app.decimals))
	fmt.Fprintf(v, "Source:  %s (EPSG:%d), %s\n\n", res.Source, res.SourceSRS, res.Pattern)

	for _, f := range res.Formatted {
		fmt.Fprintf(v, "%-6s %s\n", f.System, f.Text)
	}

	return nil
}
