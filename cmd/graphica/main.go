package main

import (
	"context"
	"errors"
	"flag"
	"image/color"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"graphica"
)

func main() {
	var (
		origin   = flag.String("origin", "", "origin convention: top-left, top-right, bottom-left, bottom-right, center")
		picture  = flag.String("image", "", "picture to show next to the controls")
		exportTo = flag.String("png", "", "render headless and write the final frame to this PNG file")
		frames   = flag.Int("frames", 1, "frames to render with -png")
		verbose  = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	cfg, err := graphica.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if *origin != "" {
		if cfg.Origin, err = graphica.ParseOrigin(*origin); err != nil {
			log.Fatal(err)
		}
	}
	level := cfg.LogLevel
	if *verbose {
		level = slog.LevelDebug
	}

	// The terminal driver owns the screen, so logs go to a file there.
	logOut := io.Writer(os.Stderr)
	if *exportTo == "" {
		logFile, err := os.OpenFile(filepath.Join(os.TempDir(), "graphica.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer logFile.Close()
		logOut = logFile
	}

	var opts []graphica.Option
	opts = append(opts, graphica.WithLogger(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))))
	if *exportTo != "" {
		opts = append(opts, graphica.WithDriver(graphica.NewHeadless(cfg.Width, cfg.Height)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	win, err := graphica.Open(ctx, cfg, opts...)
	if err != nil {
		log.Fatal(err)
	}
	defer win.Close()

	d, err := newDemo(win, *picture)
	if err != nil {
		win.Close()
		log.Fatal(err)
	}

	if *exportTo != "" {
		for i := 0; i < *frames; i++ {
			d.step(win)
			if err := win.Update(); err != nil {
				log.Fatal(err)
			}
		}
		if err := win.SavePNG(*exportTo); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := win.Loop(ctx, func(w *graphica.Window) error {
		d.step(w)
		return nil
	}); err != nil && !errors.Is(err, context.Canceled) {
		win.Close()
		log.Fatal(err)
	}
}

// demo lays out one of each shape: a toggle button, a text box that echoes
// into a label, and an optional picture that can be raised over the button.
type demo struct {
	button *graphica.Rect
	label  *graphica.Text
	input  *graphica.TextBox
	echo   *graphica.Text
	status *graphica.Text
	pic    *graphica.Image
}

func newDemo(win *graphica.Window, picture string) (*demo, error) {
	d := &demo{}
	graphica.NewLine(win, graphica.Pct(5), graphica.Pct(12), graphica.Pct(95), graphica.Pct(12), color.RGBA{90, 90, 90, 255})
	graphica.NewText(win, graphica.Pct(5), graphica.Pct(3), graphica.Pct(6), color.White, "graphica")

	d.button = graphica.NewRect(win, graphica.Pct(5), graphica.Pct(18), graphica.Pct(30), graphica.Pct(30),
		color.RGBA{40, 90, 160, 255}, color.White)
	d.label = graphica.NewText(win, graphica.Pct(7), graphica.Pct(20), graphica.Pct(5), color.White, "Click me")

	d.input = graphica.NewTextBox(win, graphica.Pct(5), graphica.Pct(40), graphica.Pct(5), graphica.Pct(40))
	d.echo = graphica.NewText(win, graphica.Pct(5), graphica.Pct(50), graphica.Pct(4), color.RGBA{200, 200, 200, 255}, "")
	d.status = graphica.NewText(win, graphica.Pct(5), graphica.Pct(90), graphica.Pct(3), color.RGBA{150, 150, 150, 255}, "")

	if picture != "" {
		pic, err := graphica.NewImage(win, picture, graphica.Pct(55), graphica.Pct(18), graphica.Pct(35), graphica.Coord{})
		if err != nil {
			return nil, err
		}
		d.pic = pic
	}
	return d, nil
}

func (d *demo) step(win *graphica.Window) {
	if d.button.Clicked {
		d.label.Content = "Clicked"
		d.button.Fill = color.RGBA{40, 160, 90, 255}
	} else if d.button.Hover {
		d.label.Content = "Click me"
		d.button.Fill = color.RGBA{60, 120, 200, 255}
	} else {
		d.label.Content = "Click me"
		d.button.Fill = color.RGBA{40, 90, 160, 255}
	}

	d.echo.Content = strings.ToUpper(d.input.Content)

	if d.pic != nil {
		if graphica.Collision(d.pic, d.button) && d.pic.Hover {
			win.ToFront(d.pic)
		} else if d.button.Hover {
			win.ToFront(d.button)
			win.ToFront(d.label)
		}
	}

	var status strings.Builder
	status.WriteString(win.Origin.String())
	if keys := win.KeyChanges(); len(keys) > 0 {
		status.WriteString("  keys: " + strings.Join(keys, ""))
	}
	if comms := win.CommandChanges(); len(comms) > 0 {
		status.WriteString("  commands: " + strings.Join(comms, " "))
	}
	if win.Caps() {
		status.WriteString("  CAPS")
	}
	if s := win.ShapeAt(win.MouseX(), win.MouseY()); s != nil {
		status.WriteString("  over a shape")
	}
	d.status.Content = status.String()
}
