package graphica

import (
	"context"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConfigParse(t *testing.T) {
	const rc = `
# window
title = Demo
size = 640x480
origin = bottom-right
background = #102030
resizable = false
fps = 60
fontdir = ~/fonts
loglevel = debug
unknown = ignored
not a setting
`
	c := DefaultConfig()
	if err := c.Parse(strings.NewReader(rc), "/home/me"); err != nil {
		t.Fatal(err)
	}
	want := Config{
		Title:      "Demo",
		Width:      640,
		Height:     480,
		Origin:     OriginBottomRight,
		Background: color.RGBA{0x10, 0x20, 0x30, 255},
		Resizable:  false,
		FPS:        60,
		FontDir:    filepath.Join("/home/me", "fonts"),
		LogLevel:   slog.LevelDebug,
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigParseErrors(t *testing.T) {
	for _, rc := range []string{
		"width = wide",
		"size = 640",
		"origin = middle",
		"background = #zz0000",
		"colour = 1,2",
		"fps = -",
		"loglevel = loud",
	} {
		c := DefaultConfig()
		err := c.Parse(strings.NewReader("# first\n"+rc), "")
		if err == nil {
			t.Errorf("%q: no error", rc)
			continue
		}
		if !strings.Contains(err.Error(), "config line 2") {
			t.Errorf("%q: error %q does not name the line", rc, err)
		}
	}
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
	}{
		{"#ff0000", color.RGBA{255, 0, 0, 255}},
		{" 0, 128 ,255 ", color.RGBA{0, 128, 255, 255}},
	}
	for _, tt := range tests {
		got, err := ParseColour(tt.in)
		if err != nil {
			t.Errorf("ParseColour(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColour(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "red", "1,2,3,4", "256,0,0"} {
		if _, err := ParseColour(bad); err == nil {
			t.Errorf("ParseColour(%q) succeeded", bad)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	c, err := LoadConfig()
	if err != nil {
		t.Fatalf("without a file: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), c); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}

	if err := os.WriteFile(filepath.Join(home, ".graphicarc"), []byte("width=320\nheight=200\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err = LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if c.Width != 320 || c.Height != 200 || c.Title != defaultTitle {
		t.Errorf("loaded %+v", c)
	}

	if err := os.WriteFile(filepath.Join(home, ".graphicarc"), []byte("fps=fast\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(); err == nil {
		t.Error("bad file loaded without error")
	}
}

func TestOptionsOverrideConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Title = "from config"
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	win, err := Open(ctx, cfg,
		WithDriver(NewHeadless(50, 40)),
		WithTitle("from option"),
		WithSize(50, 40),
		WithOrigin(OriginCenter),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer win.Close()
	if win.Title != "from option" || win.Origin != OriginCenter {
		t.Errorf("window %q %v", win.Title, win.Origin)
	}
	if w, h := win.Size(); w != 50 || h != 40 {
		t.Errorf("size %dx%d", w, h)
	}
}
