package graphica

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writePNG writes a solid w by h picture and returns its path.
func writePNG(t *testing.T, w, h int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), "picture.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestImageExtent(t *testing.T) {
	path := writePNG(t, 40, 20, red)
	win, _ := newTestWindow(t, 400, 300)

	tests := []struct {
		name          string
		width, height Coord
		wantW, wantH  int
	}{
		{"natural", Coord{}, Coord{}, 40, 20},
		{"width only", Px(80), Coord{}, 80, 40},
		{"height only", Coord{}, Pct(50), 300, 150},
		{"both", Px(10), Px(70), 10, 70},
		{"width percent", Pct(25), Coord{}, 100, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			im, err := NewImage(win, path, Px(0), Px(0), tt.width, tt.height)
			if err != nil {
				t.Fatal(err)
			}
			if w, h := im.Extent(); w != tt.wantW || h != tt.wantH {
				t.Errorf("Extent = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
			if im.AspectRatio() != 2 {
				t.Errorf("AspectRatio = %v, want 2", im.AspectRatio())
			}
			if !im.Width.IsZero() && tt.width.IsZero() {
				t.Error("derived width written back")
			}
		})
	}
}

func TestImageDisplay(t *testing.T) {
	path := writePNG(t, 40, 20, red)
	win, d := newTestWindow(t, 100, 100)
	im, err := NewImage(win, path, Px(10), Px(10), Coord{}, Coord{})
	if err != nil {
		t.Fatal(err)
	}
	if im.Path != path {
		t.Errorf("Path = %q", im.Path)
	}

	d.Push(Input{MouseX: 30, MouseY: 20, MouseDown: true})
	update(t, win)
	if !im.Hover || !im.Clicked {
		t.Errorf("image hit state %+v", im.HitState)
	}

	frame := d.Frame()
	if got := frame.RGBAAt(30, 20); got.R < 250 || got.G > 5 || got.B > 5 {
		t.Errorf("image pixel %v, want red", got)
	}
	if got := frame.RGBAAt(60, 40); got != colourBlack {
		t.Errorf("pixel beside image %v, want background", got)
	}

	x2, y2 := im.End()
	if x2 != Px(50) || y2 != Px(30) {
		t.Errorf("End = (%v, %v), want (50px, 30px)", x2, y2)
	}
}

func TestImageScaleCache(t *testing.T) {
	win, _ := newTestWindow(t, 100, 100)
	im := NewImageFrom(win, image.NewRGBA(image.Rect(0, 0, 8, 8)), Px(0), Px(0), Coord{}, Coord{})

	a := im.picture(16, 16)
	if b := im.picture(16, 16); a != b {
		t.Error("same size was scaled again")
	}
	if c := im.picture(4, 4); c == a || c.Bounds().Dx() != 4 {
		t.Errorf("new size not rescaled: %v", c.Bounds())
	}
}

func TestImageErrors(t *testing.T) {
	win, _ := newTestWindow(t, 10, 10)

	_, err := NewImage(win, filepath.Join(t.TempDir(), "missing.png"), Px(0), Px(0), Coord{}, Coord{})
	if err == nil || !strings.Contains(err.Error(), "failed to open image") {
		t.Errorf("missing file: %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(bad, []byte("not a picture"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = NewImage(win, bad, Px(0), Px(0), Coord{}, Coord{})
	if err == nil || !strings.Contains(err.Error(), "failed to decode image") {
		t.Errorf("undecodable file: %v", err)
	}

	if n := len(win.Shapes()); n != 0 {
		t.Errorf("%d shapes added by failed loads", n)
	}
}
