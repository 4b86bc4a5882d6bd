package graphica

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/fogleman/gg"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image draws a picture file scaled to Width by Height. When only one of the
// two is set the other follows the picture's aspect ratio; when neither is
// set the picture keeps its natural size.
type Image struct {
	HitState

	Path          string
	X, Y          Coord
	Width, Height Coord
	Visible       bool

	window *Window
	src    image.Image
	aspect float64
	scaled *image.RGBA
}

// NewImage decodes the picture at path and adds it to w. PNG, JPEG, GIF, BMP,
// TIFF and WebP files are understood.
func NewImage(w *Window, path string, x, y, width, height Coord) (*Image, error) {
	src, err := decodeImage(path)
	if err != nil {
		return nil, err
	}
	im := NewImageFrom(w, src, x, y, width, height)
	im.Path = path
	return im, nil
}

// NewImageFrom adds an already decoded picture to w.
func NewImageFrom(w *Window, src image.Image, x, y, width, height Coord) *Image {
	size := src.Bounds().Size()
	aspect := 1.0
	if size.Y > 0 {
		aspect = float64(size.X) / float64(size.Y)
	}
	im := &Image{
		X: x, Y: y,
		Width:   width,
		Height:  height,
		Visible: true,
		window:  w,
		src:     src,
		aspect:  aspect,
	}
	w.add(im)
	return im
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()
	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	Logger().Debug("image decoded", "path", path, "format", format, "size", src.Bounds().Size())
	return src, nil
}

// AspectRatio is the source picture's width over its height.
func (im *Image) AspectRatio() float64 { return im.aspect }

// Extent returns the drawn width and height in pixels.
func (im *Image) Extent() (int, int) {
	ww, wh := im.window.Size()
	switch {
	case !im.Width.IsZero() && !im.Height.IsZero():
		return im.Width.Width(ww), im.Height.Height(wh)
	case !im.Width.IsZero():
		w := im.Width.Width(ww)
		return w, int(float64(w) * (1 / im.aspect))
	case !im.Height.IsZero():
		h := im.Height.Height(wh)
		return int(float64(h) * im.aspect), h
	}
	size := im.src.Bounds().Size()
	return size.X, size.Y
}

func (im *Image) Bounds() image.Rectangle {
	x, y := im.window.ToDevice(im.X, im.Y)
	w, h := im.Extent()
	return image.Rect(x, y, x+w, y+h)
}

// End returns the corner opposite (X, Y) in pixels of the window's origin
// convention.
func (im *Image) End() (Coord, Coord) {
	r := im.Bounds()
	return im.window.FromDevice(r.Max.X, r.Max.Y)
}

func (im *Image) shown() bool { return im.Visible }

// picture returns the source scaled to w by h, rescaling only when the size
// changed since the last frame.
func (im *Image) picture(w, h int) *image.RGBA {
	if im.scaled != nil && im.scaled.Bounds().Dx() == w && im.scaled.Bounds().Dy() == h {
		return im.scaled
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), im.src, im.src.Bounds(), draw.Over, nil)
	im.scaled = dst
	Logger().Debug("image resized", "path", im.Path, "width", w, "height", h)
	return dst
}

func (im *Image) display(dc *gg.Context) {
	r := im.Bounds()
	im.Update(r, im.window.pointer)
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return
	}
	dc.DrawImage(im.picture(r.Dx(), r.Dy()), r.Min.X, r.Min.Y)
}
