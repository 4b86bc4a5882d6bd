package graphica

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Text is a single line of text anchored at its top-left corner in device
// space, whatever the window's origin convention.
type Text struct {
	HitState

	X, Y Coord
	// Size is the font size, relative to the window height when given as a
	// percentage.
	Size    Coord
	Colour  color.Color
	Content string
	Font    *Font
	Visible bool

	window *Window
}

// NewText adds a text to w in the default font.
func NewText(w *Window, x, y, size Coord, colour color.Color, content string) *Text {
	t := newText(w, x, y, size, colour, content)
	w.add(t)
	return t
}

func newText(w *Window, x, y, size Coord, colour color.Color, content string) *Text {
	return &Text{
		X: x, Y: y,
		Size:    size,
		Colour:  colour,
		Content: content,
		Font:    DefaultFont(),
		Visible: true,
		window:  w,
	}
}

func (t *Text) face() font.Face {
	f := t.Font
	if f == nil {
		f = DefaultFont()
	}
	return f.Face(t.Size.Height(t.window.height))
}

// Extent returns the rendered width and height of the text in pixels.
func (t *Text) Extent() (int, int) {
	return measure(t.face(), t.Content)
}

func measure(face font.Face, s string) (int, int) {
	return font.MeasureString(face, s).Ceil(), face.Metrics().Height.Ceil()
}

func (t *Text) Bounds() image.Rectangle {
	x, y := t.window.ToDevice(t.X, t.Y)
	w, h := t.Extent()
	return image.Rect(x, y, x+w, y+h)
}

// End returns the corner opposite (X, Y) in pixels of the window's origin
// convention.
func (t *Text) End() (Coord, Coord) {
	r := t.Bounds()
	return t.window.FromDevice(r.Max.X, r.Max.Y)
}

func (t *Text) shown() bool { return t.Visible }

func (t *Text) display(dc *gg.Context) {
	r := t.Bounds()
	t.Update(r, t.window.pointer)
	if t.Content == "" || t.Colour == nil {
		return
	}
	face := t.face()
	dc.SetFontFace(face)
	dc.SetColor(t.Colour)
	dc.DrawString(t.Content, float64(r.Min.X), float64(r.Min.Y+face.Metrics().Ascent.Ceil()))
}
