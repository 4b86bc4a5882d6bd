package graphica

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Rect is an axis-aligned rectangle between two corners. Either corner may be
// the top-left one.
type Rect struct {
	HitState

	X1, Y1, X2, Y2 Coord
	// Fill is the interior colour; nil leaves the interior empty.
	Fill color.Color
	// Border is the outline colour; nil draws no outline.
	Border          color.Color
	BorderThickness float64
	Visible         bool

	window *Window
}

// NewRect adds a rectangle to w. fill and border may be nil.
func NewRect(w *Window, x1, y1, x2, y2 Coord, fill, border color.Color) *Rect {
	r := newRect(w, x1, y1, x2, y2, fill, border)
	w.add(r)
	return r
}

func newRect(w *Window, x1, y1, x2, y2 Coord, fill, border color.Color) *Rect {
	return &Rect{
		X1: x1, Y1: y1, X2: x2, Y2: y2,
		Fill:            fill,
		Border:          border,
		BorderThickness: 1,
		Visible:         true,
		window:          w,
	}
}

func (r *Rect) Bounds() image.Rectangle {
	return span(r.window, r.X1, r.Y1, r.X2, r.Y2)
}

func (r *Rect) shown() bool { return r.Visible }

func (r *Rect) display(dc *gg.Context) {
	raw := r.Bounds()
	r.Update(raw, r.window.pointer)

	if r.Fill != nil {
		box := raw.Canon()
		dc.SetColor(r.Fill)
		dc.DrawRectangle(float64(box.Min.X), float64(box.Min.Y), float64(box.Dx()), float64(box.Dy()))
		dc.Fill()
	}
	if r.Border != nil {
		start, end := raw.Min, raw.Max
		strokeLine(dc, r.Border, r.BorderThickness, start, image.Pt(start.X, end.Y))
		strokeLine(dc, r.Border, r.BorderThickness, image.Pt(end.X, start.Y), end)
		strokeLine(dc, r.Border, r.BorderThickness, start, image.Pt(end.X, start.Y))
		strokeLine(dc, r.Border, r.BorderThickness, image.Pt(start.X, end.Y), end)
	}
}
