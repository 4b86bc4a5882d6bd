package graphica

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Line is a straight segment between (X1, Y1) and (X2, Y2).
type Line struct {
	X1, Y1, X2, Y2 Coord
	Colour         color.Color
	Thickness      float64
	Visible        bool

	window *Window
}

// NewLine adds a line to w.
func NewLine(w *Window, x1, y1, x2, y2 Coord, colour color.Color) *Line {
	l := &Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Colour: colour, Thickness: 1, Visible: true, window: w}
	w.add(l)
	return l
}

func (l *Line) Bounds() image.Rectangle {
	return span(l.window, l.X1, l.Y1, l.X2, l.Y2)
}

func (l *Line) shown() bool { return l.Visible }

func (l *Line) display(dc *gg.Context) {
	r := l.Bounds()
	strokeLine(dc, l.Colour, l.Thickness, r.Min, r.Max)
}

func strokeLine(dc *gg.Context, c color.Color, thickness float64, from, to image.Point) {
	if c == nil || thickness <= 0 {
		return
	}
	dc.SetColor(c)
	dc.SetLineWidth(thickness)
	dc.DrawLine(float64(from.X), float64(from.Y), float64(to.X), float64(to.Y))
	dc.Stroke()
}
