package graphica

import (
	"image"

	"github.com/fogleman/gg"
)

// Shape is one of *Line, *Rect, *Text, *TextBox or *Image.
type Shape interface {
	// Bounds returns the device-pixel rectangle the shape covers in its
	// window's current size.
	Bounds() image.Rectangle
	shown() bool
	// display updates per-frame state and draws the shape.
	display(dc *gg.Context)
}

// Interactive shapes track hover and clicked flags.
type Interactive interface {
	Shape
	Hit() *HitState
}

// Collision reports whether the device bounds of a and b overlap. Shapes that
// only touch along an edge collide.
func Collision(a, b Shape) bool {
	ra, rb := a.Bounds().Canon(), b.Bounds().Canon()
	if ra.Max.X < rb.Min.X || rb.Max.X < ra.Min.X {
		return false
	}
	if ra.Max.Y < rb.Min.Y || rb.Max.Y < ra.Min.Y {
		return false
	}
	return true
}

// span returns the device rectangle between two user positions without
// reordering its corners.
func span(w *Window, x1, y1, x2, y2 Coord) image.Rectangle {
	sx, sy := w.ToDevice(x1, y1)
	ex, ey := w.ToDevice(x2, y2)
	return image.Rectangle{Min: image.Pt(sx, sy), Max: image.Pt(ex, ey)}
}
