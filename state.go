package graphica

import "image"

// Pointer is the mouse as seen by one frame.
type Pointer struct {
	X, Y int
	// Down is the left button state sampled this frame.
	Down bool
	// Held is true when the button was also down in the previous frame.
	Held bool
}

// Pressed reports the rising edge of the left button.
func (p Pointer) Pressed() bool {
	return p.Down && !p.Held
}

// advance returns the pointer for the next frame given the newly sampled
// cursor and button state.
func (p Pointer) advance(x, y int, down bool) Pointer {
	return Pointer{X: x, Y: y, Down: down, Held: p.Down && down}
}

// HitState carries the hover and clicked flags of an interactive shape.
type HitState struct {
	Hover   bool
	Clicked bool
}

// Update recomputes the flags from the shape's device bounds and the pointer.
//
// Clicked is set on a rising edge inside the bounds and cleared by any other
// rising edge, including one on the shape while it is already clicked.
func (s *HitState) Update(bounds image.Rectangle, p Pointer) {
	s.Hover = contains(bounds.Canon(), p.X, p.Y)
	if !p.Pressed() {
		return
	}
	s.Clicked = s.Hover && !s.Clicked
}

// contains is strict: a cursor on the edge is outside.
func contains(r image.Rectangle, x, y int) bool {
	return r.Min.X < x && x < r.Max.X && r.Min.Y < y && y < r.Max.Y
}

// Hit gives access to the flags through the Interactive interface.
func (s *HitState) Hit() *HitState {
	return s
}
