package graphica

import (
	"image"
	"testing"
)

func TestPointerAdvance(t *testing.T) {
	var p Pointer
	steps := []struct {
		down        bool
		wantHeld    bool
		wantPressed bool
	}{
		{false, false, false},
		{true, false, true},
		{true, true, false},
		{true, true, false},
		{false, false, false},
		{true, false, true},
	}
	for i, s := range steps {
		p = p.advance(0, 0, s.down)
		if p.Held != s.wantHeld || p.Pressed() != s.wantPressed {
			t.Errorf("step %d: held=%v pressed=%v, want held=%v pressed=%v", i, p.Held, p.Pressed(), s.wantHeld, s.wantPressed)
		}
	}
}

func TestHitStateHoverIsStrict(t *testing.T) {
	bounds := image.Rect(10, 10, 20, 20)
	tests := []struct {
		x, y int
		want bool
	}{
		{15, 15, true},
		{11, 19, true},
		{10, 15, false},
		{20, 15, false},
		{15, 10, false},
		{15, 20, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		var s HitState
		s.Update(bounds, Pointer{X: tt.x, Y: tt.y})
		if s.Hover != tt.want {
			t.Errorf("hover at (%d, %d) = %v, want %v", tt.x, tt.y, s.Hover, tt.want)
		}
	}
}

func TestHitStateReversedBounds(t *testing.T) {
	var s HitState
	s.Update(image.Rectangle{Min: image.Pt(20, 20), Max: image.Pt(10, 10)}, Pointer{X: 15, Y: 15})
	if !s.Hover {
		t.Error("corners given in reverse order should still hover")
	}
}

func TestHitStateClickTransitions(t *testing.T) {
	bounds := image.Rect(10, 10, 20, 20)
	in, out := image.Pt(15, 15), image.Pt(50, 50)

	steps := []struct {
		name string
		at   image.Point
		down bool
		want bool
	}{
		{"hover without button", in, false, false},
		{"press inside", in, true, true},
		{"hold inside", in, true, true},
		{"release", in, false, true},
		{"move away", out, false, true},
		{"press outside clears", out, true, false},
		{"drag inside while held", in, true, false},
		{"release inside", in, false, false},
		{"press inside again", in, true, true},
		{"release", in, false, true},
		{"press inside while clicked toggles off", in, true, false},
	}

	var s HitState
	var p Pointer
	for _, step := range steps {
		p = p.advance(step.at.X, step.at.Y, step.down)
		s.Update(bounds, p)
		if s.Clicked != step.want {
			t.Fatalf("%s: clicked = %v, want %v", step.name, s.Clicked, step.want)
		}
	}
}
