package graphica

// Layers is the draw list of a window. Shapes are drawn in order, so the first
// shape is at the back and the last one is in front.
type Layers struct {
	shapes []Shape
}

func (l *Layers) Add(s Shape) {
	l.shapes = append(l.shapes, s)
}

// Index returns the position of s, or -1.
func (l *Layers) Index(s Shape) int {
	for i, have := range l.shapes {
		if have == s {
			return i
		}
	}
	return -1
}

// Remove drops s from the list. Removing a shape that is not present is a no-op.
func (l *Layers) Remove(s Shape) bool {
	i := l.Index(s)
	if i < 0 {
		return false
	}
	l.shapes = append(l.shapes[:i], l.shapes[i+1:]...)
	return true
}

// ToFront moves s to the end of the list so it is drawn over everything else.
func (l *Layers) ToFront(s Shape) error {
	if !l.Remove(s) {
		return ErrShapeNotFound
	}
	l.shapes = append(l.shapes, s)
	return nil
}

// ToBack moves s to the start of the list so everything else is drawn over it.
func (l *Layers) ToBack(s Shape) error {
	if !l.Remove(s) {
		return ErrShapeNotFound
	}
	l.shapes = append([]Shape{s}, l.shapes...)
	return nil
}

func (l *Layers) Len() int { return len(l.shapes) }

// Shapes returns a copy of the list in draw order.
func (l *Layers) Shapes() []Shape {
	out := make([]Shape, len(l.shapes))
	copy(out, l.shapes)
	return out
}

func (l *Layers) Clear() {
	l.shapes = nil
}
