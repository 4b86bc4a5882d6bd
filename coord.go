package graphica

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var originNames = map[Origin]string{
	OriginTopLeft:     "top-left",
	OriginTopRight:    "top-right",
	OriginBottomLeft:  "bottom-left",
	OriginBottomRight: "bottom-right",
	OriginCenter:      "center",
}

func (o Origin) String() string {
	if name, ok := originNames[o]; ok {
		return name
	}
	return "origin(" + strconv.Itoa(int(o)) + ")"
}

func (o Origin) valid() bool {
	return o >= OriginTopLeft && o <= OriginCenter
}

// ParseOrigin accepts the origin's name, a short form such as "tl" or "c",
// or its number.
func ParseOrigin(s string) (Origin, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top-left", "topleft", "tl", "0":
		return OriginTopLeft, nil
	case "top-right", "topright", "tr", "1":
		return OriginTopRight, nil
	case "bottom-left", "bottomleft", "bl", "2":
		return OriginBottomLeft, nil
	case "bottom-right", "bottomright", "br", "3":
		return OriginBottomRight, nil
	case "center", "centre", "c", "4":
		return OriginCenter, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOrigin, s)
}

// Coord is a single position or length, either in absolute pixels or as a
// percentage of the window's width or height.
type Coord struct {
	px  int
	pct float64
	rel bool
}

// Px returns an absolute pixel coordinate.
func Px(v int) Coord { return Coord{px: v} }

// Pct returns a coordinate relative to the window size, in percent.
func Pct(v float64) Coord { return Coord{pct: v, rel: true} }

// ParseCoord reads "12px" as pixels and "12%" or a bare "12" as a percentage.
func ParseCoord(s string) (Coord, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "px") {
		v, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(s, "px")))
		if err != nil {
			return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoord, s)
		}
		return Px(v), nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoord, s)
	}
	return Pct(v), nil
}

// MustCoord is like ParseCoord but panics on malformed input. It is meant for
// literals in program source.
func MustCoord(s string) Coord {
	c, err := ParseCoord(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Coord) Relative() bool { return c.rel }

// IsZero reports whether c is the zero Coord, which shapes treat as unset.
func (c Coord) IsZero() bool { return c == Coord{} }

func (c Coord) String() string {
	if c.rel {
		return strconv.FormatFloat(c.pct, 'f', -1, 64) + "%"
	}
	return strconv.Itoa(c.px) + "px"
}

// Width converts c, read as a length along the x axis, to pixels.
func (c Coord) Width(w int) int {
	if c.rel {
		return int(float64(w) * (c.pct / 100))
	}
	return c.px
}

// Height converts c, read as a length along the y axis, to pixels.
func (c Coord) Height(h int) int {
	if c.rel {
		return int(float64(h) * (c.pct / 100))
	}
	return c.px
}

// RelWidth expresses a pixel width as a whole percentage of w.
func RelWidth(w, px int) Coord {
	if w == 0 {
		return Pct(0)
	}
	return Pct(float64(int(100 * float64(px) / float64(w))))
}

// RelHeight expresses a pixel height as a whole percentage of h.
func RelHeight(h, px int) Coord {
	if h == 0 {
		return Pct(0)
	}
	return Pct(float64(int(100 * float64(px) / float64(h))))
}

// ToDevice maps (x, y) given in the origin convention o to top-left-origin
// device pixels of a w by h frame.
func ToDevice(o Origin, w, h int, x, y Coord) (int, int) {
	return deviceX(o, w, x), deviceY(o, h, y)
}

func deviceX(o Origin, w int, x Coord) int {
	if x.rel {
		switch o {
		case OriginTopRight, OriginBottomRight:
			return int(float64(w) * ((100 - x.pct) / 100))
		case OriginCenter:
			return int(float64(w) * ((50 + x.pct) / 100))
		default:
			return int(float64(w) * x.pct / 100)
		}
	}
	switch o {
	case OriginTopRight, OriginBottomRight:
		return w - x.px
	case OriginCenter:
		return w/2 + x.px
	default:
		return x.px
	}
}

func deviceY(o Origin, h int, y Coord) int {
	if y.rel {
		switch o {
		case OriginBottomLeft, OriginBottomRight:
			return int(float64(h) * ((100 - y.pct) / 100))
		case OriginCenter:
			return int(float64(h) * ((50 - y.pct) / 100))
		default:
			return int(float64(h) * y.pct / 100)
		}
	}
	switch o {
	case OriginBottomLeft, OriginBottomRight:
		return h - y.px
	case OriginCenter:
		return h/2 - y.px
	default:
		return y.px
	}
}

// FromDevice is the inverse of ToDevice for pixel coordinates.
func FromDevice(o Origin, w, h, dx, dy int) (Coord, Coord) {
	x, y := dx, dy
	switch o {
	case OriginTopRight:
		x = w - dx
	case OriginBottomLeft:
		y = h - dy
	case OriginBottomRight:
		x, y = w-dx, h-dy
	case OriginCenter:
		x, y = dx-w/2, h/2-dy
	}
	return Px(x), Px(y)
}
