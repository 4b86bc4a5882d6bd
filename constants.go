package graphica

import "image/color"

type Origin int

const (
	OriginTopLeft Origin = iota
	OriginTopRight
	OriginBottomLeft
	OriginBottomRight
	OriginCenter
)

// Command key names reported by Window.Commands.
const (
	KeyCaps      = "CAPS"
	KeyEnter     = "ENTER"
	KeyShift     = "SHIFT"
	KeyCtrl      = "CTRL"
	KeyEscape    = "ESCAPE"
	KeyDelete    = "DEL"
	KeyTab       = "TAB"
	KeyAlt       = "ALT"
	KeyLeft      = "LEFT"
	KeyRight     = "RIGHT"
	KeyUp        = "UP"
	KeyDown      = "DOWN"
	KeyHome      = "HOME"
	KeyEnd       = "END"
	KeyBackspace = "BACKSPACE"
)

const (
	defaultTitle       = "graphica"
	defaultWidth       = 800
	defaultHeight      = 600
	defaultFPS         = 30
	defaultPlaceholder = "Type here..."
	defaultFontName    = "Regular"
)

var (
	colourBlack       = color.RGBA{0, 0, 0, 255}
	colourWhite       = color.RGBA{255, 255, 255, 255}
	colourRed         = color.RGBA{255, 0, 0, 255}
	colourPlaceholder = color.RGBA{100, 100, 100, 255}
)
