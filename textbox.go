package graphica

import (
	"image"

	"github.com/fogleman/gg"
)

// TextBox is a single-line input field. Clicking it focuses it; while focused
// it takes the window's key presses.
type TextBox struct {
	X, Y Coord
	Size Coord
	// MinWidth is the box width while the text is narrower, relative to the
	// window width when given as a percentage.
	MinWidth    Coord
	Content     string
	Placeholder string
	Visible     bool

	window  *Window
	text    *Text
	box     *Rect
	caret   int
	seen    string
	history history
}

// NewTextBox adds an empty text box to w.
func NewTextBox(w *Window, x, y, size, minWidth Coord) *TextBox {
	tb := &TextBox{
		X: x, Y: y,
		Size:        size,
		MinWidth:    minWidth,
		Placeholder: defaultPlaceholder,
		Visible:     true,
		window:      w,
	}
	// The parts are drawn by the text box, not by the window.
	tb.text = newText(w, x, y, size, colourBlack, " "+tb.Placeholder)
	tb.box = newRect(w, x, y, x, y, colourWhite, colourBlack)
	w.add(tb)
	return tb
}

// Hit returns the flags of the box part: Clicked means focused.
func (tb *TextBox) Hit() *HitState { return &tb.box.HitState }

// Focused reports whether the text box takes key presses.
func (tb *TextBox) Focused() bool { return tb.box.Clicked }

// Caret returns the caret position in runes.
func (tb *TextBox) Caret() int { return tb.caret }

// SetContent replaces the text and forgets the edit history.
func (tb *TextBox) SetContent(s string) {
	tb.Content = s
	tb.seen = s
	tb.caret = len([]rune(s))
	tb.history.clear()
}

func (tb *TextBox) Bounds() image.Rectangle {
	tb.layout()
	return tb.box.Bounds()
}

func (tb *TextBox) shown() bool { return tb.Visible }

// layout places the parts: the box starts at (X, Y), is as tall as the text
// and as wide as the wider of the text and MinWidth.
func (tb *TextBox) layout() {
	tb.text.X, tb.text.Y, tb.text.Size = tb.X, tb.Y, tb.Size
	tb.box.X1, tb.box.Y1 = tb.X, tb.Y

	if tb.Content == "" {
		tb.text.Content = " " + tb.Placeholder
		tb.text.Colour = colourPlaceholder
	} else {
		tb.text.Content = " " + tb.Content
		tb.text.Colour = colourBlack
	}

	r := tb.text.Bounds()
	if minWidth := tb.MinWidth.Width(tb.window.width); minWidth > r.Dx() {
		r.Max.X = r.Min.X + minWidth
	}
	tb.box.X2, tb.box.Y2 = tb.window.FromDevice(r.Max.X, r.Max.Y)
}

func (tb *TextBox) display(dc *gg.Context) {
	if tb.box.Clicked {
		tb.edit(tb.window.Presses())
	}

	switch {
	case tb.box.Clicked:
		tb.box.BorderThickness = 2
		tb.box.Border = colourRed
	case tb.box.Hover:
		tb.box.BorderThickness = 1
		tb.box.Border = colourRed
	default:
		tb.box.BorderThickness = 1
		tb.box.Border = colourBlack
	}

	tb.layout()
	tb.box.display(dc)
	tb.text.display(dc)
	if tb.box.Clicked {
		tb.drawCaret(dc)
	}
}

// edit applies one frame of key presses in the order they arrived. A CTRL
// press makes the next press a shortcut.
func (tb *TextBox) edit(presses []KeyPress) {
	content := []rune(tb.Content)
	if tb.Content != tb.seen {
		// Content was assigned directly; type after it.
		tb.caret = len(content)
		tb.history.clear()
	}

	ctrl := false
	for _, p := range presses {
		if p.Command && p.Key == KeyCtrl {
			ctrl = true
			continue
		}
		chord := ctrl
		ctrl = false

		if !p.Command {
			if chord {
				content = tb.shortcut(content, p.Key)
			} else {
				content = tb.insert(content, p.Key)
			}
			continue
		}

		switch p.Key {
		case KeyBackspace:
			if tb.caret > 0 {
				tb.history.record(Action{Type: ActionDelete, Pos: tb.caret - 1, Text: string(content[tb.caret-1])})
				content = removeRunes(content, tb.caret-1, 1)
				tb.caret--
			}
		case KeyDelete:
			if tb.caret < len(content) {
				tb.history.record(Action{Type: ActionDelete, Pos: tb.caret, Text: string(content[tb.caret])})
				content = removeRunes(content, tb.caret, 1)
			}
		case KeyLeft, KeyRight, KeyHome, KeyEnd, KeyUp, KeyDown:
			tb.caret = moveCaret(p.Key, tb.caret, len(content))
		}
	}
	tb.Content = string(content)
	tb.seen = tb.Content
}

// shortcut applies CTRL+key. Keys without a shortcut do nothing.
func (tb *TextBox) shortcut(content []rune, key string) []rune {
	switch key {
	case "v", "V":
		content = tb.insert(content, tb.paste())
	case "z", "Z":
		content, tb.caret = tb.history.undo(content, tb.caret)
	case "y", "Y":
		content, tb.caret = tb.history.redo(content, tb.caret)
	}
	return content
}

func (tb *TextBox) insert(content []rune, s string) []rune {
	if s == "" {
		return content
	}
	add := []rune(s)
	tb.history.record(Action{Type: ActionInsert, Pos: tb.caret, Text: s})
	content = insertRunes(content, tb.caret, add)
	tb.caret += len(add)
	return content
}

func (tb *TextBox) paste() string {
	raw, err := readClipboard()
	if err != nil {
		Logger().Warn("clipboard read failed", "err", err)
		return ""
	}
	return pasteText(raw)
}

func (tb *TextBox) drawCaret(dc *gg.Context) {
	r := tb.text.Bounds()
	content := []rune(tb.Content)
	prefix := " " + string(content[:clampCaret(tb.caret, len(content))])
	w, h := measure(tb.text.face(), prefix)
	x := float64(r.Min.X + w)
	dc.SetColor(colourBlack)
	dc.SetLineWidth(1)
	dc.DrawLine(x, float64(r.Min.Y+1), x, float64(r.Min.Y+h-1))
	dc.Stroke()
}
