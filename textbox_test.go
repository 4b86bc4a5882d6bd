package graphica

import (
	"errors"
	"testing"
)

type textBoxFixture struct {
	t   *testing.T
	win *Window
	d   *Headless
	tb  *TextBox
}

func newTextBoxFixture(t *testing.T) *textBoxFixture {
	t.Helper()
	win, d := newTestWindow(t, 300, 100)
	tb := NewTextBox(win, Px(10), Px(10), Px(20), Px(100))
	return &textBoxFixture{t: t, win: win, d: d, tb: tb}
}

// click presses and releases the button at (x, y) over two frames.
func (f *textBoxFixture) click(x, y int) {
	f.t.Helper()
	f.d.Push(Input{MouseX: x, MouseY: y, MouseDown: true})
	update(f.t, f.win)
	f.d.Push(Input{MouseX: x, MouseY: y})
	update(f.t, f.win)
}

func (f *textBoxFixture) focus() {
	f.t.Helper()
	f.click(50, 20)
	if !f.tb.Focused() {
		f.t.Fatal("click inside did not focus the text box")
	}
}

// press sends comms followed by keys in one frame.
func (f *textBoxFixture) press(keys []string, comms ...string) {
	f.t.Helper()
	f.send(append(Command(comms...), Press(keys...)...)...)
}

// send delivers presses in one frame, in the given order.
func (f *textBoxFixture) send(presses ...KeyPress) {
	f.t.Helper()
	f.d.Push(Input{MouseX: 50, MouseY: 20, Presses: presses})
	update(f.t, f.win)
}

func (f *textBoxFixture) want(content string) {
	f.t.Helper()
	if f.tb.Content != content {
		f.t.Fatalf("content %q, want %q", f.tb.Content, content)
	}
}

func TestTextBoxFocus(t *testing.T) {
	f := newTextBoxFixture(t)
	f.press([]string{"a"})
	f.want("")

	f.focus()
	if !f.tb.Hit().Clicked {
		t.Error("Hit does not report the focus")
	}
	if f.tb.box.BorderThickness != 2 || f.tb.box.Border != colourRed {
		t.Errorf("focused border %v/%v", f.tb.box.Border, f.tb.box.BorderThickness)
	}

	f.click(250, 80)
	if f.tb.Focused() {
		t.Fatal("click outside did not unfocus")
	}
	f.press([]string{"a"})
	f.want("")
}

func TestTextBoxTyping(t *testing.T) {
	f := newTextBoxFixture(t)
	f.focus()

	f.press([]string{"h", "i"})
	f.want("hi")
	if f.tb.Caret() != 2 {
		t.Errorf("caret %d after typing, want 2", f.tb.Caret())
	}

	f.press(nil, KeyBackspace)
	f.want("h")

	f.press([]string{"x"}, KeyLeft)
	f.want("xh")

	f.press([]string{"y"}, KeyEnd)
	f.want("xhy")

	f.press(nil, KeyHome, KeyDelete)
	f.want("hy")

	f.press([]string{"a"}, KeyShift)
	f.want("Ahy")
}

func TestTextBoxPressOrder(t *testing.T) {
	f := newTextBoxFixture(t)
	f.focus()
	f.press([]string{"x", "y"})

	f.send(KeyPress{Key: "a"}, KeyPress{Key: KeyBackspace, Command: true})
	f.want("xy")

	f.send(KeyPress{Key: KeyBackspace, Command: true}, KeyPress{Key: "b"})
	f.want("xb")

	f.send(KeyPress{Key: KeyLeft, Command: true}, KeyPress{Key: "c"}, KeyPress{Key: KeyEnd, Command: true}, KeyPress{Key: "d"})
	f.want("xcbd")
}

func TestTextBoxShortcutOnlyTakesNextKey(t *testing.T) {
	f := newTextBoxFixture(t)
	f.focus()
	f.press([]string{"a"})

	f.send(KeyPress{Key: "b"}, KeyPress{Key: KeyCtrl, Command: true}, KeyPress{Key: "z"}, KeyPress{Key: "q"})
	f.want("aq")

	f.send(KeyPress{Key: KeyCtrl, Command: true}, KeyPress{Key: "x"}, KeyPress{Key: "r"})
	f.want("aqr")
}

func TestTextBoxUndoRedo(t *testing.T) {
	f := newTextBoxFixture(t)
	f.focus()

	f.press([]string{"a", "b"})
	f.press(nil, KeyBackspace)
	f.want("a")

	f.press([]string{"z"}, KeyCtrl)
	f.want("ab")
	f.press([]string{"z"}, KeyCtrl)
	f.want("a")
	f.press([]string{"y"}, KeyCtrl)
	f.want("ab")

	// A new edit drops what could be redone.
	f.press([]string{"z"}, KeyCtrl)
	f.press([]string{"c"})
	f.want("ac")
	f.press([]string{"y"}, KeyCtrl)
	f.want("ac")
}

func TestTextBoxPaste(t *testing.T) {
	orig := readClipboard
	t.Cleanup(func() { readClipboard = orig })

	f := newTextBoxFixture(t)
	f.focus()

	readClipboard = func() (string, error) { return "a\nb\r\n", nil }
	f.press([]string{"v"}, KeyCtrl)
	f.want("a b")

	readClipboard = func() (string, error) { return "", errors.New("no clipboard") }
	f.press([]string{"v"}, KeyCtrl)
	f.want("a b")
}

func TestTextBoxDirectContent(t *testing.T) {
	f := newTextBoxFixture(t)
	f.focus()
	f.press([]string{"a", "b"})
	f.press(nil, KeyHome)

	f.tb.Content = "xyz"
	f.press([]string{"!"})
	f.want("xyz!")

	f.tb.SetContent("new")
	f.press([]string{"?"})
	f.want("new?")
}

func TestTextBoxLayout(t *testing.T) {
	f := newTextBoxFixture(t)
	update(t, f.win)

	if f.tb.text.Content != " "+defaultPlaceholder || f.tb.text.Colour != colourPlaceholder {
		t.Errorf("placeholder shown as %q in %v", f.tb.text.Content, f.tb.text.Colour)
	}
	r := f.tb.Bounds()
	if r.Min.X != 10 || r.Min.Y != 10 {
		t.Errorf("box starts at %v, want (10,10)", r.Min)
	}
	if w, _ := f.tb.text.Extent(); r.Dx() != max(100, w) {
		t.Errorf("box width %d, want max(100, %d)", r.Dx(), w)
	}

	f.tb.Content = "a considerably longer line of text"
	r = f.tb.Bounds()
	if w, _ := f.tb.text.Extent(); r.Dx() != w || w <= 100 {
		t.Errorf("box width %d for text width %d", r.Dx(), w)
	}
	if f.tb.text.Colour != colourBlack {
		t.Errorf("content colour %v", f.tb.text.Colour)
	}

	if got := f.win.ShapeAt(50, 20); got != f.tb {
		t.Errorf("ShapeAt over text box = %v", got)
	}
}
