package graphica

import (
	"context"
	"errors"
	"image"
	"image/color"
	"time"

	"github.com/fogleman/gg"
)

// Window owns the shapes drawn into it and the input state they read.
// A Window is driven by one goroutine calling Update; it is not safe for
// concurrent use.
type Window struct {
	Title      string
	Origin     Origin
	Background color.Color
	// Resizable windows follow the size the driver reports. Fixed windows keep
	// their configured size.
	Resizable bool

	driver  Driver
	fps     int
	width   int
	height  int
	pointer Pointer
	keys    keyState
	layers  Layers
	canvas  *image.RGBA
	dc      *gg.Context
	running bool
	closed  bool
	frame   uint64
}

// NewWindow opens a window on the terminal with the default configuration.
func NewWindow(opts ...Option) (*Window, error) {
	return Open(context.Background(), DefaultConfig(), opts...)
}

// Open opens a window configured by cfg and opts. Without WithDriver the window
// takes over the terminal until Close is called or ctx is cancelled.
func Open(ctx context.Context, cfg Config, opts ...Option) (*Window, error) {
	o := windowOptions{config: cfg}
	for _, opt := range opts {
		opt(&o)
	}
	cfg = o.config
	if o.logger != nil {
		SetLogger(o.logger)
	}
	if !cfg.Origin.valid() {
		return nil, ErrInvalidOrigin
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = defaultWidth, defaultHeight
	}
	if cfg.FPS <= 0 {
		cfg.FPS = defaultFPS
	}
	if cfg.Background == nil {
		cfg.Background = colourBlack
	}
	if cfg.FontDir != "" {
		AddFontDir(cfg.FontDir)
	}

	driver := o.driver
	if driver == nil {
		t, err := StartTerminal(ctx, cfg.Title)
		if err != nil {
			return nil, err
		}
		driver = t
	}

	w := &Window{
		Title:      cfg.Title,
		Origin:     cfg.Origin,
		Background: cfg.Background,
		Resizable:  cfg.Resizable,
		driver:     driver,
		fps:        cfg.FPS,
		running:    true,
	}
	w.resize(cfg.Width, cfg.Height)
	Logger().Debug("window opened", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height, "origin", cfg.Origin)
	return w, nil
}

func (w *Window) resize(width, height int) {
	w.width, w.height = width, height
	w.canvas = image.NewRGBA(image.Rect(0, 0, width, height))
	w.dc = gg.NewContextForRGBA(w.canvas)
}

// Running reports whether the window is still open. It turns false when the
// user closes the window or after Close.
func (w *Window) Running() bool {
	return w.running && !w.closed
}

// Update polls input, updates the state of every shape, draws the visible
// shapes back to front and presents the frame.
func (w *Window) Update() error {
	if w.closed {
		return ErrWindowClosed
	}
	in, err := w.driver.Poll()
	if err != nil {
		w.running = false
		return err
	}
	if in.Closed {
		w.running = false
	}
	if w.Resizable && in.Width > 0 && in.Height > 0 && (in.Width != w.width || in.Height != w.height) {
		Logger().Debug("window resized", "width", in.Width, "height", in.Height)
		w.resize(in.Width, in.Height)
	}

	w.pointer = w.pointer.advance(in.MouseX, in.MouseY, in.MouseDown)
	w.keys.advance(in.Presses)

	w.dc.SetColor(w.Background)
	w.dc.Clear()
	for _, s := range w.layers.Shapes() {
		if s.shown() {
			s.display(w.dc)
		}
	}
	w.frame++
	return w.driver.Present(w.canvas)
}

// Loop calls fn and then Update once per frame until the window stops
// running, ctx is done, or either call fails.
func (w *Window) Loop(ctx context.Context, fn func(*Window) error) error {
	interval := time.Second / time.Duration(w.fps)
	if interval <= 0 {
		interval = time.Nanosecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for w.Running() {
		if fn != nil {
			if err := fn(w); err != nil {
				return err
			}
		}
		if err := w.Update(); err != nil {
			if errors.Is(err, ErrWindowClosed) {
				return nil
			}
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

// Close releases the driver. Shapes stay in the list but are never drawn again.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.running = false
	return w.driver.Close()
}

func (w *Window) Width() int  { return w.width }
func (w *Window) Height() int { return w.height }

// Size returns the frame size in device pixels.
func (w *Window) Size() (int, int) { return w.width, w.height }

// Frame counts the frames presented so far.
func (w *Window) Frame() uint64 { return w.frame }

// Pointer returns the mouse state of the current frame.
func (w *Window) Pointer() Pointer { return w.pointer }

func (w *Window) MouseX() int { return w.pointer.X }
func (w *Window) MouseY() int { return w.pointer.Y }

// MouseDown reports whether the left button is down this frame.
func (w *Window) MouseDown() bool { return w.pointer.Down }

// MouseHeld reports whether the left button has been down for at least two
// consecutive frames.
func (w *Window) MouseHeld() bool { return w.pointer.Held }

// Presses returns this frame's key presses in arrival order, with printable
// keys already shifted.
func (w *Window) Presses() []KeyPress { return w.keys.presses }

// Keys returns the distinct printable keys pressed this frame.
func (w *Window) Keys() []string { return w.keys.keys }

// KeyChanges returns the printable key presses of this frame in order.
func (w *Window) KeyChanges() []string { return w.keys.keyChanges }

// Commands returns the distinct command keys pressed this frame.
func (w *Window) Commands() []string { return w.keys.comms }

// CommandChanges returns the command key presses of this frame in order.
func (w *Window) CommandChanges() []string { return w.keys.commChanges }

// Caps reports whether caps lock is on. It toggles on every CAPS press.
func (w *Window) Caps() bool { return w.keys.caps }

func (w *Window) SetCaps(on bool) { w.keys.caps = on }

// ToDevice converts a position in the window's origin convention to device
// pixels.
func (w *Window) ToDevice(x, y Coord) (int, int) {
	return ToDevice(w.Origin, w.width, w.height, x, y)
}

// FromDevice converts device pixels to pixel coordinates in the window's
// origin convention.
func (w *Window) FromDevice(dx, dy int) (Coord, Coord) {
	return FromDevice(w.Origin, w.width, w.height, dx, dy)
}

func (w *Window) add(s Shape) { w.layers.Add(s) }

// Delete removes s from the window. Deleting an absent shape does nothing.
func (w *Window) Delete(s Shape) { w.layers.Remove(s) }

// ToFront draws s after every other shape.
func (w *Window) ToFront(s Shape) error { return w.layers.ToFront(s) }

// ToBack draws s before every other shape.
func (w *Window) ToBack(s Shape) error { return w.layers.ToBack(s) }

// Shapes returns the window's shapes in draw order.
func (w *Window) Shapes() []Shape { return w.layers.Shapes() }

// ShapeAt returns the front-most visible interactive shape under the device
// point (x, y), or nil.
func (w *Window) ShapeAt(x, y int) Shape {
	shapes := w.layers.Shapes()
	for i := len(shapes) - 1; i >= 0; i-- {
		s := shapes[i]
		if _, ok := s.(Interactive); !ok || !s.shown() {
			continue
		}
		if contains(s.Bounds().Canon(), x, y) {
			return s
		}
	}
	return nil
}
