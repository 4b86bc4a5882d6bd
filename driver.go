package graphica

import (
	"image"
	"sync"
)

// Driver is the platform side of a window: it reports input and shows frames.
type Driver interface {
	// Poll returns the input gathered since the previous call.
	Poll() (Input, error)
	// Present shows a finished frame. The driver must not keep frame after
	// returning.
	Present(frame *image.RGBA) error
	Close() error
}

// Headless is a Driver without a screen. Input is scripted with Push and the
// last presented frame is kept for inspection.
type Headless struct {
	mu     sync.Mutex
	width  int
	height int
	mouseX int
	mouseY int
	down   bool
	queue  []Input
	last   *image.RGBA
	frames int
	closed bool
}

// NewHeadless returns a driver with a fixed w by h frame.
func NewHeadless(w, h int) *Headless {
	return &Headless{width: w, height: h}
}

// Push queues input for the next Poll. A zero Width or Height keeps the
// current size. Mouse fields always replace the current pointer.
func (d *Headless) Push(in Input) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.queue = append(d.queue, in)
}

// Move queues a pointer move with the button state unchanged.
func (d *Headless) Move(x, y int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	down := d.down
	if n := len(d.queue); n > 0 {
		down = d.queue[n-1].MouseDown
	}
	d.queue = append(d.queue, Input{MouseX: x, MouseY: y, MouseDown: down})
}

func (d *Headless) Poll() (Input, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return Input{}, ErrWindowClosed
	}
	if len(d.queue) == 0 {
		return Input{Width: d.width, Height: d.height, MouseX: d.mouseX, MouseY: d.mouseY, MouseDown: d.down}, nil
	}
	in := d.queue[0]
	d.queue = d.queue[1:]
	if in.Width > 0 && in.Height > 0 {
		d.width, d.height = in.Width, in.Height
	}
	in.Width, in.Height = d.width, d.height
	d.mouseX, d.mouseY, d.down = in.MouseX, in.MouseY, in.MouseDown
	return in, nil
}

func (d *Headless) Present(frame *image.RGBA) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrWindowClosed
	}
	if d.last == nil || d.last.Bounds() != frame.Bounds() {
		d.last = image.NewRGBA(frame.Bounds())
	}
	copy(d.last.Pix, frame.Pix)
	d.frames++
	return nil
}

// Frame returns the last presented frame, or nil.
func (d *Headless) Frame() *image.RGBA {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}

// Frames counts the frames presented so far.
func (d *Headless) Frames() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames
}

func (d *Headless) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}
