package graphica

import (
	"context"
	"fmt"
	"image"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Terminal is a Driver that shows frames in the terminal. Every character
// cell holds two pixels stacked vertically, so a terminal of c columns and
// r rows is a c by 2r window.
type Terminal struct {
	program *tea.Program
	done    chan struct{}

	mu    sync.Mutex
	input Input
	// pressed latches a button press until the next Poll.
	pressed bool
	err     error
}

type frameMsg string

type terminalModel struct {
	t     *Terminal
	title string
	view  string
}

// StartTerminal runs a bubbletea program on the alternate screen until Close
// is called, ctx is cancelled or the user presses ctrl+c.
func StartTerminal(ctx context.Context, title string, opts ...tea.ProgramOption) (*Terminal, error) {
	t := &Terminal{done: make(chan struct{})}
	opts = append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}, opts...)
	t.program = tea.NewProgram(&terminalModel{t: t, title: title}, opts...)

	go func() {
		defer close(t.done)
		if _, err := t.program.Run(); err != nil && err != tea.ErrProgramKilled {
			Logger().Warn("terminal stopped", "err", err)
			t.mu.Lock()
			t.err = err
			t.mu.Unlock()
		}
	}()
	return t, nil
}

func (m *terminalModel) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

func (m *terminalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.view = string(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.t.mu.Lock()
		m.t.input.Width = msg.Width
		m.t.input.Height = msg.Height * 2
		m.t.mu.Unlock()
		return m, nil
	case tea.MouseMsg:
		m.t.mu.Lock()
		m.t.input.MouseX = msg.X
		m.t.input.MouseY = msg.Y * 2
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			m.t.input.MouseDown = true
			m.t.pressed = true
		case msg.Action == tea.MouseActionRelease:
			m.t.input.MouseDown = false
		}
		m.t.mu.Unlock()
		return m, nil
	case tea.KeyMsg:
		presses, quit := translateKey(msg)
		m.t.mu.Lock()
		m.t.input.Presses = append(m.t.input.Presses, presses...)
		if quit {
			m.t.input.Closed = true
		}
		m.t.mu.Unlock()
		if quit {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m *terminalModel) View() string {
	return m.view
}

// translateKey names a key press. Modifiers come before the key they modify.
// Ctrl+C asks to close the window.
func translateKey(msg tea.KeyMsg) (presses []KeyPress, quit bool) {
	if msg.Alt {
		presses = append(presses, Command(KeyAlt)...)
	}
	switch msg.Type {
	case tea.KeyCtrlC:
		return nil, true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			presses = append(presses, KeyPress{Key: string(r)})
		}
	case tea.KeySpace:
		presses = append(presses, KeyPress{Key: " "})
	case tea.KeyEnter:
		presses = append(presses, Command(KeyEnter)...)
	case tea.KeyBackspace, tea.KeyCtrlH:
		presses = append(presses, Command(KeyBackspace)...)
	case tea.KeyDelete:
		presses = append(presses, Command(KeyDelete)...)
	case tea.KeyTab:
		presses = append(presses, Command(KeyTab)...)
	case tea.KeyShiftTab:
		presses = append(presses, Command(KeyShift, KeyTab)...)
	case tea.KeyEsc:
		presses = append(presses, Command(KeyEscape)...)
	case tea.KeyUp:
		presses = append(presses, Command(KeyUp)...)
	case tea.KeyDown:
		presses = append(presses, Command(KeyDown)...)
	case tea.KeyLeft:
		presses = append(presses, Command(KeyLeft)...)
	case tea.KeyRight:
		presses = append(presses, Command(KeyRight)...)
	case tea.KeyHome:
		presses = append(presses, Command(KeyHome)...)
	case tea.KeyEnd:
		presses = append(presses, Command(KeyEnd)...)
	case tea.KeyShiftUp:
		presses = append(presses, Command(KeyShift, KeyUp)...)
	case tea.KeyShiftDown:
		presses = append(presses, Command(KeyShift, KeyDown)...)
	case tea.KeyShiftLeft:
		presses = append(presses, Command(KeyShift, KeyLeft)...)
	case tea.KeyShiftRight:
		presses = append(presses, Command(KeyShift, KeyRight)...)
	case tea.KeyCtrlUp:
		presses = append(presses, Command(KeyCtrl, KeyUp)...)
	case tea.KeyCtrlDown:
		presses = append(presses, Command(KeyCtrl, KeyDown)...)
	case tea.KeyCtrlLeft:
		presses = append(presses, Command(KeyCtrl, KeyLeft)...)
	case tea.KeyCtrlRight:
		presses = append(presses, Command(KeyCtrl, KeyRight)...)
	default:
		switch {
		case msg.Type <= tea.KeyF1 && msg.Type >= tea.KeyF20:
			// Function keys count downwards.
			presses = append(presses, Command(fmt.Sprintf("F%d", int(tea.KeyF1-msg.Type)+1))...)
		case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ:
			presses = append(presses, Command(KeyCtrl)...)
			presses = append(presses, KeyPress{Key: string(rune('a' + int(msg.Type-tea.KeyCtrlA)))})
		}
	}
	return presses, false
}

func (t *Terminal) Poll() (Input, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return Input{}, t.err
	}
	in := t.input
	if t.pressed {
		in.MouseDown = true
		t.pressed = false
	}
	t.input.Presses = nil
	select {
	case <-t.done:
		in.Closed = true
	default:
	}
	return in, nil
}

func (t *Terminal) Present(frame *image.RGBA) error {
	t.mu.Lock()
	cols, rows := t.input.Width, t.input.Height/2
	t.mu.Unlock()
	select {
	case <-t.done:
		return ErrWindowClosed
	default:
	}
	t.program.Send(frameMsg(renderCells(frame, cols, rows)))
	return nil
}

// Close stops the program and restores the terminal.
func (t *Terminal) Close() error {
	t.program.Quit()
	<-t.done
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// renderCells draws frame as cols by rows half-block cells. Pixels outside the
// frame are black. A zero size falls back to the frame size.
func renderCells(frame *image.RGBA, cols, rows int) string {
	b := frame.Bounds()
	if cols <= 0 || rows <= 0 {
		cols, rows = b.Dx(), (b.Dy()+1)/2
	}

	var out strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			out.WriteByte('\n')
		}
		var runFg, runBg string
		runLen := 0
		flush := func() {
			if runLen == 0 {
				return
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(runFg)).
				Background(lipgloss.Color(runBg))
			out.WriteString(style.Render(strings.Repeat("▀", runLen)))
			runLen = 0
		}
		for col := 0; col < cols; col++ {
			fg := hexAt(frame, b.Min.X+col, b.Min.Y+2*row)
			bg := hexAt(frame, b.Min.X+col, b.Min.Y+2*row+1)
			if runLen > 0 && (fg != runFg || bg != runBg) {
				flush()
			}
			runFg, runBg = fg, bg
			runLen++
		}
		flush()
	}
	return out.String()
}

func hexAt(frame *image.RGBA, x, y int) string {
	if !(image.Point{x, y}.In(frame.Bounds())) {
		return "#000000"
	}
	c, ok := colorful.MakeColor(frame.RGBAAt(x, y))
	if !ok {
		return "#000000"
	}
	return c.Hex()
}
