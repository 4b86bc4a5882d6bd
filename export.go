package graphica

import (
	"fmt"
	"io"
)

// SavePNG writes the last drawn frame to filename.
func (w *Window) SavePNG(filename string) error {
	if w.frame == 0 {
		return fmt.Errorf("nothing to export: no frame drawn yet")
	}
	if err := w.dc.SavePNG(filename); err != nil {
		return fmt.Errorf("failed to save %s: %w", filename, err)
	}
	return nil
}

// EncodePNG writes the last drawn frame to out as PNG.
func (w *Window) EncodePNG(out io.Writer) error {
	if w.frame == 0 {
		return fmt.Errorf("nothing to export: no frame drawn yet")
	}
	return w.dc.EncodePNG(out)
}
