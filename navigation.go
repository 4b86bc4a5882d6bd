package graphica

// moveCaret applies a caret command to a text of n runes.
func moveCaret(cmd string, caret, n int) int {
	switch cmd {
	case KeyLeft:
		caret--
	case KeyRight:
		caret++
	case KeyHome, KeyUp:
		caret = 0
	case KeyEnd, KeyDown:
		caret = n
	}
	return clampCaret(caret, n)
}

func clampCaret(caret, n int) int {
	if caret < 0 {
		return 0
	}
	if caret > n {
		return n
	}
	return caret
}
