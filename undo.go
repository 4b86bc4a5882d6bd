package graphica

type ActionType int

const (
	ActionInsert ActionType = iota
	ActionDelete
)

// Action is one reversible edit of a text box: Text inserted at or deleted
// from rune offset Pos.
type Action struct {
	Type ActionType
	Pos  int
	Text string
}

type history struct {
	undoStack []Action
	redoStack []Action
}

func (h *history) record(action Action) {
	h.undoStack = append(h.undoStack, action)
	h.redoStack = h.redoStack[:0]
}

// undo reverts the last action on content and returns the new content and
// caret.
func (h *history) undo(content []rune, caret int) ([]rune, int) {
	if len(h.undoStack) == 0 {
		return content, caret
	}

	lastIndex := len(h.undoStack) - 1
	action := h.undoStack[lastIndex]
	h.undoStack = h.undoStack[:lastIndex]

	switch action.Type {
	case ActionInsert:
		content = removeRunes(content, action.Pos, len([]rune(action.Text)))
		caret = action.Pos
	case ActionDelete:
		content = insertRunes(content, action.Pos, []rune(action.Text))
		caret = action.Pos + len([]rune(action.Text))
	}

	h.redoStack = append(h.redoStack, action)
	return content, caret
}

func (h *history) redo(content []rune, caret int) ([]rune, int) {
	if len(h.redoStack) == 0 {
		return content, caret
	}

	lastIndex := len(h.redoStack) - 1
	action := h.redoStack[lastIndex]
	h.redoStack = h.redoStack[:lastIndex]

	switch action.Type {
	case ActionInsert:
		content = insertRunes(content, action.Pos, []rune(action.Text))
		caret = action.Pos + len([]rune(action.Text))
	case ActionDelete:
		content = removeRunes(content, action.Pos, len([]rune(action.Text)))
		caret = action.Pos
	}

	h.undoStack = append(h.undoStack, action)
	return content, caret
}

func (h *history) clear() {
	h.undoStack = nil
	h.redoStack = nil
}

func insertRunes(content []rune, pos int, add []rune) []rune {
	pos = clampCaret(pos, len(content))
	out := make([]rune, 0, len(content)+len(add))
	out = append(out, content[:pos]...)
	out = append(out, add...)
	return append(out, content[pos:]...)
}

func removeRunes(content []rune, pos, n int) []rune {
	pos = clampCaret(pos, len(content))
	if pos+n > len(content) {
		n = len(content) - pos
	}
	out := make([]rune, 0, len(content)-n)
	out = append(out, content[:pos]...)
	return append(out, content[pos+n:]...)
}
