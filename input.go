package graphica

import "slices"

// Input is one poll of a driver: everything that happened since the previous
// poll.
type Input struct {
	Width, Height  int
	MouseX, MouseY int
	MouseDown      bool
	// Presses are the key presses in arrival order.
	Presses []KeyPress
	// Closed is set once the user asked to close the window.
	Closed bool
}

// KeyPress is a printable key such as "a", or with Command set a command key
// such as ENTER, BACKSPACE or F1.
type KeyPress struct {
	Key     string
	Command bool
}

// Keys returns the printable presses in order.
func (in Input) Keys() []string { return pressed(in.Presses, false) }

// Commands returns the command presses in order.
func (in Input) Commands() []string { return pressed(in.Presses, true) }

func pressed(presses []KeyPress, command bool) []string {
	var out []string
	for _, p := range presses {
		if p.Command == command {
			out = append(out, p.Key)
		}
	}
	return out
}

// Press returns printable key presses.
func Press(keys ...string) []KeyPress {
	out := make([]KeyPress, len(keys))
	for i, k := range keys {
		out[i] = KeyPress{Key: k}
	}
	return out
}

// Command returns command key presses.
func Command(comms ...string) []KeyPress {
	out := make([]KeyPress, len(comms))
	for i, c := range comms {
		out[i] = KeyPress{Key: c, Command: true}
	}
	return out
}

// shifted maps a key to what it types with shift or caps lock.
var shifted = map[string]string{
	"a": "A", "b": "B", "c": "C", "d": "D", "e": "E", "f": "F", "g": "G", "h": "H", "i": "I",
	"j": "J", "k": "K", "l": "L", "m": "M", "n": "N", "o": "O", "p": "P", "q": "Q", "r": "R",
	"s": "S", "t": "T", "u": "U", "v": "V", "w": "W", "x": "X", "y": "Y", "z": "Z",

	"1": "!", "2": "@", "3": "#", "4": "$", "5": "%", "6": "^", "7": "&", "8": "*", "9": "(", "0": ")",

	"-": "_", "=": "+", "\\": "|", ";": ":", "'": "\"", "[": "{", "]": "}",
	",": "<", ".": ">", "/": "?", " ": " ", "`": "~",
}

// Shift returns the shifted form of key, or key itself when it has none.
func Shift(key string) string {
	if up, ok := shifted[key]; ok {
		return up
	}
	return key
}

// keyState tracks the key sets a window exposes between frames.
type keyState struct {
	presses     []KeyPress
	keys        []string
	keyChanges  []string
	comms       []string
	commChanges []string
	caps        bool
}

// advance folds one poll into the state. Drivers report presses rather than
// held keys, so every press is a change. Each CAPS press toggles caps lock for
// the keys after it; SHIFT anywhere in the frame shifts all of its keys.
func (k *keyState) advance(presses []KeyPress) {
	shift := slices.Contains(presses, KeyPress{Key: KeyShift, Command: true})

	k.presses = make([]KeyPress, 0, len(presses))
	k.keyChanges = nil
	k.commChanges = nil
	for _, p := range presses {
		if p.Command {
			if p.Key == KeyCaps {
				k.caps = !k.caps
			}
			k.commChanges = append(k.commChanges, p.Key)
		} else {
			if k.caps || shift {
				p.Key = Shift(p.Key)
			}
			k.keyChanges = append(k.keyChanges, p.Key)
		}
		k.presses = append(k.presses, p)
	}
	k.keys = uniq(k.keyChanges)
	k.comms = uniq(k.commChanges)
}

func uniq(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
