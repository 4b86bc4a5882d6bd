package graphica

import (
	"html"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// readClipboard is replaced in tests.
var readClipboard = readClipboardText

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		// Ask for plain text first; pbpaste may hand back RTF otherwise.
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

// pasteText turns clipboard contents into a single line fit for a text box.
func pasteText(raw string) string {
	text := raw
	switch {
	case isRTF(text):
		text = stripRTF(text)
	case isHTML(text):
		text = stripTags(text)
	}

	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\r':
		case r == '\n' || r == '\t':
			result.WriteRune(' ')
		case r >= 32:
			result.WriteRune(r)
		}
	}
	return strings.TrimSpace(result.String())
}

func isRTF(text string) bool {
	return strings.HasPrefix(text, "{\\rtf") || strings.Contains(text, "\\rtf1")
}

func isHTML(text string) bool {
	text = strings.TrimSpace(text)
	return strings.HasPrefix(text, "<") &&
		(strings.Contains(text, "<html") || strings.Contains(text, "<body") || strings.Contains(text, "<div") || strings.Contains(text, "<span"))
}

func stripTags(markup string) string {
	var result strings.Builder
	result.Grow(len(markup))
	inTag := false
	for _, r := range markup {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			result.WriteRune(r)
		}
	}
	return html.UnescapeString(result.String())
}

// stripRTF drops groups' braces and control words, keeping escaped literals.
func stripRTF(text string) string {
	var result strings.Builder
	result.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '{', '}':
			continue
		case '\\':
			if i+1 >= len(runes) {
				continue
			}
			next := runes[i+1]
			if isASCIILetter(next) {
				i++
				for i < len(runes) && isASCIILetter(runes[i]) {
					i++
				}
				for i < len(runes) && (runes[i] == '-' || (runes[i] >= '0' && runes[i] <= '9')) {
					i++
				}
				// A single space delimits the control word and is not text.
				if i >= len(runes) || runes[i] != ' ' {
					i--
				}
				continue
			}
			if next == '\\' || next == '{' || next == '}' {
				result.WriteRune(next)
				i++
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
