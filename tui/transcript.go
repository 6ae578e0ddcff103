package tui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

type origin int

const (
	fromGame origin = iota
	fromPlayer
	fromSystem
)

// entry is one unstyled transcript line. Styling happens at render time so
// a resize can re-wrap everything.
type entry struct {
	text   string
	origin origin
	kind   lineKind
}

// transcript is everything shown in the viewport, oldest first.
type transcript []entry

// add appends one turn: the echoed command, its output, and a blank separator.
func (t transcript) add(input string, lines []string, o origin) transcript {
	if input != "" {
		t = append(t, entry{text: "> " + input, origin: fromPlayer})
	}
	for _, line := range lines {
		e := entry{text: line, origin: o}
		if o == fromGame {
			e.kind = classifyLine(line)
		}
		t = append(t, e)
	}
	return append(t, entry{})
}

// render wraps and styles the transcript for the given width.
func (t transcript) render(width int) string {
	if width < 10 {
		width = 10
	}
	out := make([]string, 0, len(t))
	for _, e := range t {
		if e.text == "" {
			out = append(out, "")
			continue
		}
		wrapped := wrap(e.text, width)
		switch e.origin {
		case fromPlayer:
			out = append(out, stylePlayerInput.Render(wrapped))
		case fromSystem:
			out = append(out, styledSystemMsg(wrapped))
		default:
			out = append(out, renderLineKind(wrapped, e.kind))
		}
	}
	return strings.Join(out, "\n")
}

// wrap breaks text at word boundaries so no line exceeds width.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}
