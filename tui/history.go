// Package tui provides a Bubble Tea terminal UI for EcoHero.
package tui

// History remembers submitted commands for Up/Down recall.
type History struct {
	entries []string
	limit   int
	back    int // steps back from the newest entry; 0 means editing a fresh line
}

// NewHistory keeps at most limit commands.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Push records cmd unless it repeats the newest entry.
func (h *History) Push(cmd string) {
	if n := len(h.entries); n > 0 && h.entries[n-1] == cmd {
		return
	}
	h.entries = append(h.entries, cmd)
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = h.entries[over:]
	}
}

// Prev steps to an older command, stopping at the oldest.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.back < len(h.entries) {
		h.back++
	}
	return h.at(), true
}

// Next steps to a newer command. Stepping past the newest returns to a
// fresh line and reports false.
func (h *History) Next() (string, bool) {
	if h.back <= 1 {
		h.back = 0
		return "", false
	}
	h.back--
	return h.at(), true
}

// ResetCursor returns to a fresh line.
func (h *History) ResetCursor() { h.back = 0 }

// Len returns the number of remembered commands.
func (h *History) Len() int { return len(h.entries) }

func (h *History) at() string { return h.entries[len(h.entries)-h.back] }
