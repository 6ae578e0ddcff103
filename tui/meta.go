package tui

import (
	"fmt"
	"strings"

	"github.com/nathoo/ecohero/play"
)

// handleMeta dispatches slash commands. It reports whether to quit.
func (m *Model) handleMeta(input string) ([]string, bool) {
	cmd := strings.ToLower(strings.Fields(input)[0])

	switch cmd {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true
	case "/checkpoint":
		lines, _ := m.driver.Checkpoint()
		return lines, false
	case "/rewind":
		lines, _ := m.driver.Rewind()
		return lines, false
	case "/help":
		return m.helpLines(), false
	case "/state":
		return m.driver.State(), false
	case "/trace":
		m.trace = !m.trace
		return []string{fmt.Sprintf("Trace output %s.", onOff(m.trace))}, false
	}
	return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd)}, false
}

func (m *Model) helpLines() []string {
	lines := []string{
		"System:",
		"  /checkpoint   — Remember the current state (between battles)",
		"  /rewind       — Return to the last checkpoint",
		"  /state        — Debug: dump session state",
		"  /trace        — Toggle debug trace output",
		"  /help         — Show this help",
		"  /quit         — Exit game",
		"",
	}
	lines = append(lines, play.Help()...)
	lines = append(lines, "  again (g)             — Repeat your last command", "", "Keys:")
	for _, b := range []struct{ keys, desc string }{
		{m.keys.PageUp.Help().Key + "/" + m.keys.PageDown.Help().Key, "scroll"},
		{m.keys.Older.Help().Key + "/" + m.keys.Newer.Help().Key, "command history"},
		{m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc},
	} {
		lines = append(lines, fmt.Sprintf("  %-21s — %s", b.keys, b.desc))
	}
	return lines
}

func onOff(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}

func formatTrace(result play.Result) []string {
	var lines []string
	if n := len(result.Events); n > 0 {
		lines = append(lines, fmt.Sprintf("[trace] Events: %d", n))
		for _, e := range result.Events {
			lines = append(lines, play.Trace(e))
		}
	}
	if result.Err != nil {
		lines = append(lines, fmt.Sprintf("[trace] Error: %v", result.Err))
	}
	return lines
}
