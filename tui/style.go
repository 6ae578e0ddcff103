package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarration = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleEncounter = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Bold(true)

	styleHealth = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117"))

	styleMenu = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleVictory = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	styleDefeat = lipgloss.NewStyle().
			Foreground(lipgloss.Color("160")).
			Bold(true)

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarration lineKind = iota
	kindEncounter
	kindHealth
	kindMenu
	kindVictory
	kindDefeat
	kindSystem
	kindError
	kindTrace
)

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "A wild "):
		return kindEncounter
	case strings.Contains(line, "'s HP: ") && strings.Contains(line, " | "):
		return kindHealth
	case strings.HasPrefix(line, "Choose your action"),
		strings.HasPrefix(line, "You are in battle!"):
		return kindMenu
	case strings.HasSuffix(line, "emerges victorious!"),
		strings.HasPrefix(line, "Congratulations"):
		return kindVictory
	case strings.HasSuffix(line, "has been defeated in battle."),
		line == "Game Over.":
		return kindDefeat
	case strings.HasPrefix(line, "Not enough dollars"),
		strings.HasPrefix(line, "No adversary at"),
		strings.HasPrefix(line, "There is no "),
		strings.HasPrefix(line, "Which "),
		strings.HasPrefix(line, "Unknown item"),
		strings.HasSuffix(line, " left!"),
		strings.HasPrefix(line, "I don't understand"):
		return kindError
	default:
		return kindNarration
	}
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindEncounter:
		return styleEncounter.Render(line)
	case kindHealth:
		return styledHealth(line)
	case kindMenu:
		return styleMenu.Render(line)
	case kindVictory:
		return styleVictory.Render(line)
	case kindDefeat:
		return styleDefeat.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	default:
		return styleNarration.Render(line)
	}
}

// styledHealth renders "A's HP: n | B's HP: m" with the separator dimmed.
func styledHealth(line string) string {
	left, right, ok := strings.Cut(line, " | ")
	if !ok {
		return styleHealth.Render(line)
	}
	return styleHealth.Render(left) + styleMenu.Render(" | ") + styleHealth.Render(right)
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
