// Package cli is the line-oriented shell for EcoHero. It reads commands
// from a reader, which makes it usable for scripted playthroughs.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/ecohero/engine"
	"github.com/nathoo/ecohero/play"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Driver    *play.Driver
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool // echo each command after the prompt, for script playback

	lastCmd string
}

// New creates a CLI on stdin/stdout for the given session.
func New(sess *engine.Session) *CLI {
	return &CLI{
		Driver: play.New(sess),
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// metaCommand handles one slash command and reports whether to exit.
type metaCommand func(c *CLI) bool

var metaCommands = map[string]metaCommand{
	"/quit": quit,
	"/exit": quit,
	"/checkpoint": func(c *CLI) bool {
		lines, _ := c.Driver.Checkpoint()
		c.system(lines...)
		return false
	},
	"/rewind": func(c *CLI) bool {
		lines, _ := c.Driver.Rewind()
		c.system(lines...)
		return false
	},
	"/state": func(c *CLI) bool {
		c.println(c.Driver.State()...)
		return false
	},
	"/trace": func(c *CLI) bool {
		c.Trace = !c.Trace
		if c.Trace {
			c.system("Trace output enabled.")
		} else {
			c.system("Trace output disabled.")
		}
		return false
	},
	"/help": func(c *CLI) bool {
		c.println(helpText()...)
		return false
	},
}

func quit(c *CLI) bool {
	c.system("Goodbye.")
	return true
}

// Run prints the intro, then reads and dispatches commands until EOF or /quit.
func (c *CLI) Run() {
	c.println(c.Driver.Intro()...)

	scanner := bufio.NewScanner(c.In)
	for {
		fmt.Fprint(c.Out, "> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if c.EchoInput {
			c.println(line)
		}
		if c.dispatch(line) {
			return
		}
	}
}

// dispatch runs one input line and reports whether the loop should stop.
func (c *CLI) dispatch(line string) bool {
	if strings.HasPrefix(line, "/") {
		name := strings.ToLower(strings.Fields(line)[0])
		cmd, ok := metaCommands[name]
		if !ok {
			c.system(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", name))
			return false
		}
		return cmd(c)
	}

	switch strings.ToLower(line) {
	case "again", "g":
		if c.lastCmd == "" {
			c.println("Nothing to repeat.")
			return false
		}
		line = c.lastCmd
	default:
		c.lastCmd = line
	}

	result := c.Driver.Step(line)
	c.println(result.Output...)
	if c.Trace {
		c.trace(result)
	}
	return false
}

func helpText() []string {
	help := []string{
		"System:",
		"  /checkpoint   — Remember the current state (between battles)",
		"  /rewind       — Return to the last checkpoint",
		"  /state        — Debug: dump session state",
		"  /trace        — Toggle debug trace output",
		"  /help         — Show this help",
		"  /quit         — Exit game",
		"",
	}
	help = append(help, play.Help()...)
	return append(help, "  again (g)             — Repeat your last command")
}

func (c *CLI) trace(result play.Result) {
	if n := len(result.Events); n > 0 {
		c.println(fmt.Sprintf("[trace] Events: %d", n))
		for _, e := range result.Events {
			c.println(play.Trace(e))
		}
	}
	if result.Err != nil {
		c.println(fmt.Sprintf("[trace] Error: %v", result.Err))
	}
}

func (c *CLI) println(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(c.Out, line)
	}
}

// system prints bracketed out-of-game messages.
func (c *CLI) system(lines ...string) {
	for _, line := range lines {
		fmt.Fprintf(c.Out, "[%s]\n", line)
	}
}
