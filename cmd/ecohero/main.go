// EcoHero is a turn-based combat game against environmental threats.
// Usage: ecohero [--version] [--plain] [--script <file>] [--trace] [--seed <n>] [--name <player>] [content_directory]
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/nathoo/ecohero/cli"
	"github.com/nathoo/ecohero/config"
	"github.com/nathoo/ecohero/content"
	"github.com/nathoo/ecohero/engine"
	"github.com/nathoo/ecohero/logger"
	"github.com/nathoo/ecohero/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = "Usage: ecohero [--version] [--plain] [--script <file>] [--trace] [--seed <n>] [--name <player>] [content_directory]"

func main() {
	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading configuration: %v\n", err)
		os.Exit(1)
	}

	plain := cfg.Plain
	trace := false
	var scriptFile, gameDir string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("ecohero %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--script":
			scriptFile = flagValue(args, &i)
		case "--name":
			cfg.PlayerName = flagValue(args, &i)
		case "--seed":
			seed, err := strconv.ParseInt(flagValue(args, &i), 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "--seed must be an integer: %v\n", err)
				os.Exit(1)
			}
			cfg.Seed = seed
		case "-h", "--help":
			fmt.Println(usage)
			return
		default:
			if gameDir == "" {
				gameDir = args[i]
			}
		}
	}
	if gameDir != "" {
		cfg.ContentDir = gameDir
	}

	interactive := scriptFile == "" && !plain && isTerminal()

	// Logs only reach the terminal in plain trace mode; the TUI owns the screen.
	var logOut io.Writer = io.Discard
	if trace && !interactive {
		logOut = os.Stderr
	}
	log, closeLog, err := logger.Setup(cfg, logOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Load and compile Lua game content; built-in content when no directory is given.
	defs, err := content.Load(cfg.ContentDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading game: %v\n", err)
		os.Exit(1)
	}

	opts := []engine.Option{
		engine.WithLogger(log),
		engine.WithPlayerName(cfg.PlayerName),
	}
	if cfg.Seeded() {
		opts = append(opts, engine.WithSeed(cfg.Seed))
	}
	sess := engine.New(defs, opts...)
	log.Info("session created", "session_id", sess.ID, "content", contentName(cfg.ContentDir),
		"adversaries", len(defs.Roster), "seeded", cfg.Seeded())

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(sess)
		c.In = f
		c.EchoInput = true
		c.Trace = trace
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if !interactive {
		c := cli.New(sess)
		c.Trace = trace
		c.Run()
		return
	}

	if err := tui.Run(sess); err != nil {
		slog.Error("tui exited", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// flagValue returns the argument after args[*i] and advances i.
func flagValue(args []string, i *int) string {
	if *i+1 >= len(args) {
		fmt.Fprintf(os.Stderr, "%s requires a value\n%s\n", args[*i], usage)
		os.Exit(1)
	}
	*i++
	return args[*i]
}

func contentName(dir string) string {
	if dir == "" {
		return "built-in"
	}
	return dir
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
