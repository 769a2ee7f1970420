/*
Package main implements the sitelen composition server and CLI [DBG]
application.

sitelen converts incrementally typed Latin letters into a target script by
dictionary lookup, producing ranked candidates for an input-method host. It
can operate as a MessagePack IPC server for integration with a text-services
host, or as a CLI application for testing and debugging.

# Usage

Start the server with default settings:

	sitelen

Use a custom dictionary and enable debug mode:

	sitelen -dict /path/to/dictionary.txt -d

Run in CLI mode for interactive testing:

	sitelen -c -limit 7

# Dictionary

The dictionary is a line-oriented text file: word entries are a spelling
followed by its output and optional alternatives, punctuation remaps map a
single character to its rendering, and paired quotes list open and close
forms. Malformed lines are skipped with a warning. With -watch (or
`watch = true` in config) the file is reloaded after edits settle.

# Configuration

Runtime configuration is a TOML file, created with defaults when missing:

	[engine]
	max_candidates = 5
	sentence = true

	[dict]
	path = "data/dictionary.txt"
	watch = false

# IPC Protocol

Server mode speaks msgpack over stdin/stdout: the host sends normalized
input events and receives display text, candidate lists and commit strings
per transition. See pkg/server for the message shapes.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/bastiangx/sitelen/internal/cli"
	"github.com/bastiangx/sitelen/internal/logger"
	"github.com/bastiangx/sitelen/pkg/compose"
	"github.com/bastiangx/sitelen/pkg/config"
	"github.com/bastiangx/sitelen/pkg/dictionary"
	"github.com/bastiangx/sitelen/pkg/server"
	"github.com/bastiangx/sitelen/pkg/suggest"
)

const (
	Version = "0.3.0-beta"
	AppName = "sitelen"
	gh      = "https://github.com/bastiangx/sitelen"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionary and engine together and hands control to
// the server or the CLI; it implements no engine logic itself.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to config.toml (default: user config dir)")
	dictPath := flag.String("dict", "", "Path to the dictionary file (overrides config)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaultConfig.Engine.MaxCandidates, "Number of candidates to return")
	noSentence := flag.Bool("no-sentence", false, "Disable multi-word sentence matching")
	watch := flag.Bool("watch", defaultConfig.Dict.Watch, "Reload the dictionary when the file changes")

	flag.Parse()

	if *showVersion {
		banner := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		banner.SetStyles(styles)

		banner.Print("")
		banner.Print("[ sitelen ] Composes scripts from Latin keystrokes!")
		banner.Print("", "version", Version)
		banner.Print("")
		banner.Print("use -h or --help to see available options")
		banner.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Active config: %s", config.GetActiveConfigPath(activePath))

	if *dictPath != "" {
		cfg.Dict.Path = *dictPath
	}
	if *limit != defaultConfig.Engine.MaxCandidates {
		cfg.Engine.MaxCandidates = *limit
	}
	if *noSentence {
		cfg.Engine.Sentence = false
	}
	if *watch {
		cfg.Dict.Watch = true
	}

	table, err := dictionary.Load(cfg.Dict.Path)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	index, err := dictionary.BuildIndex(table)
	if err != nil {
		log.Fatalf("Failed to build index: %v", err)
	}
	log.Debugf("Dictionary ready: %d words", index.Words())

	engine := suggest.NewEngine(index, cfg.Engine.MaxCandidates, cfg.Engine.Sentence)
	machine := compose.NewMachine(engine)

	if *cliMode {
		handler := cli.NewInputHandler(machine, cfg.CLI.ShowBoundaries, cfg.CLI.ShowTiming)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	srv := server.NewServer(machine, cfg, cfg.Dict.Path)

	if cfg.Dict.Watch {
		debounce := time.Duration(cfg.Dict.WatchDebounceMs) * time.Millisecond
		watcher, err := dictionary.NewWatcher(cfg.Dict.Path, debounce, func() {
			if err := srv.Reload(); err != nil {
				log.Warnf("Dictionary reload failed: %v", err)
			}
		})
		if err != nil {
			log.Warnf("Dictionary watcher unavailable: %v", err)
		} else if err := watcher.Start(); err != nil {
			log.Warnf("Dictionary watcher failed to start: %v", err)
		} else {
			defer watcher.Stop()
		}
	}

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
