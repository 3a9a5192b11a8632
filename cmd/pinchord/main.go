/*
Package main implements the pinchord spelling lookup server and CLI [DBG] application.

Pinchord answers one question: every way a word can be produced as a
sequence of chords from a versioned chord layout. A layout splits its
keys across four component roles (initial, vowel, final, suffix); any
combination of up to one key per role is a chord, and a chord's output is
the concatenation of its components' text fragments. The engine streams
every decomposition of a target word into chord outputs, one job at a
time, over a MessagePack IPC.

# Usage

Start the server with default settings:

	pinchord

Use a custom layout directory and enable debug mode:

	pinchord -data /path/to/layouts -d

Run in CLI mode for interactive testing:

	pinchord -c -layout v1 -limit 10

The data directory contains one JSON file per layout version, named
<version>.json, mapping chord identifiers to the text they produce:

	{"initials": {"T": "t"}, "vowels": {"IA": "ia", "A": "a"}, "finals": {"-N": "n"}, "suffixes": {}}

Layouts are loaded on first request per version and cached for the
process lifetime.

# Configuration

Runtime configuration is managed through a TOML file:

	[server]
	batch_size = 5
	max_limit = 256
	max_target = 60

	[layout]
	data_dir = "data/"

The config file is automatically created with defaults if it doesn't
exist. Server mode picks up [server] changes without restart.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Send a lookup
request:

	{"id": 7, "v": "v1", "t": "tian", "m": 50}

Spellings stream back in chunks as they are discovered, followed by one
terminal message per job:

	{"ev": "chunk", "id": 7, "s": ["TIAN"], "k": [[["T","IA","-N",""]]]}
	{"ev": "done", "id": 7, "n": 1}

A new request supersedes the running job at its next chunk boundary; the
superseded job goes silent. See pkg/server for the full protocol.

# Command Line Flags

The following flags control application behavior:

	-data string
	    Directory containing layout version files (default "data/")
	-config string
	    Custom config file path
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-layout string
	    Layout version for CLI mode
	-limit int
	    Spellings to print per word in CLI mode
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Aquaduckd/pinchordlookup/internal/cli"
	"github.com/Aquaduckd/pinchordlookup/internal/utils"
	"github.com/Aquaduckd/pinchordlookup/pkg/config"
	"github.com/Aquaduckd/pinchordlookup/pkg/layout"
	"github.com/Aquaduckd/pinchordlookup/pkg/server"
)

const (
	Version = "0.3.0-beta"
	AppName = "pinchord"
	gh      = "https://github.com/Aquaduckd/pinchordlookup"
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

// main wires the other packages into server or CLI mode and only
// manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dataDir := flag.String("data", defaultConfig.Layout.DataDir, "Directory containing the layout version files")
	configPath := flag.String("config", "", "Custom config file path")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	cliLayout := flag.String("layout", defaultConfig.CLI.DefaultVersion, "Layout version for CLI mode")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of spellings to print per word in CLI mode")

	flag.Parse()

	if *showVersion {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()

		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ pinchord ] Chord spellings for any word!")
		logger.Print("", "version", Version)
		logger.Print("")
		logger.Print("use -h or --help to see available options")
		logger.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	resolvedDataDir := appConfig.Layout.DataDir
	if *dataDir != defaultConfig.Layout.DataDir {
		resolvedDataDir = *dataDir
	}
	resolvedDataDir, err = utils.ResolveDataDir(resolvedDataDir)
	if err != nil {
		log.Fatalf("Failed to resolve data dir: (%v)", err)
	}
	log.Debugf("Using data dir at: %s", resolvedDataDir)

	loader := layout.NewLoader(resolvedDataDir)

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"layout", *cliLayout,
			"limit", *limit)

		inputHandler := cli.NewInputHandler(loader, *cliLayout, *limit)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(loader, appConfig)

	if activePath != "" {
		watcher, err := config.NewWatcher(activePath, srv.ApplyConfig)
		if err != nil {
			log.Warnf("Config watcher unavailable: %v", err)
		} else if err := watcher.Start(); err != nil {
			log.Warnf("Config watcher failed to start: %v", err)
		} else {
			defer watcher.Stop()
		}
	}

	showStartupInfo(resolvedDataDir, config.GetActiveConfigPath(activePath))

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dataDir, configPath string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	fmt.Fprintln(os.Stderr, "==========")
	fmt.Fprintln(os.Stderr, " pinchord ")
	fmt.Fprintln(os.Stderr, "==========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("data dir: ( %s )", dataDir)
	log.Infof("config: ( %s )", configPath)
	log.Info("status: ready")
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
