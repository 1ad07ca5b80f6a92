// Package main is the entry point for the scribe text editor.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/xonecas/scribe/internal/config"
	"github.com/xonecas/scribe/internal/document"
	"github.com/xonecas/scribe/internal/filesearch"
	"github.com/xonecas/scribe/internal/logging"
	"github.com/xonecas/scribe/internal/palette"
	"github.com/xonecas/scribe/internal/store"
	"github.com/xonecas/scribe/internal/tui"
)

// Version information (set via ldflags during build).
var version = "dev"

type options struct {
	configPath string
	theme      string
	logLevel   string
	path       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	dataDir, err := config.EnsureDataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: data directory: %v\n", err)
		return 1
	}
	if opts.configPath == "" {
		opts.configPath, _ = config.DefaultPath()
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.theme != "" {
		cfg.UI.Theme = opts.theme
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	cfg.Resolve(dataDir)

	logs, err := logging.Setup(cfg.Log.File, cfg.Log.LevelOrDefault())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: logging: %v\n", err)
		return 1
	}
	defer logs.Close()
	log.Info().Str("version", version).Str("config", opts.configPath).Msg("scribe starting")
	cfg.LogLoad()

	theme := cfg.UI.ThemeOrDefault()
	if !palette.Known(theme) {
		log.Warn().Str("theme", theme).Msg("unknown theme, using default palette")
	}

	var history *store.History
	if !cfg.History.Disabled {
		// Keep spare entries: deleted files are skipped when listed.
		history, err = store.Open(cfg.History.Path, cfg.History.MaxRecentOrDefault()*5)
		if err != nil {
			// Non-fatal: the editor works without recent files.
			log.Warn().Err(err).Str("path", cfg.History.Path).Msg("history unavailable")
		}
		defer history.Close()
	}

	finder, err := filesearch.New(cfg.Finder.Root, cfg.Finder.MaxResultsOrDefault())
	if err != nil {
		log.Warn().Err(err).Msg("file finder unavailable")
		finder = nil
	}

	p := tea.NewProgram(
		tui.New(tui.Options{
			Path:          opts.path,
			Palette:       palette.FromTheme(theme),
			Files:         document.Files{},
			History:       history,
			Finder:        finder,
			MaxRecent:     cfg.History.MaxRecentOrDefault(),
			HideScrollbar: cfg.UI.HideScrollbar,
		}),
		tea.WithFilter(tui.MouseEventFilter),
	)

	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("program failed")
		fmt.Fprintf(os.Stderr, "Error running scribe: %v\n", err)
		return 1
	}
	log.Info().Msg("scribe exited")
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file (default ~/.config/scribe/config.toml)")
	flag.StringVar(&opts.theme, "theme", "", "Chroma style used for UI colors")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "scribe - a small terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: scribe [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nWithout a file, scribe starts at the launch menu.\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("scribe %s\n", version)
		os.Exit(0)
	}
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	opts.path = flag.Arg(0)
	return opts
}
