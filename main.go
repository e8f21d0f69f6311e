package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"mealdeck/cmd"
	"mealdeck/internal/catalog"
	"mealdeck/internal/logging"
	"mealdeck/internal/ui"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	config, err := cmd.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "mealdeck needs an interactive terminal")
		os.Exit(1)
	}

	logger, closer, err := logging.Configure(config.LogFile, config.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()
	logger.WithField("version", version).Info("starting mealdeck")

	client := catalog.NewClient(catalog.Options{
		BaseURL:    config.APIBase,
		SampleSize: config.SampleSize,
		Timeout:    config.Timeout,
	}, logger)

	p := tea.NewProgram(ui.New(client, ui.Options{
		Thumbnails: config.Thumbnails,
		Logger:     logger,
	}), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.WithError(err).Error("program exited with error")
		closer.Close()
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
