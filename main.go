package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"lasso/internal/config"
	"lasso/internal/content"
	"lasso/internal/discovery"
	"lasso/internal/eventbus"
	"lasso/internal/logger"
	"lasso/internal/ui"
)

func main() {
	var configPath string
	var logLevel string
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: lasso [flags] <file>")
		os.Exit(2)
	}

	docPath, err := filepath.Abs(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving path: %v\n", err)
		os.Exit(1)
	}

	// Set up logging: the TUI owns the terminal, so logs go to a file
	logFile, err := logger.OpenFile("lasso.log")
	if err == nil {
		defer logFile.Close()
		l, lerr := logger.New(logger.Options{Level: logLevel, Writer: logFile})
		if lerr != nil {
			l, _ = logger.New(logger.Options{Writer: logFile})
		}
		zlog.Logger = l
	} else {
		zlog.Logger = zerolog.Nop()
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	var cfg *config.Config
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		zlog.Warn().Err(err).Msg("error loading config, using defaults")
		cfg = config.DefaultConfig()
	}

	// Watch the open document for changes
	watcher, err := content.NewWatcher(bus)
	if err != nil {
		zlog.Warn().Err(err).Msg("file watching disabled")
		watcher = nil
	} else {
		defer watcher.Close()
	}

	// Discovery service fills the sidebar with neighbouring documents
	discoverySvc := discovery.NewDiscoveryService(bus)

	// Create UI model
	uiModel := ui.NewModel(cfg, configSvc, bus, watcher, docPath)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward domain events to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			zlog.Warn().Msg("event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventDocDiscovered, forward)
	bus.Subscribe(eventbus.EventScanStarted, forward)
	bus.Subscribe(eventbus.EventScanCompleted, forward)
	bus.Subscribe(eventbus.EventContentChanged, forward)
	bus.Subscribe(eventbus.EventError, forward)

	// Save the config whenever the UI reports a change
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if err := configSvc.Save(cfg); err != nil {
			zlog.Warn().Err(err).Msg("failed to save config")
		}
	})

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Scan the document's directory for the sidebar
	go discoverySvc.StartScan(ctx, filepath.Dir(docPath))

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Stop dispatching before closing the channel the forwarders send on
	bus.Close()
	close(eventChan)
	cancel()
}
